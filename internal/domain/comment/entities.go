package comment

import (
	"errors"
	"time"
)

var ErrEmptyContent = errors.New("comment content must not be empty")

// Comment is append-only: no edit or delete path exists.
type Comment struct {
	ID        uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	CommentID string `gorm:"column:comment_id;type:char(32);not null;uniqueIndex:ux_comments_comment_id"`
	// FK to documents.id (numeric); cascade delete at the DB level
	DocumentID uint64 `gorm:"column:document_id;not null;index:idx_comments_document"`
	// Public user_id of the author
	UserID    string    `gorm:"column:user_id;type:char(32);not null"`
	Content   string    `gorm:"column:content;type:text;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Comment) TableName() string { return "document_comments" }
