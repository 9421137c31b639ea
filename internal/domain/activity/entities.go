package activity

import "time"

// Action codes written by the usecases. Free-text at the storage level; these
// constants keep the writers consistent.
const (
	ActionCreated          = "created"
	ActionSignatureAdded   = "signature_added"
	ActionSignatureRemoved = "signature_removed"
	ActionAdminApproved    = "admin_approved"
	ActionAdminRejected    = "admin_rejected"
	ActionCommentAdded     = "comment_added"
)

// Entry is one immutable audit-log row: one state change, its actor, and a
// human-readable description. Exactly one entry is written per meaningful
// mutation, in the same transaction as the mutation itself.
type Entry struct {
	ID         uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	ActivityID string `gorm:"column:activity_id;type:char(32);not null;uniqueIndex:ux_activity_activity_id"`
	// FK to documents.id (numeric); cascade delete at the DB level
	DocumentID uint64 `gorm:"column:document_id;not null;index:idx_activity_document"`
	// Public user_id of the actor
	UserID      string    `gorm:"column:user_id;type:char(32);not null"`
	Action      string    `gorm:"column:action;size:64;not null"`
	Description string    `gorm:"column:description;type:text;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Entry) TableName() string { return "document_activity" }
