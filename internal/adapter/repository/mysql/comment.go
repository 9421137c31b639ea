package mysql

import (
	"context"

	commentDomain "clubdocs-backend/internal/domain/comment"

	"gorm.io/gorm"
)

type CommentRepository struct{ db *gorm.DB }

func NewCommentRepository(db *gorm.DB) *CommentRepository { return &CommentRepository{db: db} }

func (r *CommentRepository) Create(ctx context.Context, c *commentDomain.Comment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CommentRepository) ListByDocumentID(ctx context.Context, documentNumericID uint64) ([]commentDomain.Comment, error) {
	var out []commentDomain.Comment
	res := r.db.WithContext(ctx).
		Where("document_id = ?", documentNumericID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}
