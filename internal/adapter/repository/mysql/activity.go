package mysql

import (
	"context"

	activityDomain "clubdocs-backend/internal/domain/activity"

	"gorm.io/gorm"
)

type ActivityRepository struct{ db *gorm.DB }

func NewActivityRepository(db *gorm.DB) *ActivityRepository { return &ActivityRepository{db: db} }

func (r *ActivityRepository) Create(ctx context.Context, e *activityDomain.Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *ActivityRepository) ListByDocumentID(ctx context.Context, documentNumericID uint64) ([]activityDomain.Entry, error) {
	var out []activityDomain.Entry
	res := r.db.WithContext(ctx).
		Where("document_id = ?", documentNumericID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}
