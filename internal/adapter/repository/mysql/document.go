package mysql

import (
	"context"

	docDomain "clubdocs-backend/internal/domain/document"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DocumentRepository struct{ db *gorm.DB }

func NewDocumentRepository(db *gorm.DB) *DocumentRepository { return &DocumentRepository{db: db} }

func (r *DocumentRepository) Create(ctx context.Context, d *docDomain.Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DocumentRepository) Save(ctx context.Context, d *docDomain.Document) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *DocumentRepository) GetByDocumentID(ctx context.Context, documentID string) (*docDomain.Document, error) {
	var out docDomain.Document
	res := r.db.WithContext(ctx).Where("document_id = ?", documentID).First(&out)
	return &out, res.Error
}

func (r *DocumentRepository) GetByDocumentIDForUpdate(ctx context.Context, documentID string) (*docDomain.Document, error) {
	var out docDomain.Document
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("document_id = ?", documentID).
		First(&out)
	return &out, res.Error
}

func (r *DocumentRepository) ListByCreator(ctx context.Context, createdBy string) ([]docDomain.Document, error) {
	var out []docDomain.Document
	res := r.db.WithContext(ctx).
		Where("created_by = ?", createdBy).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}
