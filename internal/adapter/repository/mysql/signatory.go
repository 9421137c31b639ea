package mysql

import (
	"context"

	docDomain "clubdocs-backend/internal/domain/document"

	"gorm.io/gorm"
)

type SignatoryRepository struct{ db *gorm.DB }

func NewSignatoryRepository(db *gorm.DB) *SignatoryRepository { return &SignatoryRepository{db: db} }

func (r *SignatoryRepository) CreateBatch(ctx context.Context, sigs []*docDomain.Signatory) error {
	if len(sigs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(sigs).Error
}

func (r *SignatoryRepository) GetBySignatoryID(ctx context.Context, signatoryID string) (*docDomain.Signatory, error) {
	var out docDomain.Signatory
	res := r.db.WithContext(ctx).Where("signatory_id = ?", signatoryID).First(&out)
	return &out, res.Error
}

func (r *SignatoryRepository) ListByDocumentID(ctx context.Context, documentNumericID uint64) ([]docDomain.Signatory, error) {
	var out []docDomain.Signatory
	res := r.db.WithContext(ctx).
		Where("document_id = ?", documentNumericID).
		Order("order_index ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *SignatoryRepository) Save(ctx context.Context, s *docDomain.Signatory) error {
	return r.db.WithContext(ctx).Save(s).Error
}
