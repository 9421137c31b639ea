package documentmock

import (
	"context"
	"errors"

	domain "clubdocs-backend/internal/domain/document"
)

var errUnimplemented = errors.New("documentmock: method not implemented")

// Repo is a function-backed mock that satisfies document.Repository.
// Fill in only the function fields a test needs.
type Repo struct {
	CreateFn                   func(ctx context.Context, d *domain.Document) error
	GetByDocumentIDFn          func(ctx context.Context, documentID string) (*domain.Document, error)
	GetByDocumentIDForUpdateFn func(ctx context.Context, documentID string) (*domain.Document, error)
	ListByCreatorFn            func(ctx context.Context, createdBy string) ([]domain.Document, error)
	SaveFn                     func(ctx context.Context, d *domain.Document) error
}

func (m *Repo) Create(ctx context.Context, d *domain.Document) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *Repo) GetByDocumentID(ctx context.Context, documentID string) (*domain.Document, error) {
	if m.GetByDocumentIDFn != nil {
		return m.GetByDocumentIDFn(ctx, documentID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByDocumentIDForUpdate(ctx context.Context, documentID string) (*domain.Document, error) {
	if m.GetByDocumentIDForUpdateFn != nil {
		return m.GetByDocumentIDForUpdateFn(ctx, documentID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByCreator(ctx context.Context, createdBy string) ([]domain.Document, error) {
	if m.ListByCreatorFn != nil {
		return m.ListByCreatorFn(ctx, createdBy)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, d *domain.Document) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, d)
	}
	return nil
}

// SignatoryRepo mocks document.SignatoryRepository the same way.
type SignatoryRepo struct {
	CreateBatchFn      func(ctx context.Context, sigs []*domain.Signatory) error
	GetBySignatoryIDFn func(ctx context.Context, signatoryID string) (*domain.Signatory, error)
	ListByDocumentIDFn func(ctx context.Context, documentNumericID uint64) ([]domain.Signatory, error)
	SaveFn             func(ctx context.Context, s *domain.Signatory) error
}

func (m *SignatoryRepo) CreateBatch(ctx context.Context, sigs []*domain.Signatory) error {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(ctx, sigs)
	}
	return nil
}

func (m *SignatoryRepo) GetBySignatoryID(ctx context.Context, signatoryID string) (*domain.Signatory, error) {
	if m.GetBySignatoryIDFn != nil {
		return m.GetBySignatoryIDFn(ctx, signatoryID)
	}
	return nil, errUnimplemented
}

func (m *SignatoryRepo) ListByDocumentID(ctx context.Context, documentNumericID uint64) ([]domain.Signatory, error) {
	if m.ListByDocumentIDFn != nil {
		return m.ListByDocumentIDFn(ctx, documentNumericID)
	}
	return nil, errUnimplemented
}

func (m *SignatoryRepo) Save(ctx context.Context, s *domain.Signatory) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, s)
	}
	return nil
}
