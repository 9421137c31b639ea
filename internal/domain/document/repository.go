package document

import "context"

type Repository interface {
	Create(ctx context.Context, d *Document) error
	GetByDocumentID(ctx context.Context, documentID string) (*Document, error)
	// Same lookup with a row lock; only valid inside a transaction.
	GetByDocumentIDForUpdate(ctx context.Context, documentID string) (*Document, error)
	ListByCreator(ctx context.Context, createdBy string) ([]Document, error)
	Save(ctx context.Context, d *Document) error
}

type SignatoryRepository interface {
	// Batch insert alongside document creation
	CreateBatch(ctx context.Context, sigs []*Signatory) error
	GetBySignatoryID(ctx context.Context, signatoryID string) (*Signatory, error)
	// All signatories of a document in order_index order
	ListByDocumentID(ctx context.Context, documentNumericID uint64) ([]Signatory, error)
	Save(ctx context.Context, s *Signatory) error
}
