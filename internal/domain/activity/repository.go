package activity

import "context"

type Repository interface {
	Create(ctx context.Context, e *Entry) error
	// Newest-first
	ListByDocumentID(ctx context.Context, documentNumericID uint64) ([]Entry, error)
}
