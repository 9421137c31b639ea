package comment

import "context"

type Repository interface {
	Create(ctx context.Context, c *Comment) error
	// Newest-first
	ListByDocumentID(ctx context.Context, documentNumericID uint64) ([]Comment, error)
}
