package commentmock

import (
	"context"
	"errors"

	domain "clubdocs-backend/internal/domain/comment"
)

var errUnimplemented = errors.New("commentmock: method not implemented")

// Repo is a function-backed mock that satisfies comment.Repository.
type Repo struct {
	CreateFn           func(ctx context.Context, c *domain.Comment) error
	ListByDocumentIDFn func(ctx context.Context, documentNumericID uint64) ([]domain.Comment, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.Comment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) ListByDocumentID(ctx context.Context, documentNumericID uint64) ([]domain.Comment, error) {
	if m.ListByDocumentIDFn != nil {
		return m.ListByDocumentIDFn(ctx, documentNumericID)
	}
	return nil, errUnimplemented
}
