package activitymock

import (
	"context"
	"errors"

	domain "clubdocs-backend/internal/domain/activity"
)

var errUnimplemented = errors.New("activitymock: method not implemented")

// Repo is a function-backed mock that satisfies activity.Repository.
type Repo struct {
	CreateFn           func(ctx context.Context, e *domain.Entry) error
	ListByDocumentIDFn func(ctx context.Context, documentNumericID uint64) ([]domain.Entry, error)
}

func (m *Repo) Create(ctx context.Context, e *domain.Entry) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}

func (m *Repo) ListByDocumentID(ctx context.Context, documentNumericID uint64) ([]domain.Entry, error) {
	if m.ListByDocumentIDFn != nil {
		return m.ListByDocumentIDFn(ctx, documentNumericID)
	}
	return nil, errUnimplemented
}
