package uow

import (
	"context"

	"clubdocs-backend/internal/domain/activity"
	"clubdocs-backend/internal/domain/comment"
	"clubdocs-backend/internal/domain/document"
	"clubdocs-backend/internal/domain/user"
)

type Repos struct {
	Documents   document.Repository
	Signatories document.SignatoryRepository
	Comments    comment.Repository
	Activities  activity.Repository
	Users       user.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the document row first, then pass it in
	WithinDocumentTx(ctx context.Context, documentID string, fn func(r Repos, d *document.Document) error) error
}
