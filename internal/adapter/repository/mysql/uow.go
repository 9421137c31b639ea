package mysql

import (
	"context"

	"clubdocs-backend/internal/domain/document"
	"clubdocs-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func txRepos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Documents:   &DocumentRepository{db: tx},
		Signatories: &SignatoryRepository{db: tx},
		Comments:    &CommentRepository{db: tx},
		Activities:  &ActivityRepository{db: tx},
		Users:       &UserRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(txRepos(tx))
	})
}

func (u *GormUoW) WithinDocumentTx(ctx context.Context, documentID string, fn func(r uow.Repos, d *document.Document) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := txRepos(tx)
		// lock the document row up-front to prevent races
		d, err := r.Documents.GetByDocumentIDForUpdate(ctx, documentID)
		if err != nil {
			return err
		}
		return fn(r, d)
	})
}
