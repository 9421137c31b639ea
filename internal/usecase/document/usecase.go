package document

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"clubdocs-backend/internal/domain/activity"
	docDomain "clubdocs-backend/internal/domain/document"
	"clubdocs-backend/internal/domain/uow"
	"clubdocs-backend/internal/domain/user"
	"clubdocs-backend/internal/metrics"
	"clubdocs-backend/pkg/id"
)

const minNameLen = 3

type Usecase struct {
	docRepo docDomain.Repository
	sigRepo docDomain.SignatoryRepository
	uow     uow.UnitOfWork
}

// NewUsecase: direct repos serve the read paths, the UoW wraps creation.
func NewUsecase(docs docDomain.Repository, sigs docDomain.SignatoryRepository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{docRepo: docs, sigRepo: sigs, uow: tx}
}

func (u *Usecase) Create(ctx context.Context, sess user.Session, in CreateDocumentInput) (*DocumentDTO, error) {
	name := strings.TrimSpace(in.Name)
	if utf8.RuneCountInString(name) < minNameLen {
		return nil, docDomain.ErrNameTooShort
	}
	// A document record always carries its upload; creation without one is
	// rejected before any write.
	if strings.TrimSpace(in.FileURL) == "" || strings.TrimSpace(in.FileName) == "" {
		return nil, docDomain.ErrFileRequired
	}

	now := time.Now().UTC()
	d := &docDomain.Document{
		DocumentID:            id.NewID32(),
		Name:                  name,
		Description:           strings.TrimSpace(in.Description),
		FileURL:               in.FileURL,
		FileName:              in.FileName,
		CreatedBy:             sess.UserID,
		RequiresAdminApproval: in.RequiresAdminApproval,
		Status:                docDomain.StatusPending,
		StatusUpdatedAt:       now,
	}

	// Document, signatories and the "created" activity row land in one
	// transaction: either the whole record exists or none of it does.
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Documents.Create(ctx, d); err != nil {
			return err
		}

		sigs := make([]*docDomain.Signatory, 0, len(in.Signatories))
		for _, s := range in.Signatories {
			sigName := strings.TrimSpace(s.Name)
			if sigName == "" {
				// blank names are silently dropped
				continue
			}
			sigs = append(sigs, &docDomain.Signatory{
				SignatoryID: id.NewID32(),
				DocumentID:  d.ID,
				Name:        sigName,
				Position:    strings.TrimSpace(s.Position),
				Email:       strings.TrimSpace(s.Email),
				Phone:       strings.TrimSpace(s.Phone),
				OrderIndex:  len(sigs),
			})
		}
		if err := r.Signatories.CreateBatch(ctx, sigs); err != nil {
			return err
		}

		return r.Activities.Create(ctx, &activity.Entry{
			ActivityID:  id.NewID32(),
			DocumentID:  d.ID,
			UserID:      sess.UserID,
			Action:      activity.ActionCreated,
			Description: fmt.Sprintf("%s created document %q with %d signatories", sess.FullName, name, len(sigs)),
		})
	})
	if err != nil {
		return nil, err
	}

	metrics.DocumentsCreated.Inc()
	return toDocumentDTO(d), nil
}

// Get returns the document with its signatories embedded and the derived
// signing progress.
func (u *Usecase) Get(ctx context.Context, documentID string) (*DocumentDetailDTO, error) {
	d, err := u.docRepo.GetByDocumentID(ctx, documentID)
	if err != nil {
		return nil, docDomain.ErrNotFound
	}
	sigs, err := u.sigRepo.ListByDocumentID(ctx, d.ID)
	if err != nil {
		return nil, err
	}
	return toDocumentDetailDTO(d, sigs), nil
}

func (u *Usecase) ListByCreator(ctx context.Context, sess user.Session) ([]DocumentDTO, error) {
	docs, err := u.docRepo.ListByCreator(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}
	out := make([]DocumentDTO, 0, len(docs))
	for i := range docs {
		out = append(out, *toDocumentDTO(&docs[i]))
	}
	return out, nil
}
