package signing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"clubdocs-backend/internal/domain/activity"
	docDomain "clubdocs-backend/internal/domain/document"
	"clubdocs-backend/internal/domain/uow"
	"clubdocs-backend/internal/domain/user"
	"clubdocs-backend/internal/metrics"
	uc "clubdocs-backend/internal/usecase/document"
	"clubdocs-backend/pkg/id"
)

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

type ToggleInput struct {
	DocumentID  string
	SignatoryID string
	Signed      bool
	// nil = not supplied; distinguishes "clear the note" from "replace it"
	// when unsigning.
	Note *string
}

type ToggleResultDTO struct {
	Signatory uc.SignatoryDTO `json:"signatory"`
	Status    string          `json:"status"`
	Progress  int             `json:"progress"`
}

// Toggle flips one signatory's signed flag and keeps the document's derived
// status consistent with the new signatory set. Signatory update, status
// write and the activity row share one transaction.
func (u *Usecase) Toggle(ctx context.Context, sess user.Session, in ToggleInput) (*ToggleResultDTO, error) {
	var out *ToggleResultDTO

	err := u.uow.WithinDocumentTx(ctx, in.DocumentID, func(r uow.Repos, d *docDomain.Document) error {
		s, err := r.Signatories.GetBySignatoryID(ctx, in.SignatoryID)
		if err != nil || s.DocumentID != d.ID {
			return docDomain.ErrSignatoryNotFound
		}
		if s.IsSigned == in.Signed {
			return docDomain.ErrSignatureUnchanged
		}

		now := time.Now().UTC()
		if in.Signed {
			s.IsSigned = true
			s.SignedAt = &now
			if in.Note != nil {
				s.Note = strings.TrimSpace(*in.Note)
			}
		} else {
			s.IsSigned = false
			s.SignedAt = nil
			// unsigning discards the note unless a replacement came in
			if in.Note != nil {
				s.Note = strings.TrimSpace(*in.Note)
			} else {
				s.Note = ""
			}
		}
		if err := r.Signatories.Save(ctx, s); err != nil {
			return err
		}

		sigs, err := r.Signatories.ListByDocumentID(ctx, d.ID)
		if err != nil {
			return err
		}
		next := docDomain.ComputeStatus(sigs, docDomain.ApprovalState{
			Required: d.RequiresAdminApproval,
			Approved: d.AdminApproved,
		})
		if next != d.Status {
			d.Status = next
			d.StatusUpdatedAt = now
			if err := r.Documents.Save(ctx, d); err != nil {
				return err
			}
		}

		action, verb := activity.ActionSignatureAdded, "signed"
		if !in.Signed {
			action, verb = activity.ActionSignatureRemoved, "not signed"
		}
		if err := r.Activities.Create(ctx, &activity.Entry{
			ActivityID:  id.NewID32(),
			DocumentID:  d.ID,
			UserID:      sess.UserID,
			Action:      action,
			Description: fmt.Sprintf("%s marked %s as %s", sess.FullName, s.Name, verb),
		}); err != nil {
			return err
		}

		out = &ToggleResultDTO{
			Signatory: uc.ToSignatoryDTO(s),
			Status:    string(d.Status),
			Progress:  docDomain.Progress(sigs),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	direction := "sign"
	if !in.Signed {
		direction = "unsign"
	}
	metrics.SignatureToggles.WithLabelValues(direction).Inc()
	return out, nil
}
