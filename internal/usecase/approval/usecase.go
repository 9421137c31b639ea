package approval

import (
	"context"
	"fmt"
	"time"

	"clubdocs-backend/internal/domain/activity"
	docDomain "clubdocs-backend/internal/domain/document"
	"clubdocs-backend/internal/domain/uow"
	"clubdocs-backend/internal/domain/user"
	"clubdocs-backend/internal/metrics"
	"clubdocs-backend/pkg/id"
)

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

type DecideInput struct {
	DocumentID string
	Approved   bool
}

type DecisionDTO struct {
	DocumentID      string    `json:"document_id"`
	AdminApproved   bool      `json:"admin_approved"`
	AdminApprovedBy string    `json:"admin_approved_by"`
	AdminApprovedAt time.Time `json:"admin_approved_at"`
	Status          string    `json:"status"`
}

// Decide records an admin's approval or rejection and re-derives the
// document status under the new overlay. A rejection moves the document to
// rejected even if every signatory has already signed; reversing the
// decision re-completes it on the same recompute.
func (u *Usecase) Decide(ctx context.Context, sess user.Session, in DecideInput) (*DecisionDTO, error) {
	if !sess.IsAdmin() {
		return nil, user.ErrForbidden
	}

	var out *DecisionDTO
	err := u.uow.WithinDocumentTx(ctx, in.DocumentID, func(r uow.Repos, d *docDomain.Document) error {
		if !d.RequiresAdminApproval {
			return docDomain.ErrApprovalNotRequired
		}

		now := time.Now().UTC()
		approved := in.Approved
		actor := sess.UserID
		d.AdminApproved = &approved
		d.AdminApprovedBy = &actor
		d.AdminApprovedAt = &now

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
		}
		if err := r.Documents.Save(ctx, d); err != nil {
			return err
		}

		action, verb := activity.ActionAdminApproved, "approved"
		if !approved {
			action, verb = activity.ActionAdminRejected, "rejected"
		}
		if err := r.Activities.Create(ctx, &activity.Entry{
			ActivityID:  id.NewID32(),
			DocumentID:  d.ID,
			UserID:      sess.UserID,
			Action:      action,
			Description: fmt.Sprintf("%s %s the document", sess.FullName, verb),
		}); err != nil {
			return err
		}

		out = &DecisionDTO{
			DocumentID:      d.DocumentID,
			AdminApproved:   approved,
			AdminApprovedBy: actor,
			AdminApprovedAt: now,
			Status:          string(d.Status),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	outcome := "approved"
	if !in.Approved {
		outcome = "rejected"
	}
	metrics.ApprovalDecisions.WithLabelValues(outcome).Inc()
	return out, nil
}
