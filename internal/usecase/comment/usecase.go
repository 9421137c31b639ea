package comment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"clubdocs-backend/internal/domain/activity"
	commentDomain "clubdocs-backend/internal/domain/comment"
	docDomain "clubdocs-backend/internal/domain/document"
	"clubdocs-backend/internal/domain/uow"
	"clubdocs-backend/internal/domain/user"
	"clubdocs-backend/pkg/id"
)

type Usecase struct {
	docRepo      docDomain.Repository
	commentRepo  commentDomain.Repository
	activityRepo activity.Repository
	uow          uow.UnitOfWork
}

func NewUsecase(docs docDomain.Repository, comments commentDomain.Repository, activities activity.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{docRepo: docs, commentRepo: comments, activityRepo: activities, uow: tx}
}

type CommentDTO struct {
	CommentID string    `json:"comment_id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type ActivityDTO struct {
	ActivityID  string    `json:"activity_id"`
	UserID      string    `json:"user_id"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func (u *Usecase) Add(ctx context.Context, sess user.Session, documentID, content string) (*CommentDTO, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, commentDomain.ErrEmptyContent
	}

	var dto *CommentDTO
	err := u.uow.WithinDocumentTx(ctx, documentID, func(r uow.Repos, d *docDomain.Document) error {
		c := &commentDomain.Comment{
			CommentID:  id.NewID32(),
			DocumentID: d.ID,
			UserID:     sess.UserID,
			Content:    content,
		}
		if err := r.Comments.Create(ctx, c); err != nil {
			return err
		}
		if err := r.Activities.Create(ctx, &activity.Entry{
			ActivityID:  id.NewID32(),
			DocumentID:  d.ID,
			UserID:      sess.UserID,
			Action:      activity.ActionCommentAdded,
			Description: fmt.Sprintf("%s commented on the document", sess.FullName),
		}); err != nil {
			return err
		}
		dto = &CommentDTO{CommentID: c.CommentID, UserID: c.UserID, Content: c.Content, CreatedAt: c.CreatedAt}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// List returns the document's comments, newest first.
func (u *Usecase) List(ctx context.Context, documentID string) ([]CommentDTO, error) {
	d, err := u.docRepo.GetByDocumentID(ctx, documentID)
	if err != nil {
		return nil, docDomain.ErrNotFound
	}
	comments, err := u.commentRepo.ListByDocumentID(ctx, d.ID)
	if err != nil {
		return nil, err
	}
	out := make([]CommentDTO, 0, len(comments))
	for _, c := range comments {
		out = append(out, CommentDTO{CommentID: c.CommentID, UserID: c.UserID, Content: c.Content, CreatedAt: c.CreatedAt})
	}
	return out, nil
}

// Activity returns the document's audit trail, newest first.
func (u *Usecase) Activity(ctx context.Context, documentID string) ([]ActivityDTO, error) {
	d, err := u.docRepo.GetByDocumentID(ctx, documentID)
	if err != nil {
		return nil, docDomain.ErrNotFound
	}
	entries, err := u.activityRepo.ListByDocumentID(ctx, d.ID)
	if err != nil {
		return nil, err
	}
	out := make([]ActivityDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, ActivityDTO{
			ActivityID:  e.ActivityID,
			UserID:      e.UserID,
			Action:      e.Action,
			Description: e.Description,
			CreatedAt:   e.CreatedAt,
		})
	}
	return out, nil
}
