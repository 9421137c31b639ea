package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "clubdocs-backend/internal/domain/document"
	"clubdocs-backend/pkg/id"

	"gorm.io/gorm"
)

func TestSignatoryCreateBatchAndListOrder(t *testing.T) {
	db := openTestDB(t)
	docs := NewDocumentRepository(db)
	repo := NewSignatoryRepository(db)
	ctx := context.Background()

	d := makeDocument(id.NewID32(), id.NewID32())
	if err := docs.Create(ctx, d); err != nil {
		t.Fatalf("Create doc: %v", err)
	}

	// inserted out of order on purpose
	sigs := []*domain.Signatory{
		{SignatoryID: id.NewID32(), DocumentID: d.ID, Name: "Treasurer", OrderIndex: 2},
		{SignatoryID: id.NewID32(), DocumentID: d.ID, Name: "President", OrderIndex: 0},
		{SignatoryID: id.NewID32(), DocumentID: d.ID, Name: "Advisor", OrderIndex: 1},
	}
	if err := repo.CreateBatch(ctx, sigs); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	got, err := repo.ListByDocumentID(ctx, d.ID)
	if err != nil {
		t.Fatalf("ListByDocumentID: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("rows = %d, want 3", len(got))
	}
	want := []string{"President", "Advisor", "Treasurer"}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("position %d = %s, want %s", i, got[i].Name, name)
		}
	}
}

func TestSignatoryCreateBatch_EmptyIsNoop(t *testing.T) {
	db := openTestDB(t)
	repo := NewSignatoryRepository(db)

	if err := repo.CreateBatch(context.Background(), nil); err != nil {
		t.Fatalf("empty batch: %v", err)
	}
}

func TestSignatorySavePersistsSignature(t *testing.T) {
	db := openTestDB(t)
	docs := NewDocumentRepository(db)
	repo := NewSignatoryRepository(db)
	ctx := context.Background()

	d := makeDocument(id.NewID32(), id.NewID32())
	if err := docs.Create(ctx, d); err != nil {
		t.Fatalf("Create doc: %v", err)
	}

	s := &domain.Signatory{SignatoryID: id.NewID32(), DocumentID: d.ID, Name: "President"}
	if err := repo.CreateBatch(ctx, []*domain.Signatory{s}); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	now := time.Now().UTC()
	s.IsSigned = true
	s.SignedAt = &now
	s.Note = "signed at the board meeting"
	if err := repo.Save(ctx, s); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetBySignatoryID(ctx, s.SignatoryID)
	if err != nil {
		t.Fatalf("GetBySignatoryID: %v", err)
	}
	if !got.IsSigned || got.SignedAt == nil {
		t.Fatalf("signature not persisted: %+v", got)
	}
	if got.Note != "signed at the board meeting" {
		t.Fatalf("note = %q", got.Note)
	}
}

func TestSignatoryGet_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewSignatoryRepository(db)

	_, err := repo.GetBySignatoryID(context.Background(), "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
