package document

import (
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusRejected   Status = "rejected"
)

// Document tracks one file circulated for signatures. `status` is
// denormalized: every mutation path recomputes it from the signatory rows
// and the approval overlay inside the same transaction (see ComputeStatus).
type Document struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Public identifier (32-char lowercase hex)
	DocumentID  string `gorm:"column:document_id;type:char(32);not null;uniqueIndex:ux_documents_document_id_active"`
	Name        string `gorm:"column:name;size:255;not null"`
	Description string `gorm:"column:description;type:text"`
	// Retrievable reference to the attached upload
	FileURL  string `gorm:"column:file_url;type:text;not null"`
	FileName string `gorm:"column:file_name;size:255;not null"`
	// Public user_id of the creator
	CreatedBy string `gorm:"column:created_by;type:char(32);not null;index:idx_documents_created_by"`

	RequiresAdminApproval bool `gorm:"column:requires_admin_approval;not null;default:false"`
	// Tri-state: nil = awaiting, true = approved, false = rejected.
	// Meaningful only when RequiresAdminApproval is set.
	AdminApproved   *bool      `gorm:"column:admin_approved"`
	AdminApprovedBy *string    `gorm:"column:admin_approved_by;type:char(32)"`
	AdminApprovedAt *time.Time `gorm:"column:admin_approved_at"`

	Status          Status         `gorm:"column:status;type:enum('pending','in_progress','completed','rejected');default:'pending'"`
	StatusUpdatedAt time.Time      `gorm:"column:status_updated_at;autoCreateTime"`
	CreatedAt       time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Document) TableName() string { return "documents" }

// Signatory is an external party expected to sign; tracked as a row, not a
// user account. Created in a batch with the document, mutated only by the
// sign/unsign toggle. OrderIndex is display order, not a sequencing
// constraint: any signatory may be toggled regardless of position.
type Signatory struct {
	ID          uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	SignatoryID string `gorm:"column:signatory_id;type:char(32);not null;uniqueIndex:ux_signatories_signatory_id"`
	// FK to documents.id (numeric); cascade delete at the DB level
	DocumentID uint64 `gorm:"column:document_id;not null;index:idx_signatories_document"`
	Name       string `gorm:"column:name;size:255;not null"`
	Position   string `gorm:"column:position;size:255"`
	Email      string `gorm:"column:email;size:255"`
	Phone      string `gorm:"column:phone;size:64"`
	IsSigned   bool   `gorm:"column:is_signed;not null;default:false"`
	// Set iff IsSigned
	SignedAt   *time.Time `gorm:"column:signed_at"`
	Note       string     `gorm:"column:note;type:text"`
	OrderIndex int        `gorm:"column:order_index;not null;default:0"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Signatory) TableName() string { return "document_signatories" }
