package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schema only for tests (no ENUM) ---

type documentSQLite struct {
	ID                    uint64         `gorm:"primaryKey;column:id"`
	DocumentID            string         `gorm:"size:32;column:document_id"`
	Name                  string         `gorm:"column:name"`
	Description           string         `gorm:"column:description"`
	FileURL               string         `gorm:"column:file_url"`
	FileName              string         `gorm:"column:file_name"`
	CreatedBy             string         `gorm:"size:32;column:created_by"`
	RequiresAdminApproval bool           `gorm:"column:requires_admin_approval"`
	AdminApproved         *bool          `gorm:"column:admin_approved"`
	AdminApprovedBy       *string        `gorm:"column:admin_approved_by"`
	AdminApprovedAt       *time.Time     `gorm:"column:admin_approved_at"`
	Status                string         `gorm:"type:text;column:status"` // ← no enum
	StatusUpdatedAt       time.Time      `gorm:"column:status_updated_at"`
	CreatedAt             time.Time      `gorm:"column:created_at"`
	UpdatedAt             time.Time      `gorm:"column:updated_at"`
	DeletedAt             gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (documentSQLite) TableName() string { return "documents" }

type signatorySQLite struct {
	ID          uint64     `gorm:"primaryKey;column:id"`
	SignatoryID string     `gorm:"size:32;column:signatory_id"`
	DocumentID  uint64     `gorm:"column:document_id"`
	Name        string     `gorm:"column:name"`
	Position    string     `gorm:"column:position"`
	Email       string     `gorm:"column:email"`
	Phone       string     `gorm:"column:phone"`
	IsSigned    bool       `gorm:"column:is_signed"`
	SignedAt    *time.Time `gorm:"column:signed_at"`
	Note        string     `gorm:"column:note"`
	OrderIndex  int        `gorm:"column:order_index"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"`
}

func (signatorySQLite) TableName() string { return "document_signatories" }

type commentSQLite struct {
	ID         uint64    `gorm:"primaryKey;column:id"`
	CommentID  string    `gorm:"size:32;column:comment_id"`
	DocumentID uint64    `gorm:"column:document_id"`
	UserID     string    `gorm:"size:32;column:user_id"`
	Content    string    `gorm:"column:content"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (commentSQLite) TableName() string { return "document_comments" }

type activitySQLite struct {
	ID          uint64    `gorm:"primaryKey;column:id"`
	ActivityID  string    `gorm:"size:32;column:activity_id"`
	DocumentID  uint64    `gorm:"column:document_id"`
	UserID      string    `gorm:"size:32;column:user_id"`
	Action      string    `gorm:"column:action"`
	Description string    `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (activitySQLite) TableName() string { return "document_activity" }

type userSQLite struct {
	ID        uint64         `gorm:"primaryKey;column:id"`
	UserID    string         `gorm:"size:32;column:user_id"`
	Email     string         `gorm:"column:email"`
	FullName  string         `gorm:"column:full_name"`
	Role      string         `gorm:"type:text;column:role"` // ← no enum
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (userSQLite) TableName() string { return "users" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the sqlite-safe
// schema, never the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&documentSQLite{}, &signatorySQLite{}, &commentSQLite{}, &activitySQLite{}, &userSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
