package user

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("user not found")
	ErrForbidden = errors.New("operation requires admin role")
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// User rows are created by the identity provider on first sign-up; this
// service reads them but never manages their lifecycle.
type User struct {
	ID        uint64         `gorm:"column:id;primaryKey;autoIncrement"`
	UserID    string         `gorm:"column:user_id;type:char(32);not null;uniqueIndex:ux_users_user_id_active"`
	Email     string         `gorm:"column:email;size:255;not null"`
	FullName  string         `gorm:"column:full_name;size:255;not null"`
	Role      Role           `gorm:"column:role;type:enum('admin','member');default:'member'"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (User) TableName() string { return "users" }

// Session is the caller's resolved identity, passed explicitly through
// usecases so authorization checks stay pure functions of its value.
type Session struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     Role   `json:"role"`
}

func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }

func SessionFor(u *User) Session {
	return Session{UserID: u.UserID, Email: u.Email, FullName: u.FullName, Role: u.Role}
}
