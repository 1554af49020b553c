package domain

import (
	"strings"
	"time"
)

type UserRole string

const (
	RoleGuest      UserRole = "guest"
	RoleStaff      UserRole = "staff"
	RoleManagement UserRole = "management"
	RoleAdmin      UserRole = "admin"
)

// ParseRole normalizes a role name; ok is false for unknown roles.
func ParseRole(s string) (UserRole, bool) {
	r := UserRole(strings.ToLower(strings.TrimSpace(s)))
	switch r {
	case RoleGuest, RoleStaff, RoleManagement, RoleAdmin:
		return r, true
	}
	return "", false
}

// IsPrivileged reports whether the role may see every booking.
func (r UserRole) IsPrivileged() bool {
	return r == RoleStaff || r == RoleManagement || r == RoleAdmin
}

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
