package domain

import "time"

// UserRole represents the role of a staff account
type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleTherapist UserRole = "therapist"
)

// User represents a staff account of the administration console
type User struct {
	ID           int64
	Email        string
	Name         string
	Role         UserRole
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin returns true if the user has administrative rights
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanBeAssigned returns true if appointments can be assigned to this user
func (u *User) CanBeAssigned() bool {
	return u.IsActive && u.Role == RoleTherapist
}
