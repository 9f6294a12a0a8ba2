package user

import (
	"net/http"
	"time"

	"github.com/smartcampus/room-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "user not found")
	ErrEmailAlreadyUsed   = apperror.New(http.StatusConflict, "email already registered")
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "invalid email or password")
	ErrInactiveUser       = apperror.New(http.StatusForbidden, "user account is deactivated")
	ErrInvalidRole        = apperror.New(http.StatusBadRequest, "invalid role")
)

// Role classifies campus users. Admins carry the capability for
// room management and booking approval.
type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	RoleAdmin   Role = "admin"
)

// ValidRoles lists the roles accepted at registration.
var ValidRoles = []Role{RoleStudent, RoleFaculty, RoleAdmin}

// User represents an account in the system.
type User struct {
	ID           string // UUID
	FullName     string
	Email        string
	PasswordHash string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}

// IsAdmin reports whether the user carries the admin capability.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
