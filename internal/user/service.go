package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/smartcampus/room-booking-backend/internal/auth"
	"github.com/smartcampus/room-booking-backend/internal/pkg/apperror"
)

// Service defines business logic related to users.
type Service interface {
	Register(ctx context.Context, fullName, email, password string, role Role) (*User, error)
	Login(ctx context.Context, email, password string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

type service struct {
	repo   Repository
	hasher auth.PasswordHasher

	minPasswordLength int
}

// NewService creates a new user Service.
func NewService(repo Repository, hasher auth.PasswordHasher) Service {
	return &service{
		repo:              repo,
		hasher:            hasher,
		minPasswordLength: 8,
	}
}

func (s *service) Register(ctx context.Context, fullName, email, password string, role Role) (*User, error) {
	cleanName := strings.TrimSpace(fullName)
	cleanEmail := normalizeEmail(email)

	if cleanName == "" {
		return nil, apperror.Validation("full name is required")
	}
	if cleanEmail == "" {
		return nil, apperror.Validation("email is required")
	}
	if len(password) < s.minPasswordLength {
		return nil, apperror.Validation("password must be at least 8 characters")
	}

	if role == "" {
		role = RoleStudent
	}
	if !validRole(role) {
		return nil, ErrInvalidRole
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, apperror.Unavailable(err)
	}

	u := &User{
		FullName:     cleanName,
		Email:        cleanEmail,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}

	// The unique index on email is the authority here; a racing duplicate
	// registration surfaces as ErrEmailAlreadyUsed from the repository.
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*User, error) {
	cleanEmail := normalizeEmail(email)
	if cleanEmail == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.repo.GetByEmail(ctx, cleanEmail)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !u.IsActive {
		return nil, ErrInactiveUser
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Best effort; do not fail login if the timestamp update fails.
	now := time.Now().UTC()
	_ = s.repo.UpdateLastLogin(ctx, u.ID, now)
	u.LastLoginAt = &now

	return u, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func validRole(r Role) bool {
	for _, v := range ValidRoles {
		if r == v {
			return true
		}
	}
	return false
}

// normalizeEmail trims spaces and lowercases the email.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
