// Package repository holds the account data stores. The storefront has no
// database; accounts live in process memory and last for the server's
// lifetime, mirroring the session-only nature of the rest of the state.
package repository

import (
	"context"
	"errors"
	"strings"
	"sync"

	"fashion-store/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user with this email already exists")
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type userRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*domain.User
	byID    map[uuid.UUID]*domain.User
}

// NewUserRepository creates an empty in-memory user repository.
func NewUserRepository() UserRepository {
	return &userRepository{
		byEmail: make(map[string]*domain.User),
		byID:    make(map[uuid.UUID]*domain.User),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Create stores a new user. Emails are unique, case-insensitively.
func (r *userRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := normalizeEmail(user.Email)
	if _, exists := r.byEmail[email]; exists {
		return ErrUserAlreadyExists
	}

	stored := *user
	r.byEmail[email] = &stored
	r.byID[user.ID] = &stored
	return nil
}

// FindByEmail retrieves a user by email.
func (r *userRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, ErrUserNotFound
	}

	out := *user
	return &out, nil
}

// FindByID retrieves a user by ID.
func (r *userRepository) FindByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}

	out := *user
	return &out, nil
}
