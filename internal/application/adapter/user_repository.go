package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/bookmate/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create stores a new user.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email, or nil when none exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// PasswordService defines password hashing operations.
type PasswordService interface {
	// Hash produces a password hash for storage.
	Hash(password string) (string, error)

	// Compare checks a plain password against a stored hash.
	Compare(hash, password string) error
}

// TokenService defines access token operations.
type TokenService interface {
	// Generate issues a signed access token for a user.
	Generate(userID uuid.UUID) (string, error)

	// Validate checks a token and returns the user ID it was issued for.
	Validate(token string) (uuid.UUID, error)
}
