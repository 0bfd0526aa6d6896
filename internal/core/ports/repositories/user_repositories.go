package repositories

import (
	"context"
	"time"

	"github.com/nairvarun/clipstream_backend/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsernameOrEmail retrieves the user matching either identifier.
	// Blank arguments are ignored; at least one must be non-blank.
	FindUserByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error)

	// UserExists reports whether a user with the given ID exists, without
	// loading the record.
	UserExists(ctx context.Context, userID string) (bool, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdatePasswordHash replaces the stored password hash for a user.
	// Single-field update, no full-record validation.
	UpdatePasswordHash(ctx context.Context, userID string, passwordHash string) error

	// UpdateRefreshToken stores the hash and expiry of a freshly issued
	// refresh token, overwriting any prior value.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error

	// ClearRefreshToken removes the stored refresh token for a user.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
