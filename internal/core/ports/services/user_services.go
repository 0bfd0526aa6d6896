package services

import (
	"context"
	"time"

	"github.com/nairvarun/clipstream_backend/internal/core/domain"
	"github.com/nairvarun/clipstream_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// UserExists reports whether a user with the given ID exists. Used where
	// only existence matters, so no credential fields are loaded.
	UserExists(ctx context.Context, userID string) (bool, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// Register validates the request, uploads the media files and creates the
	// user record with a hashed password.
	Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// UpdatePassword verifies the old password and replaces the stored hash.
	UpdatePassword(ctx context.Context, userID string, oldPassword, newPassword string) error

	// UpdateRefreshToken updates the refresh token details for a user.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error

	// ClearRefreshToken clears the refresh token for a user (logout).
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// Authenticate authenticates a user by username or email plus password.
	Authenticate(ctx context.Context, username, email, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
