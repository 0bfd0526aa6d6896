package services

import (
	"context"
	"time"

	"github.com/nairvarun/clipstream_backend/internal/core/domain"
)

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	// GenerateAccessToken mints a short-lived access token for the user.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// GenerateRefreshToken mints a long-lived refresh token for the user.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// IssueTokenPair mints both tokens and persists the refresh token hash on
	// the user record, overwriting (and thereby revoking) any prior token.
	// This is the only token operation with a persistence side effect.
	IssueTokenPair(ctx context.Context, user *domain.User) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks signature and expiry of an access token and
	// returns the embedded user ID.
	ValidateAccessToken(tokenString string) (userID string, err error)

	// RefreshSession rotates the token pair: it verifies the presented refresh
	// token, detects reuse against the stored value, and issues a new pair.
	RefreshSession(ctx context.Context, presentedRefreshToken string) (*domain.User, string, string, error)
}
