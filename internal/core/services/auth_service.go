package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nairvarun/clipstream_backend/internal/apperrors"
	"github.com/nairvarun/clipstream_backend/internal/core/domain"
	portssvc "github.com/nairvarun/clipstream_backend/internal/core/ports/services"
	"github.com/nairvarun/clipstream_backend/internal/platform/config"
	"github.com/nairvarun/clipstream_backend/internal/utils"
)

// tokenService implements the TokenSvcFacade for handling the access and
// refresh JWTs. Both token kinds are self-contained HS256 tokens carrying the
// user ID as subject; they differ only in secret and lifetime. The refresh
// token is additionally persisted (as a SHA-256 hash) on the user record so
// that a stale or replayed token can be detected.
type tokenService struct {
	cfg         *config.Config
	userService portssvc.UserSvcFacade
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, userService portssvc.UserSvcFacade) portssvc.TokenSvcFacade {
	return &tokenService{
		cfg:         cfg,
		userService: userService,
	}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateAccessToken creates a new short-lived access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.AccessTokenExpiryDuration)

	accessToken, err := utils.GenerateJWT(user.UserID, s.cfg.AccessTokenSecret, s.cfg.AccessTokenExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}

// GenerateRefreshToken creates a new long-lived refresh token for the given user.
func (s *tokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)

	refreshToken, err := utils.GenerateJWT(user.UserID, s.cfg.RefreshTokenSecret, s.cfg.RefreshTokenExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, err
	}
	return refreshToken, expiryTime, nil
}

// IssueTokenPair mints both tokens and persists the refresh token hash onto
// the user record, implicitly revoking whatever token was stored before. A
// failed store write surfaces as ErrTokenPersistence.
func (s *tokenService) IssueTokenPair(ctx context.Context, user *domain.User) (string, string, error) {
	accessToken, _, err := s.GenerateAccessToken(ctx, user)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiry, err := s.GenerateRefreshToken(ctx, user)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate refresh token: %w", err)
	}

	refreshTokenHash := utils.HashRefreshToken(refreshToken)
	if err := s.userService.UpdateRefreshToken(ctx, user.UserID, refreshTokenHash, refreshExpiry); err != nil {
		return "", "", fmt.Errorf("%w: %s", apperrors.ErrTokenPersistence, err.Error())
	}

	return accessToken, refreshToken, nil
}

// ValidateAccessToken checks an access token's signature and expiry and
// returns the embedded user ID.
func (s *tokenService) ValidateAccessToken(tokenString string) (string, error) {
	claims, err := utils.ParseAndValidateJWT(tokenString, s.cfg.AccessTokenSecret)
	if err != nil {
		return "", fmt.Errorf("%w: %s", apperrors.ErrInvalidToken, err.Error())
	}
	if claims.Subject == "" {
		return "", apperrors.ErrInvalidToken
	}
	return claims.Subject, nil
}

// RefreshSession rotates the token pair. The presented token must verify
// against the refresh secret, reference an existing user and equal the token
// currently stored for that user; only then is a new pair issued.
func (s *tokenService) RefreshSession(ctx context.Context, presentedRefreshToken string) (*domain.User, string, string, error) {
	presentedRefreshToken = strings.TrimSpace(presentedRefreshToken)
	if presentedRefreshToken == "" {
		return nil, "", "", apperrors.ErrUnauthorized
	}

	claims, err := utils.ParseAndValidateJWT(presentedRefreshToken, s.cfg.RefreshTokenSecret)
	if err != nil {
		return nil, "", "", fmt.Errorf("%w: %s", apperrors.ErrInvalidToken, err.Error())
	}

	user, err := s.userService.GetUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", "", apperrors.ErrUnauthorized
		}
		return nil, "", "", fmt.Errorf("failed to load user for refresh: %w", err)
	}

	// Reuse detection: a logout clears the stored hash and a refresh rotates
	// it, so any previously issued token stops matching here even when its
	// signature is still valid.
	if user.RefreshTokenHash == "" || !utils.CompareRefreshTokenHash(presentedRefreshToken, user.RefreshTokenHash) {
		return nil, "", "", apperrors.ErrTokenReuse
	}

	accessToken, refreshToken, err := s.IssueTokenPair(ctx, user)
	if err != nil {
		return nil, "", "", err
	}
	return user, accessToken, refreshToken, nil
}
