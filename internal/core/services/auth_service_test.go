package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/nairvarun/clipstream_backend/internal/apperrors"
	"github.com/nairvarun/clipstream_backend/internal/core/domain"
	"github.com/nairvarun/clipstream_backend/internal/core/services"
	"github.com/nairvarun/clipstream_backend/internal/dto"
	"github.com/nairvarun/clipstream_backend/internal/platform/config"
	"github.com/nairvarun/clipstream_backend/internal/utils"
)

// --- Mock UserService (based on tokenService usage) ---
type MockUserSvc struct {
	mock.Mock
	GetUserByIDFn        func(ctx context.Context, userID string) (*domain.User, error)
	UpdateRefreshTokenFn func(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error
	ClearRefreshTokenFn  func(ctx context.Context, userID string) error
}

func (m *MockUserSvc) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetUserByIDFn != nil {
		return m.GetUserByIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserSvc) UserExists(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserSvc) Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserSvc) UpdatePassword(ctx context.Context, userID string, oldPassword, newPassword string) error {
	args := m.Called(ctx, userID, oldPassword, newPassword)
	return args.Error(0)
}

func (m *MockUserSvc) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	if m.UpdateRefreshTokenFn != nil {
		return m.UpdateRefreshTokenFn(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	}
	args := m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}

func (m *MockUserSvc) ClearRefreshToken(ctx context.Context, userID string) error {
	if m.ClearRefreshTokenFn != nil {
		return m.ClearRefreshTokenFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserSvc) Authenticate(ctx context.Context, username, email, password string) (*domain.User, error) {
	args := m.Called(ctx, username, email, password)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

// --- Test Suite ---
type TokenServiceTestSuite struct {
	suite.Suite
	cfg         *config.Config
	mockUserSvc *MockUserSvc
	ctx         context.Context
}

func (s *TokenServiceTestSuite) SetupTest() {
	s.cfg = &config.Config{
		AccessTokenSecret:          "access-secret-for-tests",
		AccessTokenExpiryDuration:  15 * time.Minute,
		RefreshTokenSecret:         "refresh-secret-for-tests",
		RefreshTokenExpiryDuration: 24 * time.Hour,
		JWTIssuer:                  "clipstream-test",
	}
	s.mockUserSvc = new(MockUserSvc)
	s.ctx = context.Background()
}

func (s *TokenServiceTestSuite) TestGenerateAccessToken_VerifiableWithAccessSecretOnly() {
	svc := services.NewTokenService(s.cfg, s.mockUserSvc)
	user := &domain.User{UserID: "u-1"}

	token, expiry, err := svc.GenerateAccessToken(s.ctx, user)
	s.Require().NoError(err)
	s.WithinDuration(time.Now().Add(s.cfg.AccessTokenExpiryDuration), expiry, 5*time.Second)

	claims, err := utils.ParseAndValidateJWT(token, s.cfg.AccessTokenSecret)
	s.Require().NoError(err)
	s.Equal("u-1", claims.Subject)
	s.Equal(s.cfg.JWTIssuer, claims.Issuer)

	_, err = utils.ParseAndValidateJWT(token, s.cfg.RefreshTokenSecret)
	s.Error(err)
}

func (s *TokenServiceTestSuite) TestIssueTokenPair_PersistsRefreshTokenHash() {
	svc := services.NewTokenService(s.cfg, s.mockUserSvc)
	user := &domain.User{UserID: "u-1"}

	var storedHash string
	var storedExpiry time.Time
	s.mockUserSvc.UpdateRefreshTokenFn = func(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
		s.Equal("u-1", userID)
		storedHash = refreshTokenHash
		storedExpiry = refreshTokenExpiryTime
		return nil
	}

	accessToken, refreshToken, err := svc.IssueTokenPair(s.ctx, user)
	s.Require().NoError(err)
	s.NotEqual(accessToken, refreshToken)

	// The raw token is never stored, only its digest.
	s.NotEqual(refreshToken, storedHash)
	s.Equal(utils.HashRefreshToken(refreshToken), storedHash)
	s.True(utils.CompareRefreshTokenHash(refreshToken, storedHash))
	s.WithinDuration(time.Now().Add(s.cfg.RefreshTokenExpiryDuration), storedExpiry, 5*time.Second)

	userID, err := svc.ValidateAccessToken(accessToken)
	s.Require().NoError(err)
	s.Equal("u-1", userID)
}

func (s *TokenServiceTestSuite) TestIssueTokenPair_StoreFailure() {
	svc := services.NewTokenService(s.cfg, s.mockUserSvc)

	s.mockUserSvc.UpdateRefreshTokenFn = func(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
		return errors.New("connection reset")
	}

	_, _, err := svc.IssueTokenPair(s.ctx, &domain.User{UserID: "u-1"})
	s.ErrorIs(err, apperrors.ErrTokenPersistence)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_Garbage() {
	svc := services.NewTokenService(s.cfg, s.mockUserSvc)

	_, err := svc.ValidateAccessToken("not-a-jwt")
	s.ErrorIs(err, apperrors.ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_RejectsRefreshToken() {
	svc := services.NewTokenService(s.cfg, s.mockUserSvc)

	refreshToken, _, err := svc.GenerateRefreshToken(s.ctx, &domain.User{UserID: "u-1"})
	s.Require().NoError(err)

	_, err = svc.ValidateAccessToken(refreshToken)
	s.ErrorIs(err, apperrors.ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_Expired() {
	svc := services.NewTokenService(s.cfg, s.mockUserSvc)

	expired, err := utils.GenerateJWT("u-1", s.cfg.AccessTokenSecret, -time.Minute, s.cfg.JWTIssuer)
	s.Require().NoError(err)

	_, err = svc.ValidateAccessToken(expired)
	s.ErrorIs(err, apperrors.ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestRefreshSession_BlankToken() {
	svc := services.NewTokenService(s.cfg, s.mockUserSvc)

	_, _, _, err := svc.RefreshSession(s.ctx, "   ")
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *TokenServiceTestSuite) TestRefreshSession_BadSignature() {
	svc := services.NewTokenService(s.cfg, s.mockUserSvc)

	forged, err := utils.GenerateJWT("u-1", "some-other-secret", time.Hour, s.cfg.JWTIssuer)
	s.Require().NoError(err)

	_, _, _, err = svc.RefreshSession(s.ctx, forged)
	s.ErrorIs(err, apperrors.ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestRefreshSession_UnknownUser() {
	svc := services.NewTokenService(s.cfg, s.mockUserSvc)

	token, err := utils.GenerateJWT("ghost", s.cfg.RefreshTokenSecret, time.Hour, s.cfg.JWTIssuer)
	s.Require().NoError(err)

	s.mockUserSvc.GetUserByIDFn = func(ctx context.Context, userID string) (*domain.User, error) {
		return nil, apperrors.ErrNotFound
	}

	_, _, _, err = svc.RefreshSession(s.ctx, token)
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *TokenServiceTestSuite) TestRefreshSession_RotationInvalidatesOldToken() {
	svc := services.NewTokenService(s.cfg, s.mockUserSvc)

	// Simulate the single stored hash per user.
	user := &domain.User{UserID: "u-1"}
	s.mockUserSvc.GetUserByIDFn = func(ctx context.Context, userID string) (*domain.User, error) {
		u := *user
		return &u, nil
	}
	s.mockUserSvc.UpdateRefreshTokenFn = func(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
		user.RefreshTokenHash = refreshTokenHash
		return nil
	}

	_, firstRefresh, err := svc.IssueTokenPair(s.ctx, user)
	s.Require().NoError(err)

	refreshed, newAccess, secondRefresh, err := svc.RefreshSession(s.ctx, firstRefresh)
	s.Require().NoError(err)
	s.Equal("u-1", refreshed.UserID)
	s.NotEmpty(newAccess)
	s.NotEqual(firstRefresh, secondRefresh)

	// The rotated-out token still has a valid signature but no longer
	// matches the stored hash.
	_, err = jwt.ParseWithClaims(firstRefresh, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.RefreshTokenSecret), nil
	})
	s.Require().NoError(err)

	_, _, _, err = svc.RefreshSession(s.ctx, firstRefresh)
	s.ErrorIs(err, apperrors.ErrTokenReuse)

	// The freshly rotated token keeps working.
	_, _, _, err = svc.RefreshSession(s.ctx, secondRefresh)
	s.NoError(err)
}

func (s *TokenServiceTestSuite) TestRefreshSession_ClearedSessionRejectsToken() {
	svc := services.NewTokenService(s.cfg, s.mockUserSvc)

	token, err := utils.GenerateJWT("u-1", s.cfg.RefreshTokenSecret, time.Hour, s.cfg.JWTIssuer)
	s.Require().NoError(err)

	// Logout cleared the stored hash.
	s.mockUserSvc.GetUserByIDFn = func(ctx context.Context, userID string) (*domain.User, error) {
		return &domain.User{UserID: "u-1", RefreshTokenHash: ""}, nil
	}

	_, _, _, err = svc.RefreshSession(s.ctx, token)
	s.ErrorIs(err, apperrors.ErrTokenReuse)
}

func TestTokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}
