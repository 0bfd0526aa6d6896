package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nairvarun/clipstream_backend/internal/apperrors"
	"github.com/nairvarun/clipstream_backend/internal/core/domain"
	portsrepo "github.com/nairvarun/clipstream_backend/internal/core/ports/repositories"
	portssvc "github.com/nairvarun/clipstream_backend/internal/core/ports/services"
	"github.com/nairvarun/clipstream_backend/internal/dto"
	"github.com/nairvarun/clipstream_backend/internal/middleware"
	"github.com/nairvarun/clipstream_backend/internal/utils"
)

// userService orchestrates registration, credential checks and session state
// against the user repository and the media store.
type userService struct {
	userRepo portsrepo.UserRepositoryFacade
	media    portssvc.MediaSvcFacade
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, media portssvc.MediaSvcFacade) portssvc.UserSvcFacade {
	return &userService{
		userRepo: userRepo,
		media:    media,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// Register validates the request, rejects duplicates, uploads the media files
// and creates the user record. The avatar is mandatory; a failed cover-image
// upload degrades to an empty URL instead of failing the registration.
func (s *userService) Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	username := strings.TrimSpace(req.Username)
	fullName := strings.TrimSpace(req.FullName)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	password := strings.TrimSpace(req.Password)

	if username == "" || fullName == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: username, fullname, email and password are required", apperrors.ErrValidation)
	}
	if req.AvatarLocalPath == "" {
		return nil, fmt.Errorf("%w: avatar image is required", apperrors.ErrValidation)
	}

	existing, err := s.userRepo.FindUserByUsernameOrEmail(ctx, username, email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: user with this username or email already exists", apperrors.ErrDuplicate)
	}

	avatarURL, err := s.media.UploadFile(ctx, req.AvatarLocalPath)
	if err != nil {
		return nil, fmt.Errorf("%w: avatar: %s", apperrors.ErrUpload, err.Error())
	}

	coverImageURL := ""
	if req.CoverImageLocalPath != "" {
		coverImageURL, err = s.media.UploadFile(ctx, req.CoverImageLocalPath)
		if err != nil {
			// Cover image is optional: degrade to no cover instead of failing.
			middleware.GetLoggerFromCtx(ctx).Warn("cover image upload failed, continuing without it", "error", err.Error())
			coverImageURL = ""
		}
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:        uuid.NewString(),
		Username:      username,
		Email:         email,
		FullName:      fullName,
		PasswordHash:  passwordHash,
		AvatarURL:     avatarURL,
		CoverImageURL: coverImageURL,
		CreatedAt:     now,
		LastUpdatedAt: now,
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	created, err := s.userRepo.FindUserByID(ctx, user.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: created user could not be read back", apperrors.ErrPersistence)
	}
	return created, nil
}

// Authenticate verifies credentials by username or email. At least one
// identifier must be present.
func (s *userService) Authenticate(ctx context.Context, username, email, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" && email == "" {
		return nil, fmt.Errorf("%w: username or email is required", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByUsernameOrEmail(ctx, username, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrAuthentication
	}
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

func (s *userService) UserExists(ctx context.Context, userID string) (bool, error) {
	exists, err := s.userRepo.UserExists(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}

// UpdatePassword verifies the old password and persists a new hash via a
// single-field update.
func (s *userService) UpdatePassword(ctx context.Context, userID string, oldPassword, newPassword string) error {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if !utils.CheckPasswordHash(oldPassword, user.PasswordHash) {
		return fmt.Errorf("%w: incorrect old password", apperrors.ErrAuthentication)
	}

	newPassword = strings.TrimSpace(newPassword)
	if newPassword == "" {
		return fmt.Errorf("%w: new password must not be blank", apperrors.ErrValidation)
	}

	newHash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.userRepo.UpdatePasswordHash(ctx, userID, newHash); err != nil {
		return fmt.Errorf("%w: failed to save new password", apperrors.ErrPersistence)
	}
	return nil
}

func (s *userService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
}

// ClearRefreshToken revokes the user's session unconditionally (logout).
func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	if err := s.userRepo.ClearRefreshToken(ctx, userID); err != nil {
		return fmt.Errorf("%w: failed to clear refresh token", apperrors.ErrPersistence)
	}
	return nil
}
