package dto

import (
	"time"

	"github.com/nairvarun/clipstream_backend/internal/core/domain"
)

// UserResponse is the sanitized user returned to callers: the password hash
// and refresh token fields are never included.
type UserResponse struct {
	UserID        string    `json:"userID"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	FullName      string    `json:"fullName"`
	AvatarURL     string    `json:"avatarURL"`
	CoverImageURL string    `json:"coverImageURL,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to its sanitized response form.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:        user.UserID,
		Username:      user.Username,
		Email:         user.Email,
		FullName:      user.FullName,
		AvatarURL:     user.AvatarURL,
		CoverImageURL: user.CoverImageURL,
		CreatedAt:     user.CreatedAt,
	}
}
