package domain

import "time"

// User represents an account holder in the domain.
// PasswordHash and the refresh token fields never leave the service layer;
// responses are built from dto.UserResponse instead.
type User struct {
	UserID        string `json:"userID"` // Primary key (UUID)
	Username      string `json:"username"`
	Email         string `json:"email"`
	FullName      string `json:"fullName"`
	PasswordHash  string `json:"-"`
	AvatarURL     string `json:"avatarURL"`
	CoverImageURL string `json:"coverImageURL,omitempty"`

	// Refresh token fields: at most one outstanding refresh token per user,
	// stored as a SHA-256 hash of the raw token.
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`

	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
