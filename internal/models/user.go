package models

import (
	"database/sql"
	"time"
)

// User is the database-facing representation of a user row.
// Nullable columns use database/sql types so pgx can scan NULLs directly.
type User struct {
	UserID        string         `db:"user_id"`
	Username      string         `db:"username"`
	Email         string         `db:"email"`
	FullName      string         `db:"full_name"`
	PasswordHash  string         `db:"password_hash"`
	AvatarURL     string         `db:"avatar_url"`
	CoverImageURL sql.NullString `db:"cover_image_url"`

	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`        // SHA-256 hash of the current refresh token
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"` // Expiry of the stored refresh token

	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
