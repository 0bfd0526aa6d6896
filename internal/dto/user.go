package dto

// RegisterUserRequest carries the multipart form fields of a registration.
// The file parts (avatar, coverImage) are handled by the handler, which saves
// them to temporary files and fills in the *LocalPath fields before calling
// the service.
type RegisterUserRequest struct {
	Username string `form:"username"`
	FullName string `form:"fullname"`
	Email    string `form:"email"`
	Password string `form:"password"`

	AvatarLocalPath     string `form:"-"`
	CoverImageLocalPath string `form:"-"` // empty when no cover image was sent
}

// LoginRequest authenticates by username or email; at least one must be set.
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest is the optional JSON body of a refresh call; the token
// may equally arrive via the refreshToken cookie.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// UpdatePasswordRequest changes the caller's password.
type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}
