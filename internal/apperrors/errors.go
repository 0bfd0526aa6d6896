package apperrors

import "errors"

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrAuthentication indicates that the supplied credentials did not verify.
var ErrAuthentication = errors.New("invalid credentials")

// ErrUnauthorized indicates a request without a usable identity (missing token,
// or a token referencing a user that no longer exists).
var ErrUnauthorized = errors.New("unauthorized")

// ErrInvalidToken indicates a token with a bad signature or past its expiry.
var ErrInvalidToken = errors.New("invalid or expired token")

// ErrTokenReuse indicates a refresh token that verifies cryptographically but
// does not match the one currently stored for the user (stale or replayed).
var ErrTokenReuse = errors.New("refresh token is expired or already used")

// ErrUpload indicates that a mandatory media upload failed.
var ErrUpload = errors.New("media upload failed")

// ErrPersistence indicates a store write or read-back failure.
var ErrPersistence = errors.New("persistence failure")

// ErrTokenPersistence indicates that a freshly issued refresh token could not
// be written to the user record.
var ErrTokenPersistence = errors.New("could not persist refresh token")
