package services

import "errors"

// Sentinel errors returned by the service layer. Handlers map these to
// user-facing messages; anything else is treated as a store failure.
var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrEmptyComment       = errors.New("comment must not be empty")
	ErrReviewNotFound     = errors.New("review not found")
)
