package auth

import "errors"

var ErrInvalidCredentials = errors.New("invalid phone number or password")

var ErrUserNotFound = errors.New("user not found")

var ErrEmailTaken = errors.New("email already registered")

var ErrPhoneTaken = errors.New("phone number already registered")

var ErrMissingFields = errors.New("required registration fields missing")

// ErrInvalidToken covers malformed or badly signed access tokens.
var ErrInvalidToken = errors.New("invalid access token")

// ErrTokenExpired covers refresh tokens with a bad or expired signature.
var ErrTokenExpired = errors.New("refresh token expired or invalid")

// ErrTokenRevoked covers refresh tokens that no longer match the stored
// one: superseded by rotation, replaced by a later login, or cleared by
// logout.
var ErrTokenRevoked = errors.New("refresh token revoked")

var ErrSessionNotFound = errors.New("session not found")
