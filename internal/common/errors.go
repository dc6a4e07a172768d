// Package common defines shared constants and sentinel errors used across
// the service, repository, and HTTP layers. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Registration / credential-format errors.
	ErrEmailAlreadyExists    = errors.New("email already in use")
	ErrInvalidNicknameFormat = errors.New("invalid nickname format")
	ErrInvalidPasswordFormat = errors.New("invalid password format")

	// Token errors. Malformed, tampered, and expired tokens all surface as
	// invalid at the service boundary.
	ErrInvalidToken        = errors.New("invalid token")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)
