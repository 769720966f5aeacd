package keybackend

import "errors"

var (
	// ErrTokenNotConfigured is returned when neither an inline token nor a token file is set.
	ErrTokenNotConfigured = errors.New("token not configured")
	// ErrEmptyToken is returned when a token file holds no token.
	ErrEmptyToken = errors.New("empty token")
)
