package bookstall

import "errors"

var (
	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnauthorized is returned when a token is rejected
	ErrUnauthorized = errors.New("unauthorized")
)
