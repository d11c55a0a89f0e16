package errors

import (
	"errors"
	"fmt"
)

// Common error types for the blog client and development API
var (
	// Session errors
	ErrNoSession       = errors.New("no active session")
	ErrNoRefreshToken  = errors.New("no refresh token available")
	ErrRefreshFailed   = errors.New("token refresh failed")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrSessionNotReady = errors.New("session check has not completed")

	// Account errors
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")

	// Token errors
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
