package auth

import (
	"fmt"
	"strings"

	apperrors "github.com/jrsteele09/go-blog-client/internal/errors"
)

// Validator holds the checks made before any network call.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// ValidatePasswordConfirmation rejects a signup or reset whose two password
// entries differ.
func (v *Validator) ValidatePasswordConfirmation(password, confirmation string) error {
	if password != confirmation {
		return fmt.Errorf("%w: %w", apperrors.ErrValidation, PasswordsDontMatchErr)
	}
	return nil
}

// ValidateToken rejects an empty verification or reset token, which would
// otherwise produce a request to the wrong route.
func (v *Validator) ValidateToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return fmt.Errorf("%w: %w", apperrors.ErrValidation, MissingTokenErr)
	}
	return nil
}

// ValidatePasswordConfirmation is a package level shortcut for the common check.
func ValidatePasswordConfirmation(password, confirmation string) error {
	return NewValidator().ValidatePasswordConfirmation(password, confirmation)
}
