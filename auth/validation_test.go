package auth_test

import (
	"testing"

	"github.com/jrsteele09/go-blog-client/auth"
	apperrors "github.com/jrsteele09/go-blog-client/internal/errors"
	"github.com/stretchr/testify/require"
)

func TestValidator_ValidatePasswordConfirmation(t *testing.T) {
	v := auth.NewValidator()

	t.Run("matching", func(t *testing.T) {
		require.NoError(t, v.ValidatePasswordConfirmation("secret", "secret"))
	})

	t.Run("mismatch", func(t *testing.T) {
		err := v.ValidatePasswordConfirmation("secret", "Secret")
		require.ErrorIs(t, err, apperrors.ErrValidation)
		require.ErrorIs(t, err, auth.PasswordsDontMatchErr)
	})

	t.Run("package shortcut", func(t *testing.T) {
		require.Error(t, auth.ValidatePasswordConfirmation("a", "b"))
	})
}

func TestValidator_ValidateToken(t *testing.T) {
	v := auth.NewValidator()
	require.NoError(t, v.ValidateToken("abc"))
	require.ErrorIs(t, v.ValidateToken("  "), auth.MissingTokenErr)
}
