package token_test

import (
	"testing"
	"time"

	apperrors "github.com/jrsteele09/go-blog-client/internal/errors"
	"github.com/jrsteele09/go-blog-client/token"
	tokenfakerepo "github.com/jrsteele09/go-blog-client/token/repofake"
	"github.com/stretchr/testify/require"
)

func TestOneTimeManager(t *testing.T) {
	c := &clock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	m := token.NewOneTimeManager(tokenfakerepo.NewFakeTokensRepo(),
		token.WithOneTimeExpiry(time.Hour),
		token.WithOneTimeLength(16),
		token.WithOneTimeNowFunc(c.Now))

	t.Run("redeem once", func(t *testing.T) {
		tok, err := m.Issue("Ann@Example.com", token.PurposeVerifyEmail)
		require.NoError(t, err)
		require.Len(t, tok, 32)

		email, err := m.Redeem(tok, token.PurposeVerifyEmail)
		require.NoError(t, err)
		require.Equal(t, "ann@example.com", email)

		_, err = m.Redeem(tok, token.PurposeVerifyEmail)
		require.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("wrong purpose", func(t *testing.T) {
		tok, err := m.Issue("ann@example.com", token.PurposeVerifyEmail)
		require.NoError(t, err)
		_, err = m.Redeem(tok, token.PurposeResetPassword)
		require.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("reissue replaces", func(t *testing.T) {
		first, err := m.Issue("bob@example.com", token.PurposeResetPassword)
		require.NoError(t, err)
		second, err := m.Issue("bob@example.com", token.PurposeResetPassword)
		require.NoError(t, err)

		_, err = m.Redeem(first, token.PurposeResetPassword)
		require.ErrorIs(t, err, apperrors.ErrInvalidToken)
		_, err = m.Redeem(second, token.PurposeResetPassword)
		require.NoError(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		tok, err := m.Issue("cat@example.com", token.PurposeResetPassword)
		require.NoError(t, err)
		c.now = c.now.Add(2 * time.Hour)
		_, err = m.Redeem(tok, token.PurposeResetPassword)
		require.ErrorIs(t, err, apperrors.ErrTokenExpired)
	})
}
