package token_test

import (
	"strings"
	"sync"
	"testing"
	"time"

	apperrors "github.com/jrsteele09/go-blog-client/internal/errors"
	"github.com/jrsteele09/go-blog-client/token"
	"github.com/jrsteele09/go-blog-client/users"
	"github.com/stretchr/testify/require"
)

const secretStr = "1234"

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func newManager(t *testing.T, options ...token.ManagerOption) (*token.Manager, *clock) {
	t.Helper()
	c := &clock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	options = append([]token.ManagerOption{
		token.WithNowFunc(c.Now),
		token.WithTokenExpiry(time.Minute, time.Hour),
	}, options...)
	return token.New(token.NewHMACSigner(secretStr), options...), c
}

func TestManagerIssueAndVerify(t *testing.T) {
	m, _ := newManager(t)
	pair, err := m.Issue(&users.User{ID: 42})
	require.NoError(t, err)
	require.Len(t, strings.Split(pair.AccessToken, "."), 3)

	claims, err := m.Verify(pair.AccessToken, token.TypeAccess)
	require.NoError(t, err)
	require.Equal(t, 42, claims.UserID)
	require.NotEmpty(t, claims.JTI)

	t.Run("types are not interchangeable", func(t *testing.T) {
		_, err := m.Verify(pair.RefreshToken, token.TypeAccess)
		require.ErrorIs(t, err, apperrors.ErrInvalidToken)
		_, err = m.Verify(pair.AccessToken, token.TypeRefresh)
		require.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("other secret rejected", func(t *testing.T) {
		other := token.New(token.NewHMACSigner("different"))
		_, err := other.Verify(pair.AccessToken, token.TypeAccess)
		require.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := m.Verify("not.a.jwt", token.TypeAccess)
		require.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}

func TestManagerExpiry(t *testing.T) {
	m, c := newManager(t)
	pair, err := m.Issue(&users.User{ID: 1})
	require.NoError(t, err)

	c.now = c.now.Add(2 * time.Minute)
	_, err = m.Verify(pair.AccessToken, token.TypeAccess)
	require.ErrorIs(t, err, apperrors.ErrTokenExpired)

	// The refresh token outlives the access token.
	refreshed, claims, err := m.Refresh(pair.RefreshToken)
	require.NoError(t, err)
	require.Equal(t, 1, claims.UserID)
	require.Empty(t, refreshed.RefreshToken)
	_, err = m.Verify(refreshed.AccessToken, token.TypeAccess)
	require.NoError(t, err)

	c.now = c.now.Add(2 * time.Hour)
	_, _, err = m.Refresh(pair.RefreshToken)
	require.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestManagerRotation(t *testing.T) {
	m, _ := newManager(t, token.WithRefreshRotation(true))
	pair, err := m.Issue(&users.User{ID: 7})
	require.NoError(t, err)

	rotated, _, err := m.Refresh(pair.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, rotated.RefreshToken)

	_, _, err = m.Refresh(pair.RefreshToken)
	require.ErrorIs(t, err, apperrors.ErrInvalidToken)

	_, _, err = m.Refresh(rotated.RefreshToken)
	require.NoError(t, err)
}

func TestManagerRotationSpendsTokenOnce(t *testing.T) {
	m, _ := newManager(t, token.WithRefreshRotation(true))
	pair, err := m.Issue(&users.User{ID: 9})
	require.NoError(t, err)

	const callers = 8
	errs := make(chan error, callers)
	var wg sync.WaitGroup
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := m.Refresh(pair.RefreshToken)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		require.ErrorIs(t, err, apperrors.ErrInvalidToken)
	}
	require.Equal(t, 1, succeeded)
}

func TestManagerRevoke(t *testing.T) {
	m, c := newManager(t)
	pair, err := m.Issue(&users.User{ID: 3})
	require.NoError(t, err)

	require.NoError(t, m.Revoke(pair.RefreshToken))
	_, _, err = m.Refresh(pair.RefreshToken)
	require.ErrorIs(t, err, apperrors.ErrInvalidToken)

	require.Zero(t, m.CleanupRevokedTokens())
	c.now = c.now.Add(3 * time.Hour)
	require.Equal(t, 1, m.CleanupRevokedTokens())
}

func TestMemoryRevocationList(t *testing.T) {
	list := token.NewMemoryRevocationList()
	now := time.Now()
	fresh, err := list.Revoke("a", now.Add(-time.Minute))
	require.NoError(t, err)
	require.True(t, fresh)
	fresh, err = list.Revoke("b", now.Add(time.Minute))
	require.NoError(t, err)
	require.True(t, fresh)

	fresh, err = list.Revoke("b", now.Add(time.Minute))
	require.NoError(t, err)
	require.False(t, fresh)
	fresh, err = list.Revoke("", now)
	require.NoError(t, err)
	require.False(t, fresh)
	require.Equal(t, 1, list.Purge(now))
	require.False(t, list.IsRevoked("a"))
	require.True(t, list.IsRevoked("b"))
}
