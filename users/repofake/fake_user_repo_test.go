package fakeuserrepo_test

import (
	"testing"

	apperrors "github.com/jrsteele09/go-blog-client/internal/errors"
	"github.com/jrsteele09/go-blog-client/users"
	fakeuserrepo "github.com/jrsteele09/go-blog-client/users/repofake"
	"github.com/stretchr/testify/require"
)

func TestFakeUserRepo(t *testing.T) {
	repo := fakeuserrepo.NewFakeUserRepo()

	alice := &users.User{Username: "alice", Email: "A@B.com"}
	require.NoError(t, repo.Create(alice))
	require.Equal(t, 1, alice.ID)

	t.Run("duplicate email rejected", func(t *testing.T) {
		err := repo.Create(&users.User{Username: "other", Email: "a@b.com"})
		require.ErrorIs(t, err, apperrors.ErrUserExists)
	})

	t.Run("duplicate username rejected", func(t *testing.T) {
		err := repo.Create(&users.User{Username: "alice", Email: "x@y.com"})
		require.ErrorIs(t, err, apperrors.ErrUserExists)
	})

	t.Run("lookups are case insensitive on email", func(t *testing.T) {
		u, err := repo.GetByEmail(" a@B.COM ")
		require.NoError(t, err)
		require.Equal(t, "alice", u.Username)
		require.False(t, u.CreatedAt.IsZero())
	})

	t.Run("returned users are copies", func(t *testing.T) {
		u, err := repo.GetByID(alice.ID)
		require.NoError(t, err)
		u.Username = "mallory"
		again, err := repo.GetByUsername("alice")
		require.NoError(t, err)
		require.Equal(t, "alice", again.Username)
	})

	t.Run("set verified", func(t *testing.T) {
		require.NoError(t, repo.SetVerified("a@b.com", true))
		u, err := repo.GetByID(alice.ID)
		require.NoError(t, err)
		require.True(t, u.Verified)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := repo.GetByID(99)
		require.ErrorIs(t, err, apperrors.ErrUserNotFound)
		require.ErrorIs(t, repo.SetPasswordHash("nobody@b.com", "x"), apperrors.ErrUserNotFound)
	})
}
