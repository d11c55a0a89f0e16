package users_test

import (
	"testing"

	"github.com/jrsteele09/go-blog-client/users"
	"github.com/stretchr/testify/require"
)

func TestPasswordHash(t *testing.T) {
	hash, err := users.HashPassword("secret1")
	require.NoError(t, err)

	u := &users.User{PasswordHash: hash}
	require.True(t, u.CheckPassword("secret1"))
	require.False(t, u.CheckPassword("secret2"))
}

func TestPublicDropsPrivateFields(t *testing.T) {
	u := &users.User{ID: 3, Username: "alice", Email: "a@b.com", PasswordHash: "h", Verified: true}
	p := u.Public()
	require.Equal(t, 3, p.ID)
	require.Equal(t, "alice", p.Username)
	require.Empty(t, p.Email)
	require.Empty(t, p.PasswordHash)
	require.Nil(t, (*users.User)(nil).Public())
}
