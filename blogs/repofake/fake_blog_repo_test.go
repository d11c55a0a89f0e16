package fakeblogrepo_test

import (
	"testing"
	"time"

	"github.com/jrsteele09/go-blog-client/blogs"
	fakeblogrepo "github.com/jrsteele09/go-blog-client/blogs/repofake"
	apperrors "github.com/jrsteele09/go-blog-client/internal/errors"
	"github.com/stretchr/testify/require"
)

func TestFakeBlogRepo(t *testing.T) {
	repo := fakeblogrepo.NewFakeBlogRepo()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	older := &blogs.Blog{Title: "older", UserID: 1, Category: "news", Timestamp: base}
	newer := &blogs.Blog{Title: "newer", UserID: 1, Timestamp: base.Add(time.Hour), Tags: []string{"go"}}
	draft := &blogs.Blog{Title: "draft", UserID: 1, IsDraft: true}
	for _, b := range []*blogs.Blog{older, newer, draft} {
		require.NoError(t, repo.Create(b))
	}
	require.Equal(t, 1, older.ID)
	require.False(t, draft.Timestamp.IsZero())

	t.Run("published newest first", func(t *testing.T) {
		list, err := repo.Published("")
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, "newer", list[0].Title)
	})

	t.Run("category filter", func(t *testing.T) {
		list, err := repo.Published("news")
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "older", list[0].Title)
	})

	t.Run("by user", func(t *testing.T) {
		list, err := repo.ByUser(1, true)
		require.NoError(t, err)
		require.Len(t, list, 3)
		list, err = repo.ByUser(1, false)
		require.NoError(t, err)
		require.Len(t, list, 2)
	})

	t.Run("views and copies", func(t *testing.T) {
		require.NoError(t, repo.IncrementViews(newer.ID))
		got, err := repo.Get(newer.ID)
		require.NoError(t, err)
		require.Equal(t, 1, got.ViewCount)
		got.Tags[0] = "changed"
		again, _ := repo.Get(newer.ID)
		require.Equal(t, "go", again.Tags[0])
	})

	t.Run("missing", func(t *testing.T) {
		_, err := repo.Get(99)
		require.ErrorIs(t, err, apperrors.ErrNotFound)
		require.ErrorIs(t, repo.IncrementViews(99), apperrors.ErrNotFound)
	})
}

func TestFakeCommentRepo(t *testing.T) {
	repo := fakeblogrepo.NewFakeCommentRepo()
	first := &blogs.Comment{BlogID: 1, Content: "first"}
	require.NoError(t, repo.Create(first))
	parent := first.ID
	require.NoError(t, repo.Create(&blogs.Comment{BlogID: 1, Content: "reply", ParentID: &parent}))
	require.NoError(t, repo.Create(&blogs.Comment{BlogID: 2, Content: "other"}))

	list, err := repo.ForBlog(1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "first", list[0].Content)
	require.True(t, list[1].IsReply())

	got, err := repo.Get(first.ID)
	require.NoError(t, err)
	require.Equal(t, "first", got.Content)

	_, err = repo.Get(42)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}
