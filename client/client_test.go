package client_test

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/jrsteele09/go-blog-client/blogs"
	fakeblogrepo "github.com/jrsteele09/go-blog-client/blogs/repofake"
	"github.com/jrsteele09/go-blog-client/client"
	"github.com/jrsteele09/go-blog-client/internal/config"
	"github.com/jrsteele09/go-blog-client/localstore"
	"github.com/jrsteele09/go-blog-client/server"
	tokenfakerepo "github.com/jrsteele09/go-blog-client/token/repofake"
	fakeuserrepo "github.com/jrsteele09/go-blog-client/users/repofake"
	"github.com/stretchr/testify/require"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type apiFixture struct {
	baseURL  string
	password string
	clock    *clock
}

// newAPI runs the development API with its demo account.
func newAPI(t *testing.T) *apiFixture {
	t.Helper()
	c := &clock{now: time.Now()}
	srv, err := server.New(config.New(), server.Repos{
		Users:    fakeuserrepo.NewFakeUserRepo(),
		Blogs:    fakeblogrepo.NewFakeBlogRepo(),
		Comments: fakeblogrepo.NewFakeCommentRepo(),
		Tokens:   tokenfakerepo.NewFakeTokensRepo(),
	}, server.WithNowFunc(c.Now))
	require.NoError(t, err)
	password, err := srv.SeedDemoData()
	require.NoError(t, err)

	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)
	return &apiFixture{baseURL: ts.URL + server.RouteAPIPrefix, password: password, clock: c}
}

func newClient(t *testing.T, api *apiFixture, store localstore.Store) *client.Client {
	t.Helper()
	c, err := client.New(config.New(), client.WithBaseURL(api.baseURL), client.WithStore(store))
	require.NoError(t, err)
	return c
}

func TestLoginAndAuthor(t *testing.T) {
	api := newAPI(t)
	ctx := context.Background()
	c := newClient(t, api, localstore.NewMemoryStore())
	require.NoError(t, c.Start(ctx))
	require.False(t, c.Auth().IsAuthenticated())

	res := c.Auth().Login(ctx, server.DemoEmail, api.password)
	require.True(t, res.Success, res.Message)
	require.Equal(t, "Login successful", res.Message)
	require.Equal(t, server.DemoUsername, c.Auth().CurrentUser().Username)

	created, err := c.Blogs().CreateBlog(ctx, blogs.NewBlog{Title: "Hello", Content: "World", Category: "technology", Publish: true})
	require.NoError(t, err)
	require.Equal(t, server.DemoUsername, created.Author)

	got, err := c.Blogs().GetBlog(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Hello", got.Title)

	comment, err := c.Blogs().AddComment(ctx, created.ID, blogs.NewComment{Content: "nice"})
	require.NoError(t, err)
	comments, err := c.Blogs().ListComments(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	require.Equal(t, comment.ID, comments[0].ID)

	list, err := c.Blogs().ListBlogs(ctx, blogs.ListOptions{Category: "technology"})
	require.NoError(t, err)
	require.Len(t, list.Blogs, 1)

	profile, err := c.Blogs().GetUser(ctx, server.DemoUsername, 1)
	require.NoError(t, err)
	require.Equal(t, 2, profile.Stats.TotalBlogs)

	cats, err := c.Blogs().Categories(ctx)
	require.NoError(t, err)
	require.Equal(t, blogs.AllCategories(), cats.Categories)

	c.Auth().Logout()
	require.False(t, c.Auth().IsAuthenticated())
	_, err = c.Blogs().CreateBlog(ctx, blogs.NewBlog{Title: "x", Content: "y"})
	require.Error(t, err)
}

func TestExpiredAccessTokenIsRefreshed(t *testing.T) {
	api := newAPI(t)
	ctx := context.Background()
	c := newClient(t, api, localstore.NewMemoryStore())
	require.True(t, c.Auth().Login(ctx, server.DemoEmail, api.password).Success)
	before := c.Session().AccessToken()

	api.clock.Advance(20 * time.Minute)
	created, err := c.Blogs().CreateBlog(ctx, blogs.NewBlog{Title: "t", Content: "c", Publish: true})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.NotEqual(t, before, c.Session().AccessToken())
	require.True(t, c.Auth().IsAuthenticated())
}

func TestExpiredRefreshTokenLogsOut(t *testing.T) {
	api := newAPI(t)
	ctx := context.Background()
	store := localstore.NewMemoryStore()
	c := newClient(t, api, store)
	require.True(t, c.Auth().Login(ctx, server.DemoEmail, api.password).Success)

	api.clock.Advance(31 * 24 * time.Hour)
	_, err := c.Blogs().CreateBlog(ctx, blogs.NewBlog{Title: "t", Content: "c"})
	require.Error(t, err)
	require.False(t, c.Auth().IsAuthenticated())
	require.Zero(t, store.Len())
}

func TestSessionSurvivesRestart(t *testing.T) {
	api := newAPI(t)
	ctx := context.Background()
	file := filepath.Join(t.TempDir(), "tokens.json")

	first := newClient(t, api, localstore.NewFileStore(file))
	require.True(t, first.Auth().Login(ctx, server.DemoEmail, api.password).Success)

	second := newClient(t, api, localstore.NewFileStore(file))
	require.NoError(t, second.Start(ctx))
	require.True(t, second.Auth().IsAuthenticated())
	require.Equal(t, server.DemoEmail, second.Auth().CurrentUser().Email)

	second.Auth().Logout()
	third := newClient(t, api, localstore.NewFileStore(file))
	require.NoError(t, third.Start(ctx))
	require.False(t, third.Auth().IsAuthenticated())
}

func TestSignupFlow(t *testing.T) {
	api := newAPI(t)
	ctx := context.Background()
	c := newClient(t, api, localstore.NewMemoryStore())

	res := c.Auth().Signup(ctx, "newbie", "newbie@example.com", "secret1")
	require.True(t, res.Success, res.Message)
	require.False(t, c.Auth().IsAuthenticated())

	res = c.Auth().Login(ctx, "newbie@example.com", "secret1")
	require.False(t, res.Success)
	require.Equal(t, "Please verify your email before logging in", res.Message)

	res = c.Auth().VerifyEmail(ctx, "not-a-token")
	require.False(t, res.Success)
	require.Equal(t, "Invalid or expired verification link", res.Message)
	require.False(t, c.Auth().IsAuthenticated())
}
