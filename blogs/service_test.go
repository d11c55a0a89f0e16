package blogs_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jrsteele09/go-blog-client/apiclient"
	"github.com/jrsteele09/go-blog-client/blogs"
	"github.com/stretchr/testify/require"
)

func newBlogAPI(t *testing.T) *blogs.Service {
	t.Helper()
	mux := http.NewServeMux()
	writeJSON := func(w http.ResponseWriter, status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}
	ts := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	mux.HandleFunc("GET /blogs", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		writeJSON(w, http.StatusOK, blogs.BlogList{
			Blogs:      []blogs.Blog{{ID: 1, Title: q.Get("page") + "/" + q.Get("per_page") + "/" + q.Get("category"), Timestamp: ts}},
			Pagination: blogs.Pagination{Page: 1, PerPage: 10, Total: 1, Pages: 1},
		})
	})
	mux.HandleFunc("GET /blogs/categories", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, blogs.Categories{Categories: []string{"news"}, Total: 1})
	})
	mux.HandleFunc("GET /blogs/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "7" {
			writeJSON(w, http.StatusNotFound, map[string]string{"msg": "Blog not found"})
			return
		}
		writeJSON(w, http.StatusOK, blogs.Blog{ID: 7, Title: "Seven", Tags: []string{"go"}, ViewCount: 3})
	})
	mux.HandleFunc("POST /blogs", func(w http.ResponseWriter, r *http.Request) {
		var in blogs.NewBlog
		_ = json.NewDecoder(r.Body).Decode(&in)
		writeJSON(w, http.StatusCreated, blogs.CreateBlogResponse{
			Message: "Blog created successfully",
			Blog:    &blogs.Blog{ID: 9, Title: in.Title, IsDraft: !in.Publish},
		})
	})
	mux.HandleFunc("GET /blogs/{id}/comments", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []blogs.Comment{{ID: 1, Content: "first"}})
	})
	mux.HandleFunc("POST /blogs/{id}/comments", func(w http.ResponseWriter, r *http.Request) {
		var in blogs.NewComment
		_ = json.NewDecoder(r.Body).Decode(&in)
		writeJSON(w, http.StatusCreated, blogs.Comment{ID: 2, Content: in.Content, ParentID: in.ParentID})
	})
	mux.HandleFunc("GET /users/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"user":  map[string]any{"id": 1, "username": r.PathValue("id")},
			"stats": map[string]any{"total_blogs": 2},
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return blogs.NewService(apiclient.New(srv.URL, srv.Client()))
}

func TestService(t *testing.T) {
	svc := newBlogAPI(t)
	ctx := context.Background()

	t.Run("list with options", func(t *testing.T) {
		list, err := svc.ListBlogs(ctx, blogs.ListOptions{Page: 2, PerPage: 5, Category: "news"})
		require.NoError(t, err)
		require.Len(t, list.Blogs, 1)
		require.Equal(t, "2/5/news", list.Blogs[0].Title)
		require.Equal(t, 1, list.Pagination.Total)
	})

	t.Run("get", func(t *testing.T) {
		blog, err := svc.GetBlog(ctx, 7)
		require.NoError(t, err)
		require.Equal(t, "Seven", blog.Title)
		require.Equal(t, []string{"go"}, blog.Tags)
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := svc.GetBlog(ctx, 8)
		require.True(t, apiclient.IsStatus(err, http.StatusNotFound))
		require.Equal(t, "Blog not found", apiclient.Message(err, ""))
	})

	t.Run("create draft", func(t *testing.T) {
		blog, err := svc.CreateBlog(ctx, blogs.NewBlog{Title: "Hi", Content: "body"})
		require.NoError(t, err)
		require.Equal(t, 9, blog.ID)
		require.True(t, blog.IsDraft)
	})

	t.Run("comments", func(t *testing.T) {
		comments, err := svc.ListComments(ctx, 7)
		require.NoError(t, err)
		require.Len(t, comments, 1)

		parent := 1
		reply, err := svc.AddComment(ctx, 7, blogs.NewComment{Content: "reply", ParentID: &parent})
		require.NoError(t, err)
		require.True(t, reply.IsReply())
		require.Equal(t, "reply", reply.Content)
	})

	t.Run("user profile", func(t *testing.T) {
		profile, err := svc.GetUser(ctx, "ann", 1)
		require.NoError(t, err)
		require.Equal(t, "ann", profile.User.Username)
		require.Equal(t, 2, profile.Stats.TotalBlogs)
	})

	t.Run("categories", func(t *testing.T) {
		c, err := svc.Categories(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"news"}, c.Categories)
	})
}
