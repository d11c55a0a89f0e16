package server

import (
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jrsteele09/go-blog-client/blogs"
	"github.com/jrsteele09/go-blog-client/internal/utils"
	"github.com/rs/zerolog/log"
)

const maxCommentLength = 1000

// pageParams reads page and per_page. Values that are not integers fall back to the defaults.
func pageParams(w http.ResponseWriter, r *http.Request) (page, perPage int, ok bool) {
	page = intParam(r, "page", 1)
	perPage = intParam(r, "per_page", blogs.DefaultPerPage)
	if page < 1 {
		writeError(w, http.StatusBadRequest, "Page must be 1 or greater")
		return 0, 0, false
	}
	if perPage < 1 {
		writeError(w, http.StatusBadRequest, "Items per page must be 1 or greater")
		return 0, 0, false
	}
	return page, perPage, true
}

func intParam(r *http.Request, name string, fallback int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return fallback
	}
	return v
}

func (s *Server) ListBlogsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, perPage, ok := pageParams(w, r)
		if !ok {
			return
		}

		published, err := s.repos.Blogs.Published(strings.ToLower(r.URL.Query().Get("category")))
		if err != nil {
			log.Error().Err(err).Msg("[Server.ListBlogsHandler] Published")
			writeError(w, http.StatusInternalServerError, "Could not list blogs")
			return
		}
		pagination, err := blogs.NewPagination(page, perPage, len(published), blogs.MaxPerPage)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, blogs.BlogList{
			Blogs:      blogs.PageOf(published, pagination),
			Pagination: pagination,
		})
	}
}

func (s *Server) CategoriesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories := blogs.AllCategories()
		writeJSON(w, http.StatusOK, blogs.Categories{Categories: categories, Total: len(categories)})
	}
}

// CreateBlogHandler saves a post for the caller. It is a draft unless publish is set.
func (s *Server) CreateBlogHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := userIDFromContext(r.Context())
		var req blogs.NewBlog
		if !decodeJSON(w, r, &req) {
			return
		}
		if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
			writeError(w, http.StatusBadRequest, "Title and content are required")
			return
		}
		if !blogs.ValidCategory(req.Category) {
			writeError(w, http.StatusBadRequest, "Invalid category. Must be one of: "+strings.Join(blogs.AllCategories(), ", "))
			return
		}

		author, err := s.repos.Users.GetByID(userID)
		if err != nil {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}

		blog := &blogs.Blog{
			Title:     req.Title,
			Content:   req.Content,
			Timestamp: s.nowFunc().UTC(),
			Category:  strings.ToLower(req.Category),
			Author:    author.Username,
			UserID:    author.ID,
			Tags:      utils.Lowered(req.Tags),
			IsDraft:   !req.Publish,
		}
		if err := s.repos.Blogs.Create(blog); err != nil {
			log.Error().Err(err).Msg("[Server.CreateBlogHandler] Create")
			writeError(w, http.StatusInternalServerError, "Could not create blog")
			return
		}
		writeJSON(w, http.StatusCreated, blogs.CreateBlogResponse{Message: "Blog created successfully", Blog: blog})
	}
}

// GetBlogHandler returns one post and counts the view, at most once per user per cooldown.
func (s *Server) GetBlogHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := userIDFromContext(r.Context())
		blog, ok := s.visibleBlog(w, r, userID)
		if !ok {
			return
		}

		if s.views.record(blog.ID, userID) {
			if err := s.repos.Blogs.IncrementViews(blog.ID); err != nil {
				log.Warn().Err(err).Int("blog_id", blog.ID).Msg("[Server.GetBlogHandler] IncrementViews")
			} else {
				blog.ViewCount++
			}
		}
		writeJSON(w, http.StatusOK, blog)
	}
}

func (s *Server) ListCommentsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blog, ok := s.visibleBlog(w, r, 0)
		if !ok {
			return
		}
		comments, err := s.repos.Comments.ForBlog(blog.ID)
		if err != nil {
			log.Error().Err(err).Msg("[Server.ListCommentsHandler] ForBlog")
			writeError(w, http.StatusInternalServerError, "Could not list comments")
			return
		}
		writeJSON(w, http.StatusOK, comments)
	}
}

// AddCommentHandler posts a comment or a reply. Replies to replies are rejected.
func (s *Server) AddCommentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := userIDFromContext(r.Context())
		blog, ok := s.visibleBlog(w, r, userID)
		if !ok {
			return
		}

		var req blogs.NewComment
		if !decodeJSON(w, r, &req) {
			return
		}
		content := strings.TrimSpace(req.Content)
		if content == "" {
			writeError(w, http.StatusBadRequest, "Content is required")
			return
		}
		if utf8.RuneCountInString(content) > maxCommentLength {
			writeError(w, http.StatusBadRequest, "Comment too long (max 1000 characters)")
			return
		}

		if req.ParentID != nil {
			parent, err := s.repos.Comments.Get(*req.ParentID)
			if err != nil || parent.BlogID != blog.ID {
				writeError(w, http.StatusBadRequest, "Invalid parent comment")
				return
			}
			if parent.IsReply() {
				writeError(w, http.StatusBadRequest, "Cannot reply to a reply. Please reply to the original comment.")
				return
			}
		}

		author, err := s.repos.Users.GetByID(userID)
		if err != nil {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		comment := &blogs.Comment{
			Content:   content,
			Author:    author.Username,
			UserID:    author.ID,
			BlogID:    blog.ID,
			ParentID:  req.ParentID,
			CreatedAt: s.nowFunc().UTC(),
		}
		if err := s.repos.Comments.Create(comment); err != nil {
			log.Error().Err(err).Msg("[Server.AddCommentHandler] Create")
			writeError(w, http.StatusInternalServerError, "Could not add comment")
			return
		}
		writeJSON(w, http.StatusCreated, comment)
	}
}

// visibleBlog loads the {id} blog. Drafts are only visible to their author, everyone else gets 404.
func (s *Server) visibleBlog(w http.ResponseWriter, r *http.Request, userID int) (*blogs.Blog, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeMsg(w, http.StatusNotFound, "Blog not found")
		return nil, false
	}
	blog, err := s.repos.Blogs.Get(id)
	if err != nil || (blog.IsDraft && blog.UserID != userID) {
		writeMsg(w, http.StatusNotFound, "Blog not found")
		return nil, false
	}
	return blog, true
}
