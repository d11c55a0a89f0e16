package server

import (
	"net/http"
	"strconv"

	"github.com/jrsteele09/go-blog-client/blogs"
	"github.com/jrsteele09/go-blog-client/users"
	"github.com/rs/zerolog/log"
)

const (
	maxProfileBlogsPerPage = 50
	previewLength          = 200
)

// UserProfileHandler serves an author's public profile. {id} is a numeric ID or a username.
func (s *Server) UserProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := s.lookupUser(r.PathValue("id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		page, perPage, ok := pageParams(w, r)
		if !ok {
			return
		}

		published, err := s.repos.Blogs.ByUser(user.ID, false)
		if err != nil {
			log.Error().Err(err).Msg("[Server.UserProfileHandler] ByUser")
			writeError(w, http.StatusInternalServerError, "Could not load user")
			return
		}
		pagination, err := blogs.NewPagination(page, perPage, len(published), maxProfileBlogsPerPage)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		stats := blogs.UserStats{TotalBlogs: len(published)}
		for _, b := range published {
			stats.TotalLikesReceived += b.LikesCount
			stats.TotalViewsReceived += b.ViewCount
		}
		previews := make([]blogs.Blog, 0, pagination.PerPage)
		for _, b := range blogs.PageOf(published, pagination) {
			previews = append(previews, b.Summary(previewLength))
		}

		writeJSON(w, http.StatusOK, blogs.UserProfile{
			User:       user.Public(),
			Stats:      stats,
			Blogs:      previews,
			Pagination: pagination,
		})
	}
}

func (s *Server) lookupUser(idOrName string) (*users.User, error) {
	if id, err := strconv.Atoi(idOrName); err == nil {
		return s.repos.Users.GetByID(id)
	}
	return s.repos.Users.GetByUsername(idOrName)
}

func (s *Server) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"app":     s.config.GetAppName(),
			"version": s.config.GetAppVersion(),
			"env":     s.env,
		})
	}
}
