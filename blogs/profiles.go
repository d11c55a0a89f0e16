package blogs

import "github.com/jrsteele09/go-blog-client/users"

type UserStats struct {
	TotalBlogs         int `json:"total_blogs" yaml:"total_blogs"`
	TotalLikesReceived int `json:"total_likes_received" yaml:"total_likes_received"`
	TotalViewsReceived int `json:"total_views_received" yaml:"total_views_received"`
}

// UserProfile is the public view of an author from GET /users/{id}.
type UserProfile struct {
	User       *users.User `json:"user" yaml:"user"`
	Stats      UserStats   `json:"stats" yaml:"stats"`
	Blogs      []Blog      `json:"blogs" yaml:"blogs"`
	Pagination Pagination  `json:"pagination" yaml:"pagination"`
}
