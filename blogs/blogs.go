package blogs

import "time"

// Blog is a post. Drafts are visible only to their author and are left out of
// the public feed.
type Blog struct {
	ID         int       `json:"id" yaml:"id"`
	Title      string    `json:"title" yaml:"title"`
	Content    string    `json:"content" yaml:"content"`
	Timestamp  time.Time `json:"timestamp" yaml:"timestamp"`
	Category   string    `json:"category,omitempty" yaml:"category,omitempty"`
	Author     string    `json:"author,omitempty" yaml:"author,omitempty"`
	UserID     int       `json:"user_id,omitempty" yaml:"user_id,omitempty"`
	Tags       []string  `json:"tags,omitempty" yaml:"tags,omitempty"`
	ViewCount  int       `json:"view_count" yaml:"view_count"`
	LikesCount int       `json:"likes_count" yaml:"likes_count"`
	IsDraft    bool      `json:"is_draft" yaml:"is_draft"`
}

// Summary returns a copy with the content cut to at most n runes.
func (b Blog) Summary(n int) Blog {
	r := []rune(b.Content)
	if len(r) > n {
		b.Content = string(r[:n]) + "..."
	}
	b.Tags = append([]string(nil), b.Tags...)
	return b
}

// NewBlog is the body of POST /blogs. Without Publish the post is saved as a draft.
type NewBlog struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Publish  bool     `json:"publish"`
}

type CreateBlogResponse struct {
	Message string `json:"message"`
	Blog    *Blog  `json:"blog"`
}

// BlogList is one page of the feed.
type BlogList struct {
	Blogs      []Blog     `json:"blogs" yaml:"blogs"`
	Pagination Pagination `json:"pagination" yaml:"pagination"`
}

type Categories struct {
	Categories []string `json:"categories" yaml:"categories"`
	Total      int      `json:"total" yaml:"total"`
}

// ListOptions filters and pages the feed. Zero values use the server defaults.
type ListOptions struct {
	Page     int
	PerPage  int
	Category string
}
