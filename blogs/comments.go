package blogs

import "time"

// Comment belongs to a blog. Replies carry the parent's ID; only one level of
// nesting is allowed.
type Comment struct {
	ID        int       `json:"id" yaml:"id"`
	Content   string    `json:"content" yaml:"content"`
	Author    string    `json:"author" yaml:"author"`
	UserID    int       `json:"user_id" yaml:"user_id"`
	BlogID    int       `json:"blog_id" yaml:"blog_id"`
	ParentID  *int      `json:"parent_id" yaml:"parent_id,omitempty"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

func (c Comment) IsReply() bool {
	return c.ParentID != nil
}

// NewComment is the body of POST /blogs/{id}/comments.
type NewComment struct {
	Content  string `json:"content"`
	ParentID *int   `json:"parent_id,omitempty"`
}
