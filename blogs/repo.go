package blogs

// BlogRepo stores posts for the development API.
type BlogRepo interface {
	Create(blog *Blog) error
	Get(id int) (*Blog, error)
	// Published returns every non-draft post, newest first, optionally in one category.
	Published(category string) ([]Blog, error)
	ByUser(userID int, includeDrafts bool) ([]Blog, error)
	IncrementViews(id int) error
}

// CommentRepo stores comments for the development API.
type CommentRepo interface {
	Create(comment *Comment) error
	Get(id int) (*Comment, error)
	// ForBlog returns a blog's comments oldest first.
	ForBlog(blogID int) ([]Comment, error)
}
