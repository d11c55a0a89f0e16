package fakeblogrepo

import (
	"slices"
	"sync"
	"time"

	"github.com/jrsteele09/go-blog-client/blogs"
	apperrors "github.com/jrsteele09/go-blog-client/internal/errors"
	"github.com/jrsteele09/go-blog-client/internal/utils"
)

var _ blogs.CommentRepo = (*FakeCommentRepo)(nil)

type FakeCommentRepo struct {
	comments map[int]*blogs.Comment
	byBlog   map[int][]int // blog id to comment ids in insertion order
	nextID   int
	lock     sync.RWMutex
}

func NewFakeCommentRepo() *FakeCommentRepo {
	return &FakeCommentRepo{
		comments: make(map[int]*blogs.Comment),
		byBlog:   make(map[int][]int),
	}
}

func (cr *FakeCommentRepo) Create(comment *blogs.Comment) error {
	cr.lock.Lock()
	defer cr.lock.Unlock()

	cr.nextID++
	stored := copyComment(comment)
	stored.ID = cr.nextID
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	cr.comments[stored.ID] = stored
	cr.byBlog[stored.BlogID] = append(cr.byBlog[stored.BlogID], stored.ID)
	comment.ID = stored.ID
	comment.CreatedAt = stored.CreatedAt
	return nil
}

func (cr *FakeCommentRepo) Get(id int) (*blogs.Comment, error) {
	cr.lock.RLock()
	defer cr.lock.RUnlock()

	c, ok := cr.comments[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return copyComment(c), nil
}

func (cr *FakeCommentRepo) ForBlog(blogID int) ([]blogs.Comment, error) {
	cr.lock.RLock()
	defer cr.lock.RUnlock()

	ids := slices.Clone(cr.byBlog[blogID])
	out := make([]blogs.Comment, 0, len(ids))
	for _, id := range ids {
		out = append(out, *copyComment(cr.comments[id]))
	}
	return out, nil
}

func copyComment(c *blogs.Comment) *blogs.Comment {
	cp := *c
	if c.ParentID != nil {
		cp.ParentID = utils.Ptr(*c.ParentID)
	}
	return &cp
}
