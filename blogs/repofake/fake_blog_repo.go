package fakeblogrepo

import (
	"slices"
	"sync"
	"time"

	"github.com/jrsteele09/go-blog-client/blogs"
	apperrors "github.com/jrsteele09/go-blog-client/internal/errors"
)

var _ blogs.BlogRepo = (*FakeBlogRepo)(nil)

type FakeBlogRepo struct {
	blogs  map[int]*blogs.Blog
	nextID int
	now    func() time.Time
	lock   sync.RWMutex
}

func NewFakeBlogRepo() *FakeBlogRepo {
	return &FakeBlogRepo{
		blogs: make(map[int]*blogs.Blog),
		now:   time.Now,
	}
}

func (br *FakeBlogRepo) Create(blog *blogs.Blog) error {
	br.lock.Lock()
	defer br.lock.Unlock()

	br.nextID++
	stored := copyBlog(blog)
	stored.ID = br.nextID
	if stored.Timestamp.IsZero() {
		stored.Timestamp = br.now().UTC()
	}
	br.blogs[stored.ID] = stored
	blog.ID = stored.ID
	blog.Timestamp = stored.Timestamp
	return nil
}

func (br *FakeBlogRepo) Get(id int) (*blogs.Blog, error) {
	br.lock.RLock()
	defer br.lock.RUnlock()

	blog, ok := br.blogs[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return copyBlog(blog), nil
}

func (br *FakeBlogRepo) Published(category string) ([]blogs.Blog, error) {
	return br.filter(func(b *blogs.Blog) bool {
		return !b.IsDraft && (category == "" || b.Category == category)
	}), nil
}

func (br *FakeBlogRepo) ByUser(userID int, includeDrafts bool) ([]blogs.Blog, error) {
	return br.filter(func(b *blogs.Blog) bool {
		return b.UserID == userID && (includeDrafts || !b.IsDraft)
	}), nil
}

func (br *FakeBlogRepo) IncrementViews(id int) error {
	br.lock.Lock()
	defer br.lock.Unlock()

	blog, ok := br.blogs[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	blog.ViewCount++
	return nil
}

// filter returns matching posts newest first, ties broken by ID.
func (br *FakeBlogRepo) filter(match func(*blogs.Blog) bool) []blogs.Blog {
	br.lock.RLock()
	defer br.lock.RUnlock()

	out := make([]blogs.Blog, 0)
	for _, b := range br.blogs {
		if match(b) {
			out = append(out, *copyBlog(b))
		}
	}
	slices.SortFunc(out, func(a, b blogs.Blog) int {
		if c := b.Timestamp.Compare(a.Timestamp); c != 0 {
			return c
		}
		return b.ID - a.ID
	})
	return out
}

func copyBlog(b *blogs.Blog) *blogs.Blog {
	c := *b
	c.Tags = slices.Clone(b.Tags)
	return &c
}
