package blogs

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jrsteele09/go-blog-client/apiclient"
)

// Service reads and writes blog content. Every call goes through the
// authenticated client, so a live session is attached when there is one.
type Service struct {
	api *apiclient.Client
}

func NewService(api *apiclient.Client) *Service {
	return &Service{api: api}
}

func (s *Service) ListBlogs(ctx context.Context, opts ListOptions) (*BlogList, error) {
	query := url.Values{}
	if opts.Page > 0 {
		query.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.PerPage > 0 {
		query.Set("per_page", strconv.Itoa(opts.PerPage))
	}
	if opts.Category != "" {
		query.Set("category", opts.Category)
	}

	var list BlogList
	if err := s.api.Do(ctx, http.MethodGet, "/blogs", nil, &list, apiclient.WithQuery(query)); err != nil {
		return nil, fmt.Errorf("[Service.ListBlogs] %w", err)
	}
	if list.Blogs == nil {
		list.Blogs = []Blog{}
	}
	return &list, nil
}

func (s *Service) GetBlog(ctx context.Context, id int) (*Blog, error) {
	var blog Blog
	if err := s.api.Do(ctx, http.MethodGet, blogPath(id), nil, &blog); err != nil {
		return nil, fmt.Errorf("[Service.GetBlog] blog %d: %w", id, err)
	}
	return &blog, nil
}

func (s *Service) CreateBlog(ctx context.Context, blog NewBlog) (*Blog, error) {
	var resp CreateBlogResponse
	if err := s.api.Do(ctx, http.MethodPost, "/blogs", blog, &resp); err != nil {
		return nil, fmt.Errorf("[Service.CreateBlog] %w", err)
	}
	if resp.Blog == nil {
		return nil, fmt.Errorf("[Service.CreateBlog] response has no blog")
	}
	return resp.Blog, nil
}

func (s *Service) ListComments(ctx context.Context, blogID int) ([]Comment, error) {
	comments := make([]Comment, 0)
	if err := s.api.Do(ctx, http.MethodGet, blogPath(blogID)+"/comments", nil, &comments); err != nil {
		return nil, fmt.Errorf("[Service.ListComments] blog %d: %w", blogID, err)
	}
	return comments, nil
}

func (s *Service) AddComment(ctx context.Context, blogID int, comment NewComment) (*Comment, error) {
	var created Comment
	if err := s.api.Do(ctx, http.MethodPost, blogPath(blogID)+"/comments", comment, &created); err != nil {
		return nil, fmt.Errorf("[Service.AddComment] blog %d: %w", blogID, err)
	}
	return &created, nil
}

// GetUser fetches an author's public profile. user is a numeric ID or a username.
func (s *Service) GetUser(ctx context.Context, user string, page int) (*UserProfile, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	var profile UserProfile
	if err := s.api.Do(ctx, http.MethodGet, "/users/"+url.PathEscape(user), nil, &profile, apiclient.WithQuery(query)); err != nil {
		return nil, fmt.Errorf("[Service.GetUser] %s: %w", user, err)
	}
	return &profile, nil
}

func (s *Service) Categories(ctx context.Context) (*Categories, error) {
	var c Categories
	if err := s.api.Do(ctx, http.MethodGet, "/blogs/categories", nil, &c); err != nil {
		return nil, fmt.Errorf("[Service.Categories] %w", err)
	}
	return &c, nil
}

func blogPath(id int) string {
	return "/blogs/" + strconv.Itoa(id)
}
