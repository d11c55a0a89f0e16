package blogs

import (
	"fmt"

	apperrors "github.com/jrsteele09/go-blog-client/internal/errors"
	"github.com/jrsteele09/go-blog-client/internal/utils"
)

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

type Pagination struct {
	Page    int  `json:"page" yaml:"page"`
	PerPage int  `json:"per_page" yaml:"per_page"`
	Total   int  `json:"total" yaml:"total"`
	Pages   int  `json:"pages" yaml:"pages"`
	HasNext bool `json:"has_next" yaml:"has_next"`
	HasPrev bool `json:"has_prev" yaml:"has_prev"`
	NextNum *int `json:"next_num" yaml:"next_num,omitempty"`
	PrevNum *int `json:"prev_num" yaml:"prev_num,omitempty"`
}

// NewPagination validates page and perPage and describes the page within total
// items. perPage above max is clamped rather than rejected.
func NewPagination(page, perPage, total, max int) (Pagination, error) {
	if page < 1 {
		return Pagination{}, fmt.Errorf("%w: page must be 1 or greater", apperrors.ErrValidation)
	}
	if perPage < 1 {
		return Pagination{}, fmt.Errorf("%w: items per page must be 1 or greater", apperrors.ErrValidation)
	}
	perPage = min(perPage, max)

	p := Pagination{
		Page:    page,
		PerPage: perPage,
		Total:   total,
		Pages:   (total + perPage - 1) / perPage,
	}
	p.HasNext = page < p.Pages
	p.HasPrev = page > 1
	if p.HasNext {
		p.NextNum = utils.Ptr(page + 1)
	}
	if p.HasPrev {
		p.PrevNum = utils.Ptr(page - 1)
	}
	return p, nil
}

// PageOf returns the slice of items that falls on p.
func PageOf[T any](items []T, p Pagination) []T {
	start := (p.Page - 1) * p.PerPage
	if start >= len(items) {
		return []T{}
	}
	end := min(start+p.PerPage, len(items))
	return items[start:end]
}
