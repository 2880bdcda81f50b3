package article

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type DTO struct {
	ID        int64       `json:"id" xml:"id"`
	Title     string      `json:"title" xml:"title"`
	Content   string      `json:"content" xml:"content"`
	Category  CategoryRef `json:"category" xml:"category"`
	CreatedAt time.Time   `json:"createdAt" xml:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt" xml:"updatedAt"`
}

// CategoryRef is the category as embedded in an article payload.
type CategoryRef struct {
	ID   int64  `json:"id" xml:"id"`
	Name string `json:"name" xml:"name"`
}

type CreateRequest struct {
	Title      string `json:"title" xml:"title"`
	Content    string `json:"content" xml:"content"`
	CategoryID int64  `json:"categoryId" xml:"categoryId"`
}

func (r *CreateRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.Required, validation.Length(5, 200)),
		validation.Field(&r.Content, validation.Required, validation.Length(10, 10000)),
		validation.Field(&r.CategoryID, validation.Required, validation.Min(int64(1))),
	)
}

type UpdateRequest struct {
	Title      string `json:"title" xml:"title"`
	Content    string `json:"content" xml:"content"`
	CategoryID int64  `json:"categoryId" xml:"categoryId"`
}

func (r *UpdateRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.When(r.Title != "", validation.Length(5, 200))),
		validation.Field(&r.Content, validation.When(r.Content != "", validation.Length(10, 10000))),
		validation.Field(&r.CategoryID, validation.When(r.CategoryID != 0, validation.Min(int64(1)))),
	)
}

// ListParams are the pagination and filter knobs of the article listing.
// Zero values mean "not set".
type ListParams struct {
	Page       int
	Limit      int
	CategoryID int64
	Search     string
}

const (
	defaultLimit = 10
	maxLimit     = 100
)

// Normalize clamps pagination to sane bounds.
func (p *ListParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
}

// Offset is the row offset of the requested page.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}
