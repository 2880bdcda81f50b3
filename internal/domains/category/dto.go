package category

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DTO is the category as rendered to clients. Articles is only populated
// on single-category reads.
type DTO struct {
	ID        int64            `json:"id" xml:"id"`
	Name      string           `json:"name" xml:"name"`
	CreatedAt time.Time        `json:"createdAt" xml:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt" xml:"updatedAt"`
	Articles  []ArticleSummary `json:"articles,omitempty" xml:"articles>article,omitempty"`
}

// ArticleSummary is the short article form embedded in category reads.
type ArticleSummary struct {
	ID    int64  `json:"id" xml:"id"`
	Title string `json:"title" xml:"title"`
}

type CreateRequest struct {
	Name string `json:"name" xml:"name"`
}

func (r *CreateRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, validation.Length(2, 100)),
	)
}

type UpdateRequest struct {
	Name string `json:"name" xml:"name"`
}

func (r *UpdateRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, validation.Length(2, 100)),
	)
}
