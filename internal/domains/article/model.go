package article

import "time"

// Article carries the joined category name so a single query can feed the
// DTO.
type Article struct {
	ID           int64
	Title        string
	Content      string
	CategoryID   int64
	CategoryName string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (a *Article) DTO() DTO {
	return DTO{
		ID:        a.ID,
		Title:     a.Title,
		Content:   a.Content,
		Category:  CategoryRef{ID: a.CategoryID, Name: a.CategoryName},
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
