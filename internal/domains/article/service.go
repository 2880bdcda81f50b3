package article

import "context"

// Page is a listing result with its pagination frame already computed.
// Category is set when the listing was filtered on one.
type Page struct {
	Articles   []DTO
	Category   *CategoryRef
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

type Service interface {
	// List treats an unknown CategoryID filter as matching nothing.
	List(ctx context.Context, params ListParams) (*Page, error)

	// ListByCategory is the resource-style listing; it fails with
	// ErrCategoryNotFound when the category does not exist.
	ListByCategory(ctx context.Context, categoryID int64, params ListParams) (*Page, error)
	GetByID(ctx context.Context, id int64) (*DTO, error)
	Create(ctx context.Context, req CreateRequest) (*DTO, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*DTO, error)
	Delete(ctx context.Context, id int64) error
}
