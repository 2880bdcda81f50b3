package category

import "context"

type Service interface {
	List(ctx context.Context) ([]DTO, error)
	GetByID(ctx context.Context, id int64) (*DTO, error)
	Create(ctx context.Context, req CreateRequest) (*DTO, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*DTO, error)
	// Delete fails with *ArticlesAttachedError while articles still
	// reference the category.
	Delete(ctx context.Context, id int64) error
}
