package article

import "context"

type Repository interface {
	Create(ctx context.Context, a *Article) (int64, error)
	GetByID(ctx context.Context, id int64) (*Article, error)
	// List returns one page of articles plus the total row count the
	// filters match.
	List(ctx context.Context, params ListParams) ([]Article, int, error)
	Update(ctx context.Context, a *Article) error
	Delete(ctx context.Context, id int64) error
}
