package category

import "context"

type Repository interface {
	Create(ctx context.Context, c *Category) (int64, error)
	GetByID(ctx context.Context, id int64) (*Category, error)
	List(ctx context.Context) ([]Category, error)
	ListArticleSummaries(ctx context.Context, categoryID int64) ([]ArticleSummary, error)
	// ListAllArticleSummaries groups every article summary by category id
	// so listings avoid a per-category query.
	ListAllArticleSummaries(ctx context.Context) (map[int64][]ArticleSummary, error)
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id int64) error
	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)
	CountArticles(ctx context.Context, id int64) (int, error)
}
