package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/moha528/quickpress-back/internal/domains/article"
	"github.com/moha528/quickpress-back/internal/domains/category"
	"github.com/moha528/quickpress-back/pkg/cache"
	"github.com/moha528/quickpress-back/pkg/logger"
)

type articleService struct {
	repo       article.Repository
	categories category.Repository
	cache      cache.Cache
}

// NewArticleService wires the article store, the category store used for
// referential checks, and the cache whose category entries article writes
// invalidate.
func NewArticleService(repo article.Repository, categories category.Repository, c cache.Cache) article.Service {
	return &articleService{repo: repo, categories: categories, cache: c}
}

func (s *articleService) List(ctx context.Context, params article.ListParams) (*article.Page, error) {
	params.Normalize()

	var categoryRef *article.CategoryRef
	if params.CategoryID != 0 {
		cat, err := s.categories.GetByID(ctx, params.CategoryID)
		switch {
		case err == nil:
			categoryRef = &article.CategoryRef{ID: cat.ID, Name: cat.Name}
		case errors.Is(err, category.ErrNotFound):
			// A filter on an unknown category yields an empty page.
		default:
			return nil, err
		}
	}

	articles, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	dtos := make([]article.DTO, 0, len(articles))
	for i := range articles {
		dtos = append(dtos, articles[i].DTO())
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + params.Limit - 1) / params.Limit
	}

	return &article.Page{
		Articles:   dtos,
		Category:   categoryRef,
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

func (s *articleService) ListByCategory(ctx context.Context, categoryID int64, params article.ListParams) (*article.Page, error) {
	if _, err := s.categories.GetByID(ctx, categoryID); err != nil {
		if errors.Is(err, category.ErrNotFound) {
			return nil, article.ErrCategoryNotFound
		}
		return nil, err
	}

	params.CategoryID = categoryID
	return s.List(ctx, params)
}

func (s *articleService) GetByID(ctx context.Context, id int64) (*article.DTO, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := a.DTO()
	return &dto, nil
}

func (s *articleService) Create(ctx context.Context, req article.CreateRequest) (*article.DTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cat, err := s.categories.GetByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, category.ErrNotFound) {
			return nil, article.ErrInvalidCategory
		}
		return nil, err
	}

	a := &article.Article{
		Title:        req.Title,
		Content:      req.Content,
		CategoryID:   cat.ID,
		CategoryName: cat.Name,
	}
	if _, err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	s.invalidate(ctx, a.CategoryID)

	dto := a.DTO()
	return &dto, nil
}

func (s *articleService) Update(ctx context.Context, id int64, req article.UpdateRequest) (*article.DTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previousCategory := a.CategoryID

	if req.Title != "" {
		a.Title = req.Title
	}
	if req.Content != "" {
		a.Content = req.Content
	}
	if req.CategoryID != 0 && req.CategoryID != a.CategoryID {
		cat, err := s.categories.GetByID(ctx, req.CategoryID)
		if err != nil {
			if errors.Is(err, category.ErrNotFound) {
				return nil, article.ErrInvalidCategory
			}
			return nil, err
		}
		a.CategoryID = cat.ID
		a.CategoryName = cat.Name
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}

	s.invalidate(ctx, previousCategory, a.CategoryID)

	dto := a.DTO()
	return &dto, nil
}

func (s *articleService) Delete(ctx context.Context, id int64) error {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, a.CategoryID)
	return nil
}

// invalidate drops the cached category entries an article write touched.
// Article counts and embedded summaries live under those keys.
func (s *articleService) invalidate(ctx context.Context, categoryIDs ...int64) {
	keys := []string{"categories:all"}
	seen := map[int64]bool{}
	for _, id := range categoryIDs {
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		keys = append(keys, fmt.Sprintf("category:%d", id))
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		logger.Debug("cache invalidation failed for articles")
	}
}
