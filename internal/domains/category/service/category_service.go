package service

import (
	"context"
	"fmt"
	"time"

	"github.com/moha528/quickpress-back/internal/domains/category"
	"github.com/moha528/quickpress-back/pkg/cache"
	"github.com/moha528/quickpress-back/pkg/logger"
)

const (
	cacheTTL     = 5 * time.Minute
	listCacheKey = "categories:all"
)

func cacheKey(id int64) string {
	return fmt.Sprintf("category:%d", id)
}

type categoryService struct {
	repo  category.Repository
	cache cache.Cache
}

// NewCategoryService wires the category store and the read cache.
func NewCategoryService(repo category.Repository, c cache.Cache) category.Service {
	return &categoryService{repo: repo, cache: c}
}

func (s *categoryService) List(ctx context.Context) ([]category.DTO, error) {
	var cached []category.DTO
	if found, err := s.cache.Get(ctx, listCacheKey, &cached); err == nil && found {
		return cached, nil
	}

	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries, err := s.repo.ListAllArticleSummaries(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]category.DTO, 0, len(categories))
	for i := range categories {
		dto := categories[i].DTO()
		dto.Articles = summaries[dto.ID]
		dtos = append(dtos, dto)
	}

	if err := s.cache.Set(ctx, listCacheKey, dtos, cacheTTL); err != nil {
		logger.Debug("cache set failed for category list")
	}
	return dtos, nil
}

func (s *categoryService) GetByID(ctx context.Context, id int64) (*category.DTO, error) {
	var cached category.DTO
	if found, err := s.cache.Get(ctx, cacheKey(id), &cached); err == nil && found {
		return &cached, nil
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	articles, err := s.repo.ListArticleSummaries(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := c.DTO()
	dto.Articles = articles

	if err := s.cache.Set(ctx, cacheKey(id), dto, cacheTTL); err != nil {
		logger.Debug("cache set failed for category")
	}
	return &dto, nil
}

func (s *categoryService) Create(ctx context.Context, req category.CreateRequest) (*category.DTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Pre-check for a friendlier error; the unique index is the authority.
	if taken, err := s.repo.ExistsByName(ctx, req.Name, 0); err != nil {
		return nil, err
	} else if taken {
		return nil, category.ErrNameTaken
	}

	c := &category.Category{Name: req.Name}
	if _, err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.invalidate(ctx, 0)

	dto := c.DTO()
	return &dto, nil
}

func (s *categoryService) Update(ctx context.Context, id int64, req category.UpdateRequest) (*category.DTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if taken, err := s.repo.ExistsByName(ctx, req.Name, id); err != nil {
		return nil, err
	} else if taken {
		return nil, category.ErrNameTaken
	}

	c.Name = req.Name
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)

	dto := c.DTO()
	return &dto, nil
}

func (s *categoryService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.repo.CountArticles(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return &category.ArticlesAttachedError{Count: count}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, id)
	return nil
}

func (s *categoryService) invalidate(ctx context.Context, id int64) {
	keys := []string{listCacheKey}
	if id != 0 {
		keys = append(keys, cacheKey(id))
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		logger.Debug("cache invalidation failed for categories")
	}
}
