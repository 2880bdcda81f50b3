package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moha528/quickpress-back/internal/domains/article"
)

type stubService struct {
	listFn           func(ctx context.Context, params article.ListParams) (*article.Page, error)
	listByCategoryFn func(ctx context.Context, categoryID int64, params article.ListParams) (*article.Page, error)
	createFn         func(ctx context.Context, req article.CreateRequest) (*article.DTO, error)
}

func (s *stubService) List(ctx context.Context, params article.ListParams) (*article.Page, error) {
	return s.listFn(ctx, params)
}

func (s *stubService) ListByCategory(ctx context.Context, categoryID int64, params article.ListParams) (*article.Page, error) {
	return s.listByCategoryFn(ctx, categoryID, params)
}

func (s *stubService) GetByID(ctx context.Context, id int64) (*article.DTO, error) {
	panic("not used")
}

func (s *stubService) Create(ctx context.Context, req article.CreateRequest) (*article.DTO, error) {
	return s.createFn(ctx, req)
}

func (s *stubService) Update(ctx context.Context, id int64, req article.UpdateRequest) (*article.DTO, error) {
	panic("not used")
}

func (s *stubService) Delete(ctx context.Context, id int64) error { panic("not used") }

func newRouter(svc article.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewArticleHandler(svc)
	router := gin.New()
	router.GET("/articles", h.List)
	router.GET("/articles/category/:categoryId", h.ListByCategory)
	router.POST("/articles", h.Create)
	return router
}

func perform(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func emptyPage(params article.ListParams) *article.Page {
	params.Normalize()
	return &article.Page{Articles: []article.DTO{}, Page: params.Page, Limit: params.Limit}
}

func TestCreateBindsCategoryID(t *testing.T) {
	var got article.CreateRequest
	router := newRouter(&stubService{
		createFn: func(ctx context.Context, req article.CreateRequest) (*article.DTO, error) {
			got = req
			return &article.DTO{ID: 7, Title: req.Title, Category: article.CategoryRef{ID: req.CategoryID}}, nil
		},
	})

	w := perform(router, http.MethodPost, "/articles",
		`{"title":"Fresh headline","content":"Body text long enough.","categoryId":3}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, int64(3), got.CategoryID)
}

func TestCreateRendersCamelCaseTimestamps(t *testing.T) {
	router := newRouter(&stubService{
		createFn: func(ctx context.Context, req article.CreateRequest) (*article.DTO, error) {
			return &article.DTO{ID: 7, Title: req.Title, CreatedAt: time.Now(), UpdatedAt: time.Now()}, nil
		},
	})

	w := perform(router, http.MethodPost, "/articles",
		`{"title":"Fresh headline","content":"Body text long enough.","categoryId":3}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"createdAt"`)
	assert.NotContains(t, w.Body.String(), `"created_at"`)
}

func TestListUnknownCategoryFilter(t *testing.T) {
	router := newRouter(&stubService{
		listFn: func(ctx context.Context, params article.ListParams) (*article.Page, error) {
			assert.Equal(t, int64(99), params.CategoryID)
			return emptyPage(params), nil
		},
	})

	// The query filter is just a filter; nothing matching is not an error.
	w := perform(router, http.MethodGet, "/articles?category=99", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success    bool          `json:"success"`
		Data       []article.DTO `json:"data"`
		Pagination struct {
			Total int `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Empty(t, body.Data)
	assert.Equal(t, 0, body.Pagination.Total)
}

func TestListInvalidCategoryFilter(t *testing.T) {
	router := newRouter(&stubService{})

	w := perform(router, http.MethodGet, "/articles?category=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListByCategoryUnknownIs404(t *testing.T) {
	router := newRouter(&stubService{
		listByCategoryFn: func(ctx context.Context, categoryID int64, params article.ListParams) (*article.Page, error) {
			return nil, article.ErrCategoryNotFound
		},
	})

	w := perform(router, http.MethodGet, "/articles/category/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListByCategorySuccess(t *testing.T) {
	router := newRouter(&stubService{
		listByCategoryFn: func(ctx context.Context, categoryID int64, params article.ListParams) (*article.Page, error) {
			require.Equal(t, int64(2), categoryID)
			params.Normalize()
			return &article.Page{
				Articles:   []article.DTO{{ID: 1, Title: "Only one"}},
				Category:   &article.CategoryRef{ID: 2, Name: "Culture"},
				Page:       params.Page,
				Limit:      params.Limit,
				Total:      1,
				TotalPages: 1,
			}, nil
		},
	})

	w := perform(router, http.MethodGet, "/articles/category/2", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Culture"`)
}
