package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moha528/quickpress-back/internal/domains/user"
)

type stubService struct {
	authenticateFn func(ctx context.Context, username, password string) (*user.DTO, string, error)
	createFn       func(ctx context.Context, req user.CreateRequest) (*user.DTO, error)
	getByIDFn      func(ctx context.Context, id int64) (*user.DTO, error)
	deleteFn       func(ctx context.Context, id int64) error
}

func (s *stubService) Authenticate(ctx context.Context, username, password string) (*user.DTO, string, error) {
	return s.authenticateFn(ctx, username, password)
}

func (s *stubService) Register(ctx context.Context, req user.RegisterRequest) (*user.DTO, string, error) {
	panic("not used")
}

func (s *stubService) GetByID(ctx context.Context, id int64) (*user.DTO, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubService) List(ctx context.Context) ([]user.DTO, error) { panic("not used") }

func (s *stubService) Create(ctx context.Context, req user.CreateRequest) (*user.DTO, error) {
	return s.createFn(ctx, req)
}

func (s *stubService) Update(ctx context.Context, id int64, req user.UpdateRequest) (*user.DTO, error) {
	panic("not used")
}

func (s *stubService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func newRouter(svc user.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewUserHandler(svc)
	router := gin.New()
	router.POST("/auth/login", h.Login)
	router.POST("/users", h.Create)
	router.GET("/users/:id", h.GetByID)
	router.DELETE("/users/:id", h.Delete)
	return router
}

func perform(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLoginSuccess(t *testing.T) {
	router := newRouter(&stubService{
		authenticateFn: func(ctx context.Context, username, password string) (*user.DTO, string, error) {
			return &user.DTO{ID: 1, Username: username, Role: "ADMIN"}, "signed-token", nil
		},
	})

	w := perform(router, http.MethodPost, "/auth/login", `{"username":"admin","password":"secret"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool              `json:"success"`
		Data    user.AuthResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "signed-token", body.Data.Token)
	assert.Equal(t, "admin", body.Data.User.Username)
	// The raw payload must never carry password material.
	assert.NotContains(t, w.Body.String(), "password")
}

func TestLoginBadCredentials(t *testing.T) {
	router := newRouter(&stubService{
		authenticateFn: func(ctx context.Context, username, password string) (*user.DTO, string, error) {
			return nil, "", user.ErrInvalidCredentials
		},
	})

	w := perform(router, http.MethodPost, "/auth/login", `{"username":"admin","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginMalformedBody(t *testing.T) {
	router := newRouter(&stubService{})

	w := perform(router, http.MethodPost, "/auth/login", `{"username":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateConflict(t *testing.T) {
	router := newRouter(&stubService{
		createFn: func(ctx context.Context, req user.CreateRequest) (*user.DTO, error) {
			return nil, user.ErrUsernameTaken
		},
	})

	w := perform(router, http.MethodPost, "/users", `{"username":"taken","password":"secret1"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateValidationFailure(t *testing.T) {
	router := newRouter(&stubService{
		createFn: func(ctx context.Context, req user.CreateRequest) (*user.DTO, error) {
			return nil, req.Validate()
		},
	})

	w := perform(router, http.MethodPost, "/users", `{"username":"ab","password":"123"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetByIDNotFound(t *testing.T) {
	router := newRouter(&stubService{
		getByIDFn: func(ctx context.Context, id int64) (*user.DTO, error) {
			return nil, user.ErrNotFound
		},
	})

	w := perform(router, http.MethodGet, "/users/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetByIDInvalidParam(t *testing.T) {
	router := newRouter(&stubService{})

	w := perform(router, http.MethodGet, "/users/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteSuccess(t *testing.T) {
	var deleted int64
	router := newRouter(&stubService{
		deleteFn: func(ctx context.Context, id int64) error {
			deleted = id
			return nil
		},
	})

	w := perform(router, http.MethodDelete, "/users/3", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(3), deleted)
}
