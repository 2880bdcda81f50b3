package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/moha528/quickpress-back/internal/domains/category"
	"github.com/moha528/quickpress-back/internal/shared/response"
	"github.com/moha528/quickpress-back/pkg/logger"
)

// CategoryHandler serves the category endpoints. Reads are public, writes
// need an editor.
type CategoryHandler struct {
	service category.Service
}

func NewCategoryHandler(service category.Service) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// List handles GET /categories.
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.List(c, categories, len(categories))
}

// GetByID handles GET /categories/:id. The payload embeds the titles of
// the articles attached to the category.
func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	dto, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, dto)
}

// Create handles POST /categories.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req category.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	dto, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, "category created successfully", dto)
}

// Update handles PUT /categories/:id.
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req category.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	dto, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OKWithMessage(c, "category updated successfully", dto)
}

// Delete handles DELETE /categories/:id. Deletion is refused while any
// article still references the category.
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.Message(c, "category deleted successfully")
}

func (h *CategoryHandler) handleError(c *gin.Context, err error) {
	var vErrs validation.Errors
	var attached *category.ArticlesAttachedError
	switch {
	case errors.As(err, &vErrs):
		response.BadRequest(c, err.Error())
	case errors.Is(err, category.ErrNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, category.ErrNameTaken):
		response.Conflict(c, err.Error())
	case errors.As(err, &attached):
		response.Conflict(c, err.Error())
	default:
		logger.Error("category handler", err)
		response.InternalServerError(c)
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}
