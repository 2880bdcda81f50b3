package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/moha528/quickpress-back/internal/domains/article"
	"github.com/moha528/quickpress-back/internal/shared/response"
	"github.com/moha528/quickpress-back/pkg/logger"
)

// ArticleHandler serves the article endpoints. Reads are public, writes
// need an editor.
type ArticleHandler struct {
	service article.Service
}

func NewArticleHandler(service article.Service) *ArticleHandler {
	return &ArticleHandler{service: service}
}

// List handles GET /articles with ?page, ?limit, ?category and ?search.
func (h *ArticleHandler) List(c *gin.Context) {
	params := article.ListParams{
		Search: c.Query("search"),
	}
	params.Page, _ = strconv.Atoi(c.Query("page"))
	params.Limit, _ = strconv.Atoi(c.Query("limit"))

	if raw := c.Query("category"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			response.BadRequest(c, "invalid category filter")
			return
		}
		params.CategoryID = id
	}

	page, err := h.service.List(c.Request.Context(), params)
	if err != nil {
		h.handleError(c, err)
		return
	}

	pagination := response.Pagination{
		Page:       page.Page,
		Limit:      page.Limit,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	}
	if page.Category != nil {
		response.PaginatedInCategory(c, page.Articles, page.Category, pagination)
		return
	}
	response.Paginated(c, page.Articles, pagination)
}

// ListByCategory handles GET /articles/category/:categoryId. Unlike the
// ?category filter this 404s when the category does not exist, matching
// the resource-style route.
func (h *ArticleHandler) ListByCategory(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("categoryId"), 10, 64)
	if err != nil || categoryID <= 0 {
		response.BadRequest(c, "invalid category id")
		return
	}

	var params article.ListParams
	params.Page, _ = strconv.Atoi(c.Query("page"))
	params.Limit, _ = strconv.Atoi(c.Query("limit"))

	page, err := h.service.ListByCategory(c.Request.Context(), categoryID, params)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.PaginatedInCategory(c, page.Articles, page.Category, response.Pagination{
		Page:       page.Page,
		Limit:      page.Limit,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	})
}

// GetByID handles GET /articles/:id.
func (h *ArticleHandler) GetByID(c *gin.Context) {
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

// Create handles POST /articles.
func (h *ArticleHandler) Create(c *gin.Context) {
	var req article.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	dto, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, "article created successfully", dto)
}

// Update handles PUT /articles/:id.
func (h *ArticleHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req article.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	dto, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OKWithMessage(c, "article updated successfully", dto)
}

// Delete handles DELETE /articles/:id.
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.Message(c, "article deleted successfully")
}

func (h *ArticleHandler) handleError(c *gin.Context, err error) {
	var vErrs validation.Errors
	switch {
	case errors.As(err, &vErrs):
		response.BadRequest(c, err.Error())
	case errors.Is(err, article.ErrNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, article.ErrCategoryNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, article.ErrInvalidCategory):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("article handler", err)
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
