package response

import (
	"encoding/xml"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Body is the uniform envelope every REST response is rendered with,
// success or failure, in JSON or XML.
type Body struct {
	XMLName    xml.Name    `json:"-" xml:"response"`
	Success    bool        `json:"success" xml:"success"`
	Message    string      `json:"message,omitempty" xml:"message,omitempty"`
	Data       interface{} `json:"data,omitempty" xml:"data,omitempty"`
	Error      string      `json:"error,omitempty" xml:"error,omitempty"`
	Count      *int        `json:"count,omitempty" xml:"count,omitempty"`
	Category   interface{} `json:"category,omitempty" xml:"category,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty" xml:"pagination,omitempty"`
}

// Pagination describes a page of a larger collection.
type Pagination struct {
	Page       int `json:"page" xml:"page"`
	Limit      int `json:"limit" xml:"limit"`
	Total      int `json:"total" xml:"total"`
	TotalPages int `json:"totalPages" xml:"totalPages"`
}

// WantsXML reports whether the request prefers an XML body. Only an Accept
// header naming an XML media type switches the renderer; everything else
// gets JSON.
func WantsXML(c *gin.Context) bool {
	accept := c.GetHeader("Accept")
	return strings.Contains(accept, "application/xml") || strings.Contains(accept, "text/xml")
}

// Send renders body as JSON or XML according to the request's Accept header.
func Send(c *gin.Context, status int, body Body) {
	if WantsXML(c) {
		c.XML(status, body)
		return
	}
	c.JSON(status, body)
}

// Success responses

func OK(c *gin.Context, data interface{}) {
	Send(c, http.StatusOK, Body{Success: true, Data: data})
}

func OKWithMessage(c *gin.Context, message string, data interface{}) {
	Send(c, http.StatusOK, Body{Success: true, Message: message, Data: data})
}

func Created(c *gin.Context, message string, data interface{}) {
	Send(c, http.StatusCreated, Body{Success: true, Message: message, Data: data})
}

func List(c *gin.Context, data interface{}, count int) {
	Send(c, http.StatusOK, Body{Success: true, Data: data, Count: &count})
}

func Paginated(c *gin.Context, data interface{}, p Pagination) {
	Send(c, http.StatusOK, Body{Success: true, Data: data, Pagination: &p})
}

// PaginatedInCategory is the shape of "articles by category": the page plus
// the category it was filtered on.
func PaginatedInCategory(c *gin.Context, data interface{}, category interface{}, p Pagination) {
	Send(c, http.StatusOK, Body{Success: true, Data: data, Category: category, Pagination: &p})
}

func Message(c *gin.Context, message string) {
	Send(c, http.StatusOK, Body{Success: true, Message: message})
}

// Error responses

func Fail(c *gin.Context, status int, message string) {
	Send(c, status, Body{Success: false, Error: message})
}

func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Fail(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	Fail(c, http.StatusForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	Fail(c, http.StatusConflict, message)
}

func InternalServerError(c *gin.Context) {
	Fail(c, http.StatusInternalServerError, "internal server error")
}
