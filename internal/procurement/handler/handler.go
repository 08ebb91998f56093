package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/flaviorefit/projetos/internal/procurement/service"
)

// Handlers bundles the HTTP handlers for route registration.
type Handlers struct {
	Auth       *AuthHandler
	Project    *ProjectHandler
	Dashboard  *DashboardHandler
	Attachment *AttachmentHandler
}

// NewHandlers creates the handler set over the service layer.
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Auth:       NewAuthHandler(svc.Auth),
		Project:    NewProjectHandler(svc.Project, svc.Export),
		Dashboard:  NewDashboardHandler(svc.Dashboard),
		Attachment: NewAttachmentHandler(svc.Attachment),
	}
}

// Response is the common JSON envelope.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ListResponse is the envelope payload for paginated lists.
type ListResponse struct {
	Items      interface{} `json:"items"`
	Pagination *Pagination `json:"pagination"`
}

// Pagination describes one page of a list.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// Success writes a 200 envelope.
func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Created writes a 201 envelope.
func Created(c *gin.Context, data interface{}) {
	c.JSON(201, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error writes an error envelope. The HTTP status is the business code
// divided by 100.
func Error(c *gin.Context, code int, message string) {
	statusCode := code / 100
	if statusCode < 100 || statusCode > 599 {
		statusCode = 500
	}
	c.JSON(statusCode, Response{
		Code:    code,
		Message: message,
	})
}

// BadRequest writes a 40000 envelope.
func BadRequest(c *gin.Context, message string) {
	Error(c, 40000, message)
}

// Unauthorized writes a 40100 envelope.
func Unauthorized(c *gin.Context, message string) {
	Error(c, 40100, message)
}

// Forbidden writes a 40300 envelope.
func Forbidden(c *gin.Context, message string) {
	Error(c, 40300, message)
}

// NotFound writes a 40400 envelope.
func NotFound(c *gin.Context, message string) {
	Error(c, 40400, message)
}

// InternalError writes a 50000 envelope.
func InternalError(c *gin.Context, message string) {
	Error(c, 50000, message)
}

// GetUserID reads the authenticated user id set by the JWT middleware.
func GetUserID(c *gin.Context) string {
	userID, _ := c.Get("user_id")
	if id, ok := userID.(string); ok {
		return id
	}
	return ""
}

// GetPagination reads page/page_size query params with sane bounds.
func GetPagination(c *gin.Context) (page, pageSize int) {
	page = 1
	pageSize = 20

	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}

	if ps := c.Query("page_size"); ps != "" {
		if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
			pageSize = v
		}
	}

	return page, pageSize
}
