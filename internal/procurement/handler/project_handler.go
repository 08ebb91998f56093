package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/flaviorefit/projetos/internal/procurement/engine"
	"github.com/flaviorefit/projetos/internal/procurement/entity"
	"github.com/flaviorefit/projetos/internal/procurement/repository"
	"github.com/flaviorefit/projetos/internal/procurement/service"
)

// ProjectHandler serves the project CRUD, filter options and grid export.
type ProjectHandler struct {
	svc       *service.ProjectService
	exportSvc *service.ExportService
}

func NewProjectHandler(svc *service.ProjectService, exportSvc *service.ExportService) *ProjectHandler {
	return &ProjectHandler{svc: svc, exportSvc: exportSvc}
}

// parseCriteria reads the grid filter from query params. Multiple statuses
// come comma separated; year selects on the start date.
func parseCriteria(c *gin.Context) engine.Criteria {
	criteria := engine.Criteria{
		Company:     c.Query("company"),
		Area:        c.Query("area"),
		Responsible: c.Query("responsible"),
		Category:    c.Query("category"),
		Search:      c.Query("q"),
	}
	if raw := c.Query("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				criteria.Statuses = append(criteria.Statuses, s)
			}
		}
	}
	if raw := c.Query("year"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			criteria.Year = &v
		}
	}
	return criteria
}

// List GET /projects
func (h *ProjectHandler) List(c *gin.Context) {
	criteria := parseCriteria(c)

	records, err := h.svc.List(c.Request.Context(), criteria)
	if err != nil {
		InternalError(c, "list projects: "+err.Error())
		return
	}

	page, pageSize := GetPagination(c)
	items, pagination := paginateProjects(records, page, pageSize)
	Success(c, ListResponse{Items: items, Pagination: pagination})
}

// Get GET /projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Project not found")
			return
		}
		InternalError(c, "get project: "+err.Error())
		return
	}
	Success(c, project)
}

// Create POST /projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req service.RegisterProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	project, err := h.svc.Register(c.Request.Context(), GetUserID(c), &req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			BadRequest(c, err.Error())
			return
		}
		InternalError(c, "create project: "+err.Error())
		return
	}
	Created(c, project)
}

// Update PUT /projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	var req service.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	project, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			NotFound(c, "Project not found")
		case errors.Is(err, service.ErrValidation):
			BadRequest(c, err.Error())
		default:
			InternalError(c, "update project: "+err.Error())
		}
		return
	}
	Success(c, project)
}

// Delete DELETE /projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Project not found")
			return
		}
		InternalError(c, "delete project: "+err.Error())
		return
	}
	Success(c, nil)
}

// Options GET /options
func (h *ProjectHandler) Options(c *gin.Context) {
	options, err := h.svc.Options(c.Request.Context())
	if err != nil {
		InternalError(c, "load options: "+err.Error())
		return
	}
	Success(c, options)
}

// Export GET /projects/export
func (h *ProjectHandler) Export(c *gin.Context) {
	criteria := parseCriteria(c)

	f, filename, err := h.exportSvc.ExportProjects(c.Request.Context(), criteria)
	if err != nil {
		InternalError(c, "export projects: "+err.Error())
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Header("Content-Transfer-Encoding", "binary")

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "write excel: "+err.Error())
	}
}

func paginateProjects(records []entity.Project, page, pageSize int) ([]entity.Project, *Pagination) {
	total := len(records)
	totalPages := total / pageSize
	if total%pageSize > 0 {
		totalPages++
	}

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	items := records[start:end]
	if items == nil {
		items = []entity.Project{}
	}
	return items, &Pagination{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
