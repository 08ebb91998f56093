package handler

import (
	"errors"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/flaviorefit/projetos/internal/procurement/repository"
	"github.com/flaviorefit/projetos/internal/procurement/service"
)

// AttachmentHandler serves the project file endpoints.
type AttachmentHandler struct {
	svc *service.AttachmentService
}

func NewAttachmentHandler(svc *service.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{svc: svc}
}

// Upload POST /projects/:id/attachments
func (h *AttachmentHandler) Upload(c *gin.Context) {
	projectID := c.Param("id")

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		BadRequest(c, "File is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	attachment, err := h.svc.Upload(c.Request.Context(), projectID, GetUserID(c), file, header.Filename, header.Size, contentType)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			NotFound(c, "Project not found")
		case errors.Is(err, service.ErrStorageNotConfigured):
			InternalError(c, "Storage not configured")
		default:
			InternalError(c, "upload attachment: "+err.Error())
		}
		return
	}
	Created(c, attachment)
}

// List GET /projects/:id/attachments
func (h *AttachmentHandler) List(c *gin.Context) {
	attachments, err := h.svc.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Project not found")
			return
		}
		InternalError(c, "list attachments: "+err.Error())
		return
	}
	Success(c, gin.H{"items": attachments})
}

// Download GET /attachments/:id/download
func (h *AttachmentHandler) Download(c *gin.Context) {
	reader, attachment, err := h.svc.Download(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			NotFound(c, "Attachment not found")
		case errors.Is(err, service.ErrStorageNotConfigured):
			InternalError(c, "Storage not configured")
		default:
			InternalError(c, "download attachment: "+err.Error())
		}
		return
	}
	defer reader.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", attachment.FileName))
	c.Header("Content-Type", attachment.MimeType)
	c.Header("Content-Length", fmt.Sprintf("%d", attachment.FileSize))

	if _, err := io.Copy(c.Writer, reader); err != nil {
		InternalError(c, "stream attachment: "+err.Error())
	}
}

// Delete DELETE /attachments/:id
func (h *AttachmentHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			NotFound(c, "Attachment not found")
		default:
			InternalError(c, "delete attachment: "+err.Error())
		}
		return
	}
	Success(c, nil)
}
