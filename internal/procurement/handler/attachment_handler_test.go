package handler

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/flaviorefit/projetos/internal/config"
	"github.com/flaviorefit/projetos/internal/procurement/repository"
	"github.com/flaviorefit/projetos/internal/procurement/service"
	"github.com/flaviorefit/projetos/internal/procurement/testutil"
)

// setupAttachmentTest wires the attachment routes without object storage. The
// metadata paths still work; uploads report the missing backend.
func setupAttachmentTest(t *testing.T) *gin.Engine {
	t.Helper()
	db := testutil.SetupTestDB(t)

	cfg := config.ProcurementConfig{IDPrefix: "PROJ"}

	repos := repository.NewRepositories(db)
	cache := service.NewSnapshotCache(nil, 0, zap.NewNop())
	projectSvc := service.NewProjectService(repos.Projects, cache, cfg, zap.NewNop())
	attachmentSvc := service.NewAttachmentService(repos.Attachments, repos.Projects, nil, "")

	projectHandler := NewProjectHandler(projectSvc, service.NewExportService(projectSvc))
	h := NewAttachmentHandler(attachmentSvc)

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api/v1")

	api.POST("/projects", projectHandler.Create)
	api.POST("/projects/:id/attachments", h.Upload)
	api.GET("/projects/:id/attachments", h.List)
	api.GET("/attachments/:id/download", h.Download)
	api.DELETE("/attachments/:id", h.Delete)

	return router
}

func uploadAttachment(t *testing.T, router *gin.Engine, token, projectID, filename, content string) *httptest.ResponseRecorder {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	io.Copy(part, strings.NewReader(content))
	writer.Close()

	req, _ := http.NewRequest("POST", "/api/v1/projects/"+projectID+"/attachments", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAttachmentUploadWithoutStorage(t *testing.T) {
	router := setupAttachmentTest(t)
	token := testutil.DefaultTestToken()

	project := createProject(t, router, token, map[string]interface{}{
		"status": "in_progress", "description": "Projeto com anexos",
	})
	projectID := project["id"].(string)

	w := uploadAttachment(t, router, token, projectID, "contrato.pdf", "PDF bytes")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	if resp["message"] != "Storage not configured" {
		t.Errorf("Expected storage message, got %v", resp["message"])
	}
}

func TestAttachmentUploadRequiresFile(t *testing.T) {
	router := setupAttachmentTest(t)
	token := testutil.DefaultTestToken()

	project := createProject(t, router, token, map[string]interface{}{
		"status": "in_progress",
	})
	projectID := project["id"].(string)

	w := testutil.DoRequest(router, "POST", "/api/v1/projects/"+projectID+"/attachments", nil, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAttachmentListEmpty(t *testing.T) {
	router := setupAttachmentTest(t)
	token := testutil.DefaultTestToken()

	project := createProject(t, router, token, map[string]interface{}{
		"status": "in_progress",
	})
	projectID := project["id"].(string)

	w := testutil.DoRequest(router, "GET", "/api/v1/projects/"+projectID+"/attachments", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	items, ok := data["items"].([]interface{})
	if !ok {
		t.Fatalf("Expected items array, got %T", data["items"])
	}
	if len(items) != 0 {
		t.Errorf("Expected no attachments, got %d", len(items))
	}
}

func TestAttachmentListProjectNotFound(t *testing.T) {
	router := setupAttachmentTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(router, "GET", "/api/v1/projects/PROJ999/attachments", nil, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAttachmentDownloadNotFound(t *testing.T) {
	router := setupAttachmentTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(router, "GET", "/api/v1/attachments/missing/download", nil, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAttachmentDeleteNotFound(t *testing.T) {
	router := setupAttachmentTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(router, "DELETE", "/api/v1/attachments/missing", nil, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d: %s", w.Code, w.Body.String())
	}
}
