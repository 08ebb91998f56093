package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/flaviorefit/projetos/internal/config"
	"github.com/flaviorefit/projetos/internal/procurement/repository"
	"github.com/flaviorefit/projetos/internal/procurement/service"
	"github.com/flaviorefit/projetos/internal/procurement/testutil"
)

func setupDashboardTest(t *testing.T) *gin.Engine {
	t.Helper()
	db := testutil.SetupTestDB(t)

	cfg := config.ProcurementConfig{IDPrefix: "PROJ"}

	projectRepo := repository.NewProjectRepository(db)
	cache := service.NewSnapshotCache(nil, 0, zap.NewNop())
	projectSvc := service.NewProjectService(projectRepo, cache, cfg, zap.NewNop())
	dashboardSvc := service.NewDashboardService(projectSvc)

	projectHandler := NewProjectHandler(projectSvc, service.NewExportService(projectSvc))
	h := NewDashboardHandler(dashboardSvc)

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api/v1")

	api.POST("/projects", projectHandler.Create)
	dashboard := api.Group("/dashboard")
	dashboard.GET("/overview", h.Overview)
	dashboard.GET("/timeline", h.Timeline)

	return router
}

func TestDashboardOverview(t *testing.T) {
	router := setupDashboardTest(t)
	token := testutil.DefaultTestToken()

	createProject(t, router, token, map[string]interface{}{
		"status":        "completed",
		"responsible":   "Ana Costa",
		"has_budget":    true,
		"budget":        "1000",
		"best_proposal": "500",
		"initial_price": "900",
		"final_price":   "600",
	})
	createProject(t, router, token, map[string]interface{}{
		"status":      "in_progress",
		"responsible": "Ana Costa",
	})
	createProject(t, router, token, map[string]interface{}{
		"status":      "cancelled",
		"responsible": "Bruno Lima",
	})

	w := testutil.DoRequest(router, "GET", "/api/v1/dashboard/overview", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})

	summary := data["summary"].(map[string]interface{})
	if summary["total"].(float64) != 3 {
		t.Errorf("Expected total 3, got %v", summary["total"])
	}
	if summary["completed"].(float64) != 1 {
		t.Errorf("Expected completed 1, got %v", summary["completed"])
	}
	if summary["in_progress"].(float64) != 1 {
		t.Errorf("Expected in_progress 1, got %v", summary["in_progress"])
	}
	if summary["cancelled"].(float64) != 1 {
		t.Errorf("Expected cancelled 1, got %v", summary["cancelled"])
	}
	// final price 600 plus best proposal 500.
	if summary["total_value"] != "1100" {
		t.Errorf("Expected total_value '1100', got %v", summary["total_value"])
	}
	// saving 500 plus cost avoidance 300.
	if summary["total_economy"] != "800" {
		t.Errorf("Expected total_economy '800', got %v", summary["total_economy"])
	}

	if data["total_value_label"] != "R$ 1.10K" {
		t.Errorf("Expected label 'R$ 1.10K', got %v", data["total_value_label"])
	}
	if data["total_economy_label"] != "R$ 800,00" {
		t.Errorf("Expected label 'R$ 800,00', got %v", data["total_economy_label"])
	}

	byResponsible := data["by_responsible"].([]interface{})
	first := byResponsible[0].(map[string]interface{})
	if first["responsible"] != "Ana Costa" || first["count"].(float64) != 2 {
		t.Errorf("Expected Ana Costa with count 2 first, got %v", first)
	}
}

func TestDashboardOverviewFiltered(t *testing.T) {
	router := setupDashboardTest(t)
	token := testutil.DefaultTestToken()

	createProject(t, router, token, map[string]interface{}{
		"status": "completed", "responsible": "Ana Costa",
	})
	createProject(t, router, token, map[string]interface{}{
		"status": "in_progress", "responsible": "Bruno Lima",
	})

	w := testutil.DoRequest(router, "GET", "/api/v1/dashboard/overview?status=completed", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	summary := data["summary"].(map[string]interface{})
	if summary["total"].(float64) != 1 {
		t.Errorf("Expected total 1 after filter, got %v", summary["total"])
	}
}

func TestDashboardTimeline(t *testing.T) {
	router := setupDashboardTest(t)
	token := testutil.DefaultTestToken()

	createProject(t, router, token, map[string]interface{}{
		"status":      "in_progress",
		"description": "Projeto de março",
		"start_date":  "2026-03-01",
		"end_date":    "2026-08-31",
	})
	createProject(t, router, token, map[string]interface{}{
		"status":      "in_progress",
		"description": "Projeto de janeiro",
		"start_date":  "2026-01-15",
		"end_date":    "2026-05-31",
	})
	// No schedule window, stays off the timeline.
	createProject(t, router, token, map[string]interface{}{
		"status": "to_start", "description": "Sem datas",
	})

	w := testutil.DoRequest(router, "GET", "/api/v1/dashboard/timeline", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	if len(items) != 2 {
		t.Fatalf("Expected 2 timeline entries, got %d", len(items))
	}

	first := items[0].(map[string]interface{})
	if first["description"] != "Projeto de janeiro" {
		t.Errorf("Expected earliest start first, got %v", first["description"])
	}
}
