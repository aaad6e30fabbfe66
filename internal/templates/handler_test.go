package templates

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func setupTemplatesRouter(t *testing.T) (*gin.Engine, *MemoryRepo, *Registry) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	root := t.TempDir()
	writeTemplateDir(t, root, "classic", "x")
	registry, err := NewRegistry(root)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	repo := NewMemoryRepo()
	handler := NewHandler(&Service{Repo: repo, Registry: registry})

	router := gin.New()
	handler.RegisterRoutes(router.Group("/api/v1"))
	return router, repo, registry
}

func TestListTemplatesMarksAvailability(t *testing.T) {
	router, repo, _ := setupTemplatesRouter(t)
	repo.Seed(Template{ID: "tpl-1", Name: "Classic", Slug: "classic", UpdatedAt: time.Now().UTC()})
	repo.Seed(Template{ID: "tpl-2", Name: "Removed", Slug: "removed", UpdatedAt: time.Now().UTC()})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/templates", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var out []TemplateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 templates, got %d", len(out))
	}
	if out[0].Slug != "classic" || !out[0].Available {
		t.Fatalf("expected classic available, got %+v", out[0])
	}
	if out[1].Slug != "removed" || out[1].Available {
		t.Fatalf("expected removed unavailable, got %+v", out[1])
	}
}

func TestUpdateTemplate(t *testing.T) {
	router, repo, _ := setupTemplatesRouter(t)
	repo.Seed(Template{ID: "tpl-1", Name: "Classic", Slug: "classic"})

	body := `{"id": "tpl-1", "name": "Classic v2", "description": "Two columns"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/templates/update", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var out struct {
		Success         bool             `json:"success"`
		UpdatedTemplate TemplateResponse `json:"updatedTemplate"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !out.Success {
		t.Fatalf("expected success true")
	}
	if out.UpdatedTemplate.Name != "Classic v2" || out.UpdatedTemplate.Description != "Two columns" {
		t.Fatalf("unexpected updated template: %+v", out.UpdatedTemplate)
	}
	if !out.UpdatedTemplate.Available {
		t.Fatalf("expected availability from registry")
	}
}

func TestUpdateTemplateNotFound(t *testing.T) {
	router, _, _ := setupTemplatesRouter(t)

	body := `{"id": "nope", "name": "New"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/templates/update", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Template not found") {
		t.Fatalf("unexpected body: %s", resp.Body.String())
	}
}

func TestUpdateTemplateRequiresField(t *testing.T) {
	router, repo, _ := setupTemplatesRouter(t)
	repo.Seed(Template{ID: "tpl-1", Name: "Classic", Slug: "classic"})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/templates/update", strings.NewReader(`{"id": "tpl-1"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Invalid input") {
		t.Fatalf("unexpected body: %s", resp.Body.String())
	}
}
