package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	activityrepo "github.com/labtrack/labtrack/internal/activity/repository"
	"github.com/labtrack/labtrack/internal/component/repository"
	"github.com/labtrack/labtrack/internal/seed"
	userrepo "github.com/labtrack/labtrack/internal/user/repository"
	"github.com/labtrack/labtrack/pkg/auth"
	"github.com/labtrack/labtrack/pkg/logger"
)

func newTestServer(t *testing.T) (*mux.Router, string) {
	t.Helper()
	logger.Init("labtrack-test", true)

	components := repository.NewMemoryComponentRepository()
	logs := activityrepo.NewMemoryLogRepository()
	users := userrepo.NewMemoryUserRepository()
	if err := seed.Load(components, logs, users); err != nil {
		t.Fatalf("seed: %v", err)
	}

	handler := NewComponentHandler(components, logs, users, nil)
	router := mux.NewRouter()
	handler.RegisterRoutes(router)

	admin, err := users.FindByEmail("admin@labtrack.com")
	if err != nil {
		t.Fatalf("admin user missing from seed: %v", err)
	}
	token, err := auth.GenerateToken(admin.ID, admin.Email, admin.Role)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return router, token
}

func doJSON(t *testing.T, router *mux.Router, method, path, token string, body interface{}) (*httptest.ResponseRecorder, Response) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp Response
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return rec, resp
}

func TestListComponentsEndpoint(t *testing.T) {
	router, _ := newTestServer(t)

	rec, resp := doJSON(t, router, http.MethodGet, "/api/components", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !resp.Success {
		t.Error("expected success envelope")
	}

	components, ok := resp.Data.([]interface{})
	if !ok || len(components) == 0 {
		t.Fatalf("expected seeded components, got %v", resp.Data)
	}
}

func TestListComponentsEndpointBadStockStatus(t *testing.T) {
	router, _ := newTestServer(t)

	rec, resp := doJSON(t, router, http.MethodGet, "/api/components?stock=plenty", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if resp.Success || resp.Error == "" {
		t.Error("expected error envelope")
	}
}

func TestMovementEndpointRequiresAuth(t *testing.T) {
	router, _ := newTestServer(t)

	rec, _ := doJSON(t, router, http.MethodPost, "/api/components/some-id/movements", "", map[string]interface{}{
		"type": "inward", "quantity": 1, "reason": "Restock",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
}

func TestMovementEndpoint(t *testing.T) {
	router, token := newTestServer(t)

	_, listResp := doJSON(t, router, http.MethodGet, "/api/components", "", nil)
	components := listResp.Data.([]interface{})
	first := components[0].(map[string]interface{})
	id := first["id"].(string)
	quantity := int(first["quantity"].(float64))

	rec, resp := doJSON(t, router, http.MethodPost, "/api/components/"+id+"/movements", token, map[string]interface{}{
		"type": "outward", "quantity": 1, "reason": "Bench testing",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, resp.Error)
	}

	updated := resp.Data.(map[string]interface{})
	if got := int(updated["quantity"].(float64)); got != quantity-1 {
		t.Errorf("expected quantity %d, got %d", quantity-1, got)
	}
}

func TestMovementEndpointOverIssue(t *testing.T) {
	router, token := newTestServer(t)

	_, listResp := doJSON(t, router, http.MethodGet, "/api/components", "", nil)
	first := listResp.Data.([]interface{})[0].(map[string]interface{})
	id := first["id"].(string)

	rec, resp := doJSON(t, router, http.MethodPost, "/api/components/"+id+"/movements", token, map[string]interface{}{
		"type": "outward", "quantity": 1000000, "reason": "Way too much",
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if resp.Error == "" {
		t.Error("expected error message with available stock")
	}
}

func TestGetComponentEndpointNotFound(t *testing.T) {
	router, _ := newTestServer(t)

	rec, _ := doJSON(t, router, http.MethodGet, "/api/components/no-such-id", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestSummaryEndpoint(t *testing.T) {
	router, _ := newTestServer(t)

	rec, resp := doJSON(t, router, http.MethodGet, "/api/summary", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	summary := resp.Data.(map[string]interface{})
	total := int(summary["totalTypes"].(float64))
	inStock := int(summary["inStockTypes"].(float64))
	outOfStock := int(summary["outOfStockTypes"].(float64))
	if total == 0 {
		t.Fatal("expected seeded summary")
	}
	if inStock+outOfStock != total {
		t.Errorf("in-stock (%d) and out-of-stock (%d) must partition the %d types", inStock, outOfStock, total)
	}
}
