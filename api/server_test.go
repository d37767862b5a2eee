package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"

	"donaldking-api/pkg/featureflags"
)

func TestNewAPI(t *testing.T) {
	api, router := NewAPI()

	if api == nil {
		t.Error("NewAPI returned nil API")
	}
	if router == nil {
		t.Error("NewAPI returned nil router")
	}
}

func TestNewAPI_HasCorrectTitle(t *testing.T) {
	api, _ := NewAPI()

	info := api.OpenAPI().Info
	expectedTitle := "Donald King API"

	if info.Title != expectedTitle {
		t.Errorf("API title = %s, want %s", info.Title, expectedTitle)
	}
}

func TestNewAPI_HasCorrectVersion(t *testing.T) {
	api, _ := NewAPI()

	info := api.OpenAPI().Info
	expectedVersion := "1.0.0"

	if info.Version != expectedVersion {
		t.Errorf("API version = %s, want %s", info.Version, expectedVersion)
	}
}

func TestAPI_OpenAPIEndpoint(t *testing.T) {
	_, router := NewAPI()

	req := httptest.NewRequest("GET", "/openapi.json", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	resp := w.Result()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("OpenAPI endpoint status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType != "application/vnd.oai.openapi+json" {
		t.Errorf("OpenAPI content-type = %s, want application/vnd.oai.openapi+json", contentType)
	}
}

func TestAPI_DocsEndpoint(t *testing.T) {
	_, router := NewAPI()

	req := httptest.NewRequest("GET", "/docs", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	resp := w.Result()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Docs endpoint status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType != "text/html" {
		t.Errorf("Docs content-type = %s, want text/html", contentType)
	}
}

func TestAPI_MethodNotAllowed(t *testing.T) {
	api, router := NewAPI()

	huma.Get(api, "/ping", func(ctx context.Context, input *struct{}) (*struct{}, error) {
		return &struct{}{}, nil
	})

	req := httptest.NewRequest(http.MethodDelete, "/ping", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusMethodNotAllowed)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %s, want application/json", ct)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body["error"] != "Method Not Allowed" {
		t.Errorf("error = %v, want Method Not Allowed", body["error"])
	}
}

func TestAPI_CORSPreflight(t *testing.T) {
	api, router := NewAPI()

	huma.Post(api, "/echo", func(ctx context.Context, input *struct{}) (*struct{}, error) {
		return &struct{}{}, nil
	})

	req := httptest.NewRequest(http.MethodOptions, "/echo", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestAPI_ValidationErrorShape(t *testing.T) {
	api, router := NewAPI()

	type input struct {
		Body struct {
			Name string `json:"name" minLength:"1"`
		}
	}
	huma.Post(api, "/named", func(ctx context.Context, in *input) (*struct{}, error) {
		return &struct{}{}, nil
	})

	req := httptest.NewRequest(http.MethodPost, "/named", strings.NewReader(`{"name":""}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if _, ok := body["error"].(string); !ok {
		t.Errorf("expected string error field, got %v", body)
	}
	if _, ok := body["$schema"]; ok {
		t.Error("error body should not carry $schema")
	}
}

func TestAPI_DocsDisabled(t *testing.T) {
	flags := featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{
		featureflags.DocsEnabled: false,
	})
	_, router := NewAPIWithMiddleware(APIConfig{Flags: flags})

	for _, path := range []string{"/docs", "/openapi.json"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("%s status = %d, want %d", path, w.Code, http.StatusNotFound)
		}
	}
}

func TestAPI_NotFoundShape(t *testing.T) {
	_, router := NewAPI()

	req := httptest.NewRequest(http.MethodGet, "/api/nothing", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if got := strings.TrimSpace(w.Body.String()); got != `{"error":"Not Found"}` {
		t.Errorf("body = %s", got)
	}
}
