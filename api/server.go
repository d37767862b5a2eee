// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation, CORS, request logging and the shared error shape

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"donaldking-api/api/dto/responses"
	"donaldking-api/api/middleware"
	"donaldking-api/core/interfaces"
	"donaldking-api/pkg/featureflags"
)

const (
	apiTitle   = "Donald King API"
	apiVersion = "1.0.0"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger interfaces.Logger

	// Flags toggles optional surfaces. Nil enables everything.
	Flags featureflags.Manager
}

var installErrorModel sync.Once

// NewAPI creates and configures a new Huma API instance without request logging
func NewAPI() (huma.API, chi.Router) {
	return NewAPIWithMiddleware(APIConfig{})
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	installErrorModel.Do(func() {
		huma.NewError = responses.NewError
	})

	router := chi.NewRouter()

	// Configure CORS (should be first middleware)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300, // Maximum value not ignored by any of major browsers
	}))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	router.MethodNotAllowed(methodNotAllowed)
	router.NotFound(notFound)

	config := huma.DefaultConfig(apiTitle, apiVersion)
	config.Info.Description = "Satirical news diary and persona chat backed by an OpenAI-compatible model"
	// Response bodies keep the exact client-facing shape, without a $schema link
	config.CreateHooks = nil

	if cfg.Flags != nil && !cfg.Flags.IsEnabled(context.Background(), featureflags.DocsEnabled) {
		config.OpenAPIPath = ""
		config.DocsPath = ""
		config.SchemasPath = ""
	}

	api := humachi.New(router, config)

	return api, router
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Not Found")
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(&responses.ErrorResponse{Status: status, Message: message})
}
