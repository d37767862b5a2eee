// ABOUTME: News diary handler for the Huma API
// ABOUTME: Serves GET /api/news, which always answers 200 once the API key is configured

package handlers

import (
	"context"
	"net/http"

	"donaldking-api/api/dto/mappers"
	"donaldking-api/api/dto/responses"
	"donaldking-api/core/domain"
	coreerrors "donaldking-api/core/errors"
	"donaldking-api/pkg/config"

	"github.com/danielgtaylor/huma/v2"
)

// NewsService interface defines the methods needed from the news pipeline
type NewsService interface {
	BuildDiary(ctx context.Context) *domain.DiaryResponse
}

// NewsHandler handles diary requests
type NewsHandler struct {
	newsService NewsService
	hasAPIKey   bool
}

// NewNewsHandler creates a new news handler
func NewNewsHandler(newsService NewsService, hasAPIKey bool) *NewsHandler {
	return &NewsHandler{
		newsService: newsService,
		hasAPIKey:   hasAPIKey,
	}
}

// RegisterRoutes registers the news routes
func (h *NewsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getNews",
		Method:      http.MethodGet,
		Path:        "/api/news",
		Summary:     "Get today's diary entries",
		Description: "Rewrites the latest headlines as diary entries. Falls back to templated entries when the feed or the model fails.",
		Tags:        []string{"News"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.GetNews)
}

// GetNewsInput has no parameters
type GetNewsInput struct{}

// GetNewsOutput defines the output for the GetNews operation
type GetNewsOutput struct {
	CacheControl string `header:"Cache-Control"`
	Body         responses.NewsResponse
}

// GetNews handles the GET /api/news endpoint
func (h *NewsHandler) GetNews(ctx context.Context, input *GetNewsInput) (*GetNewsOutput, error) {
	if !h.hasAPIKey {
		return nil, toErrorResponse(&coreerrors.ConfigurationError{Key: config.APIKeyEnv})
	}

	diary := h.newsService.BuildDiary(ctx)

	return &GetNewsOutput{
		CacheControl: "no-store",
		Body:         mappers.DiaryToResponse(diary),
	}, nil
}
