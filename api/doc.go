// Package api provides the HTTP API layer for the Donald King service.
// It uses the Huma framework on a chi router to provide automatic OpenAPI
// documentation, request validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers for /api/news and /api/chat
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: request logging, request IDs and outbound call logging
//
// # OpenAPI
//
// - OpenAPI document at /openapi.json
// - Interactive docs at /docs
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{Logger: logger})
//
//	handlers.NewNewsHandler(newsService, cfg.HasAPIKey()).RegisterRoutes(humaAPI)
//	handlers.NewChatHandler(chatService, cfg.HasAPIKey()).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Every error, whether returned by a handler or produced by the framework,
// is written as a small JSON object:
//
//	{"error": "Method Not Allowed"}
//
// Upstream generation failures add a details field with the upstream body.
// Validation failures are reported as 400.
package api
