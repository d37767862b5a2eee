// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// HTTPClient fetches the news feed
	HTTPClient HTTPClient

	// Generator calls the text-generation service
	Generator ChatCompleter

	// Logger provides structured logging
	Logger Logger
}
