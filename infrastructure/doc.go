// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// The infrastructure package is organized by technical concern:
//
// - http/standard: feed client on net/http with an identifying User-Agent
// - llm/openai: chat-completion client built on go-openai
// - logger/logrus: logrus logger with optional lumberjack file rotation
//
// None of the clients retry. Timeouts belong to the *http.Client passed in.
//
// # HTTP Client
//
//	client := standard.NewStandardHTTPClient(&http.Client{Timeout: 30 * time.Second}, userAgent)
//	resp, err := client.Get(ctx, feedURL)
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Generation Client
//
//	gen := openai.NewClient(openai.Config{BaseURL: baseURL, APIKey: key})
//	content, err := gen.Complete(ctx, req)
//
// # Logger
//
//	logger, err := logrus.NewLogrusLogger(logrus.Options{Level: "info", Format: "json"})
//	logger.Info("Diary built", map[string]interface{}{
//	    "source": "ai",
//	    "stage":  "complete",
//	})
package infrastructure
