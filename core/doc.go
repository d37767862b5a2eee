// Package core contains the business logic for the Donald King API.
// It does not depend on the web framework or on any concrete client.
//
// The core package is organized into several sub-packages:
//
// - domain: Article, DiaryResponse and chat message types
// - news: the diary pipeline (feed extraction, prompt, normalization, fallback)
// - chat: the persona chat proxy
// - errors: typed errors shared with the API layer
// - interfaces: contracts for external dependencies (HTTP, generation, logger)
//
// # Usage Example
//
//	import (
//	    "donaldking-api/core/interfaces"
//	    "donaldking-api/core/news"
//	)
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Generator:  myGenerator,  // implements interfaces.ChatCompleter
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	svc := news.NewService(deps, news.Config{FeedURL: feedURL, Model: model})
//	diary := svc.BuildDiary(ctx) // never fails; see diary.Meta.Source
package core
