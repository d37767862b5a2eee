// ABOUTME: Response DTOs for the news diary endpoint
// ABOUTME: camelCase JSON shape consumed by the single-page client

package responses

// NewsResponse is the body of GET /api/news
type NewsResponse struct {
	Entries   []string `json:"entries" minItems:"1" maxItems:"3" doc:"Diary entries, generated or templated"`
	UpdatedAt string   `json:"updatedAt" format:"date-time" doc:"When the diary was built (UTC, millisecond precision)"`
	Meta      NewsMeta `json:"meta" doc:"Diagnostics describing how the entries were produced"`
}

// NewsMeta describes which pipeline path produced the entries
type NewsMeta struct {
	RSSURL            string `json:"rssUrl" doc:"Feed that was polled"`
	Model             string `json:"model" doc:"Model identifier sent to the generation service"`
	Source            string `json:"source" enum:"ai,fallback-empty-rss,fallback-ai-error,fallback-ai-empty,fallback-ai-format,fallback-error" doc:"Where the entries came from"`
	Stage             string `json:"stage" enum:"init,fetch-rss,call-ai,complete" doc:"Last pipeline stage entered"`
	ArticleCount      int    `json:"articleCount" minimum:"0" maximum:"3" doc:"Articles extracted from the feed"`
	Error             string `json:"error,omitempty" doc:"Upstream body or unexpected error message"`
	ErrorKind         string `json:"errorKind,omitempty" doc:"Type of the unexpected error"`
	Status            int    `json:"status,omitempty" doc:"Upstream HTTP status"`
	FallbackReason    string `json:"fallbackReason,omitempty" doc:"Why model output was discarded"`
	RawContentPreview string `json:"rawContentPreview,omitempty" doc:"Start of the discarded model output"`
}
