// ABOUTME: Diary domain model is the result of one news pipeline run
// ABOUTME: Carries the display entries plus metadata describing which path produced them

package domain

import "time"

// Source identifies where the entries of a DiaryResponse came from
type Source string

const (
	SourceAI               Source = "ai"
	SourceFallbackEmptyRSS Source = "fallback-empty-rss"
	SourceFallbackAIError  Source = "fallback-ai-error"
	SourceFallbackAIEmpty  Source = "fallback-ai-empty"
	SourceFallbackAIFormat Source = "fallback-ai-format"
	SourceFallbackError    Source = "fallback-error"
)

// IsFallback reports whether the entries are templated rather than generated
func (s Source) IsFallback() bool {
	return s != SourceAI
}

// Stage is the last pipeline step that was entered
type Stage string

const (
	StageInit     Stage = "init"
	StageFetchRSS Stage = "fetch-rss"
	StageCallAI   Stage = "call-ai"
	StageComplete Stage = "complete"
)

// DiaryResponse is what the news endpoint returns
type DiaryResponse struct {
	// Entries holds 1 to 3 trimmed, non-empty strings
	Entries []string

	// UpdatedAt is when the response was built
	UpdatedAt time.Time

	// Meta describes how the entries were produced
	Meta ResponseMeta
}

// ResponseMeta is the diagnostic record attached to every DiaryResponse.
// Optional fields are left at their zero value when they do not apply.
type ResponseMeta struct {
	RSSURL       string
	Model        string
	Source       Source
	Stage        Stage
	ArticleCount int

	// Error is the upstream body or the unexpected error message
	Error string

	// ErrorKind names the error type behind a fallback-error response
	ErrorKind string

	// Status is the upstream HTTP status, when one was received
	Status int

	FallbackReason    string
	RawContentPreview string
}
