// ABOUTME: News service runs the diary pipeline from feed fetch to normalized entries
// ABOUTME: Every failure is absorbed into templated entries plus metadata describing the path taken

package news

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"donaldking-api/core/domain"
	coreerrors "donaldking-api/core/errors"
	"donaldking-api/core/interfaces"
)

const (
	// maxFeedBytes caps how much of the feed body is read
	maxFeedBytes = 10 << 20

	previewRunes = 200

	formatFallbackReason = "Model response did not contain any usable entries."
)

// Config holds the immutable per-service settings
type Config struct {
	FeedURL string
	Model   string
}

// Service builds news diaries. It keeps no state between calls.
type Service struct {
	deps interfaces.Dependencies
	cfg  Config
	now  func() time.Time
}

// NewService creates a new news service instance
func NewService(deps interfaces.Dependencies, cfg Config) *Service {
	if deps.Logger == nil {
		deps.Logger = interfaces.NopLogger{}
	}
	return &Service{
		deps: deps,
		cfg:  cfg,
		now:  time.Now,
	}
}

// run tracks how far one pipeline invocation got
type run struct {
	stage    domain.Stage
	articles []domain.Article
}

// BuildDiary runs the pipeline once. It always returns 1 to 3 entries; failures are
// reported through the response metadata, never as an error.
func (s *Service) BuildDiary(ctx context.Context) (resp *domain.DiaryResponse) {
	r := &run{stage: domain.StageInit}

	defer func() {
		if rec := recover(); rec != nil {
			resp = s.unexpected(r, fmt.Errorf("%v", rec), "panic")
		}
	}()

	var err error
	resp, err = s.execute(ctx, r)
	if err != nil {
		return s.unexpected(r, err, coreerrors.Kind(err))
	}
	return resp
}

func (s *Service) execute(ctx context.Context, r *run) (*domain.DiaryResponse, error) {
	r.stage = domain.StageFetchRSS
	articles, err := s.fetchArticles(ctx)
	if err != nil {
		return nil, err
	}
	r.articles = articles

	if len(articles) == 0 {
		meta := s.meta(r, domain.SourceFallbackEmptyRSS)
		s.deps.Logger.Warn("Feed returned no usable articles", s.logFields(meta))
		return s.respond(FallbackEntries(nil), meta), nil
	}

	if s.deps.Generator == nil {
		return nil, errors.New("generation client not configured")
	}

	r.stage = domain.StageCallAI
	content, err := s.deps.Generator.Complete(ctx, BuildRewriteRequest(s.cfg.Model, articles))
	if err != nil {
		var genErr *coreerrors.GenerationError
		switch {
		case errors.As(err, &genErr):
			meta := s.meta(r, domain.SourceFallbackAIError)
			meta.Status = genErr.Status
			meta.Error = genErr.Body
			s.deps.Logger.Warn("Generation request failed", s.logFields(meta))
			return s.respond(FallbackEntries(articles), meta), nil

		case coreerrors.IsEmptyGeneration(err):
			meta := s.meta(r, domain.SourceFallbackAIEmpty)
			s.deps.Logger.Warn("Generation returned no content", s.logFields(meta))
			return s.respond(FallbackEntries(articles), meta), nil

		default:
			return nil, err
		}
	}

	entries, kind := normalize(content)
	if len(entries) == 0 {
		meta := s.meta(r, domain.SourceFallbackAIFormat)
		meta.FallbackReason = formatFallbackReason
		meta.RawContentPreview = preview(content)
		fields := s.logFields(meta)
		fields["payload_kind"] = kind.String()
		s.deps.Logger.Warn("Generation content had no usable entries", fields)
		return s.respond(FallbackEntries(articles), meta), nil
	}

	if len(entries) > domain.MaxArticles {
		entries = entries[:domain.MaxArticles]
	}

	r.stage = domain.StageComplete
	meta := s.meta(r, domain.SourceAI)
	fields := s.logFields(meta)
	fields["payload_kind"] = kind.String()
	s.deps.Logger.Info("News diary generated", fields)

	return s.respond(entries, meta), nil
}

// fetchArticles performs the single feed request and extracts articles from the body
func (s *Service) fetchArticles(ctx context.Context) ([]domain.Article, error) {
	if s.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	resp, err := s.deps.HTTPClient.Get(ctx, s.cfg.FeedURL)
	if err != nil {
		return nil, coreerrors.WrapError(err, "RSS fetch failed")
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body(), maxFeedBytes))
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to read feed body")
	}

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, &coreerrors.FeedFetchError{
			Status: resp.StatusCode(),
			Body:   string(body),
		}
	}

	return ExtractArticles(string(body)), nil
}

// unexpected builds the fallback-error response from whatever articles were obtained
func (s *Service) unexpected(r *run, err error, kind string) *domain.DiaryResponse {
	meta := s.meta(r, domain.SourceFallbackError)
	meta.Error = err.Error()
	meta.ErrorKind = kind

	var feedErr *coreerrors.FeedFetchError
	if errors.As(err, &feedErr) {
		meta.Status = feedErr.Status
	}

	s.deps.Logger.Error("Unexpected error building news diary", s.logFields(meta))
	return s.respond(FallbackEntries(r.articles), meta)
}

func (s *Service) meta(r *run, source domain.Source) domain.ResponseMeta {
	return domain.ResponseMeta{
		RSSURL:       s.cfg.FeedURL,
		Model:        s.cfg.Model,
		Source:       source,
		Stage:        r.stage,
		ArticleCount: len(r.articles),
	}
}

func (s *Service) respond(entries []string, meta domain.ResponseMeta) *domain.DiaryResponse {
	return &domain.DiaryResponse{
		Entries:   entries,
		UpdatedAt: s.now().UTC(),
		Meta:      meta,
	}
}

func (s *Service) logFields(meta domain.ResponseMeta) map[string]interface{} {
	fields := map[string]interface{}{
		"source":        string(meta.Source),
		"stage":         string(meta.Stage),
		"article_count": meta.ArticleCount,
		"model":         meta.Model,
	}
	if meta.Status != 0 {
		fields["status"] = meta.Status
	}
	if meta.Error != "" {
		fields["error"] = meta.Error
	}
	if meta.ErrorKind != "" {
		fields["error_kind"] = meta.ErrorKind
	}
	return fields
}

func preview(content string) string {
	runes := []rune(content)
	if len(runes) > previewRunes {
		return string(runes[:previewRunes])
	}
	return content
}
