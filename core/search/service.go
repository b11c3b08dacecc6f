// ABOUTME: Search service orchestrating the result enrichment pipeline
// ABOUTME: Bounded concurrent fan-out with batch and streaming delivery

package search

import (
	"context"
	"sort"
	"strings"
	"sync"

	"searchlens-api/core/domain"
	"searchlens-api/core/enrich"
	"searchlens-api/core/errors"
	"searchlens-api/core/interfaces"
	"searchlens-api/pkg/config"
	"searchlens-api/pkg/textutil"
)

const (
	// maxQueryLength bounds the q parameter
	maxQueryLength = 500

	// maxSnippetLength caps the engine-provided snippet carried per result
	maxSnippetLength = 500

	noContentFallback = "No content available."
)

// itemState tracks a hit's progress through the pipeline. The only
// terminal states are stateReady and stateDegraded; a hit always reaches
// one of them, so no item is ever lost to a per-item failure.
type itemState int

const (
	statePending itemState = iota
	stateFetching
	stateEnriching
	stateAIProcessing
	stateReady
	stateDegraded
)

func (s itemState) String() string {
	switch s {
	case statePending:
		return "pending"
	case stateFetching:
		return "fetching"
	case stateEnriching:
		return "enriching"
	case stateAIProcessing:
		return "ai_processing"
	case stateReady:
		return "ready"
	case stateDegraded:
		return "degraded"
	default:
		return "unknown"
	}
}

// Options are the per-request pipeline parameters.
type Options struct {
	// Query is the search query
	Query string

	// Limit is the requested result count; 0 means the configured default
	Limit int

	// Engines is an optional comma-separated engine filter
	Engines string

	// Language is the search language code
	Language string

	// Summarize requests AI summaries per result
	Summarize bool

	// Embeddings requests embedding vectors per result
	Embeddings bool

	// Dedup requests near-duplicate removal; requires Embeddings
	Dedup bool
}

// ResultFunc receives each enriched result as it reaches a terminal state,
// in completion order. Calls are serialized.
type ResultFunc func(result domain.EnrichedResult)

// Service orchestrates the enrichment pipeline over raw aggregator hits.
// Each request is self-contained: all mutable state is request-scoped, so
// concurrent requests never contend.
type Service struct {
	deps       interfaces.Dependencies
	aggregator interfaces.Aggregator
	extractor  interfaces.ContentExtractor
	enricher   *enrich.Enricher
	ai         interfaces.AIProvider
	cfg        config.SearchConfig
}

// NewService creates a search service. ai may be nil, which disables the
// AI enrichment path: summary and embedding fields stay null without error.
func NewService(
	deps interfaces.Dependencies,
	aggregator interfaces.Aggregator,
	extractor interfaces.ContentExtractor,
	enricher *enrich.Enricher,
	ai interfaces.AIProvider,
	cfg config.SearchConfig,
) *Service {
	return &Service{
		deps:       deps,
		aggregator: aggregator,
		extractor:  extractor,
		enricher:   enricher,
		ai:         ai,
		cfg:        cfg,
	}
}

// Search runs the pipeline in batch mode, returning the complete response
// with results in aggregator rank order among survivors.
func (s *Service) Search(ctx context.Context, opts Options) (*domain.SearchResponse, error) {
	return s.run(ctx, opts, nil)
}

// SearchStream runs the pipeline and invokes onResult for every result as
// it completes, in completion order. The returned response carries the
// final post-dedup totals for the stream's metadata event. Results already
// streamed may be absent from the final count when dedup removes them.
func (s *Service) SearchStream(ctx context.Context, opts Options, onResult ResultFunc) (*domain.SearchResponse, error) {
	return s.run(ctx, opts, onResult)
}

func (s *Service) run(ctx context.Context, opts Options, onResult ResultFunc) (*domain.SearchResponse, error) {
	if err := s.validateOptions(&opts); err != nil {
		return nil, err
	}

	aggResult, err := s.aggregator.Search(ctx, opts.Query, opts.Limit, opts.Engines, opts.Language)
	if err != nil {
		return nil, err
	}

	if len(aggResult.Hits) == 0 {
		return &domain.SearchResponse{
			Query:        opts.Query,
			Results:      []domain.EnrichedResult{},
			TotalResults: 0,
			SearchTimeMs: aggResult.SearchTimeMs,
			EnginesUsed:  []string{},
		}, nil
	}

	results := s.enrichAll(ctx, aggResult.Hits, opts, onResult)

	if opts.Dedup && opts.Embeddings {
		before := len(results)
		results = deduplicate(results, DedupThreshold)
		if dropped := before - len(results); dropped > 0 {
			s.deps.Logger.Info("removed near-duplicate results", map[string]interface{}{
				"query":   opts.Query,
				"dropped": dropped,
			})
		}
	}

	return &domain.SearchResponse{
		Query:        opts.Query,
		Results:      results,
		TotalResults: len(results),
		SearchTimeMs: aggResult.SearchTimeMs,
		EnginesUsed:  enginesUsed(results),
	}, nil
}

// validateOptions applies defaults and checks request-level preconditions.
// Validation failures abort the request before any per-item work starts.
func (s *Service) validateOptions(opts *Options) error {
	opts.Query = strings.TrimSpace(opts.Query)
	if opts.Query == "" {
		return &errors.ValidationError{Field: "q", Message: "search query cannot be empty"}
	}
	if len(opts.Query) > maxQueryLength {
		return &errors.ValidationError{Field: "q", Message: "search query cannot exceed 500 characters"}
	}

	if opts.Limit == 0 {
		opts.Limit = s.cfg.DefaultResults
	}
	if opts.Limit < 1 || opts.Limit > s.cfg.MaxResults {
		return &errors.ValidationError{Field: "limit", Message: "limit out of range"}
	}

	if opts.Dedup && !opts.Embeddings {
		return &errors.ValidationError{Field: "dedup", Message: "dedup requires embeddings=true"}
	}

	// AI features without a configured provider degrade silently: the
	// summary and embedding fields stay null. Dedup then has nothing to
	// compare and drops nothing.
	if s.ai == nil && (opts.Summarize || opts.Embeddings) {
		s.deps.Logger.Debug("AI features requested but provider not configured", map[string]interface{}{
			"query": opts.Query,
		})
	}

	return nil
}

// enrichAll fans hits out to a bounded worker pool. Every hit produces
// exactly one result: items the request budget catches mid-flight finalize
// from their snippet instead of being dropped.
func (s *Service) enrichAll(ctx context.Context, hits []domain.RawHit, opts Options, onResult ResultFunc) []domain.EnrichedResult {
	budgetCtx, cancel := context.WithTimeout(ctx, s.cfg.RequestBudget)
	defer cancel()

	results := make([]domain.EnrichedResult, len(hits))

	workers := s.cfg.MaxConcurrentFetches
	if workers > len(hits) {
		workers = len(hits)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	var emitMu sync.Mutex

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				result := s.enrichOne(budgetCtx, hits[idx], opts)
				results[idx] = result
				if onResult != nil {
					emitMu.Lock()
					onResult(result)
					emitMu.Unlock()
				}
			}
		}()
	}

	// Work beyond the concurrency limit queues in submission order.
	for idx := range hits {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	return results
}

// enrichOne runs one hit through fetch, extraction, metadata, citation,
// and the optional AI stages. It never fails: fetch and AI errors degrade
// the item to its best available state.
func (s *Service) enrichOne(ctx context.Context, hit domain.RawHit, opts Options) domain.EnrichedResult {
	state := statePending

	snippet := textutil.Truncate(hit.Snippet, maxSnippetLength)

	var extracted domain.ExtractedContent
	if ctx.Err() != nil {
		// Request budget exhausted before this item started; finalize
		// from the snippet without touching the network.
		extracted = domain.ExtractedContent{
			FetchSucceeded: false,
			FetchError:     "request budget exhausted",
		}
	} else {
		state = stateFetching
		extracted = s.extractor.ExtractFromURL(ctx, hit.URL)
	}

	content := extracted.BodyText
	degraded := false
	if !extracted.FetchSucceeded || strings.TrimSpace(content) == "" {
		content = snippet
		degraded = true
		if strings.TrimSpace(content) == "" {
			content = noContentFallback
		}
	}

	title := hit.Title
	if extracted.Title != "" {
		title = extracted.Title
	}
	if title == "" {
		title = "Untitled"
	}

	state = stateEnriching
	metadata := s.enricher.Enrich(hit, extracted, content, opts.Query)
	citation := enrich.FormatCitations(title, hit.URL, metadata.Source, metadata.PublishedDate)

	result := domain.EnrichedResult{
		Title:    title,
		URL:      hit.URL,
		Content:  content,
		Snippet:  snippet,
		Metadata: metadata,
		Citation: citation,
		Engine:   hit.Engine,
		Degraded: degraded,
	}

	// AI stages run only for configured providers and within the budget;
	// results that missed the budget stay snippet-only.
	if s.ai != nil && ctx.Err() == nil {
		state = stateAIProcessing
		if opts.Summarize {
			result.Summary = s.ai.Summarize(ctx, title, content)
		}
		if opts.Embeddings {
			result.Embedding = s.ai.Embed(ctx, title+"\n\n"+content)
		}
	}

	if degraded {
		state = stateDegraded
	} else {
		state = stateReady
	}
	s.deps.Logger.Debug("result reached terminal state", map[string]interface{}{
		"url":   hit.URL,
		"state": state.String(),
		"error": extracted.FetchError,
	})

	return result
}

// enginesUsed collects the engines contributing surviving results, sorted
// for deterministic output.
func enginesUsed(results []domain.EnrichedResult) []string {
	seen := make(map[string]struct{})
	engines := make([]string, 0, 4)
	for _, result := range results {
		if _, ok := seen[result.Engine]; ok {
			continue
		}
		seen[result.Engine] = struct{}{}
		engines = append(engines, result.Engine)
	}
	sort.Strings(engines)
	return engines
}
