// ABOUTME: Service interfaces for the enrichment pipeline collaborators
// ABOUTME: Defines contracts for the aggregator, content extraction, and AI provider

package interfaces

import (
	"context"

	"searchlens-api/core/domain"
)

// AggregatorResult is what the meta-search backend returns for one query.
type AggregatorResult struct {
	// Hits are the raw results in relevance rank order
	Hits []domain.RawHit

	// SearchTimeMs is the wall-clock time the aggregator call took
	SearchTimeMs int64
}

// Aggregator queries the external meta-search backend.
type Aggregator interface {
	// Search runs one query and returns ranked raw hits.
	Search(ctx context.Context, query string, limit int, engines, language string) (*AggregatorResult, error)

	// HealthCheck reports whether the backend is reachable.
	HealthCheck(ctx context.Context) bool
}

// ContentExtractor fetches a hit's page and produces clean body text.
// Failures are captured in the returned ExtractedContent, never as errors.
type ContentExtractor interface {
	ExtractFromURL(ctx context.Context, url string) domain.ExtractedContent
}

// AIProvider wraps the external LLM backend for summaries and embeddings.
// Both calls degrade to (nil, nil) on provider failure; the pipeline treats
// a nil result as "field stays null".
type AIProvider interface {
	// Summarize produces a short summary of the content, or nil.
	Summarize(ctx context.Context, title, content string) *string

	// Embed produces a fixed-length vector for the text, or nil.
	Embed(ctx context.Context, text string) []float32
}
