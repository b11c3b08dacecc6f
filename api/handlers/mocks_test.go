package handlers

import (
	"context"

	"searchlens-api/core/domain"
	"searchlens-api/core/interfaces"
	"searchlens-api/core/search"
)

// mockSearchService is a mock implementation of the search pipeline
type mockSearchService struct {
	searchFunc func(ctx context.Context, opts search.Options) (*domain.SearchResponse, error)
	streamFunc func(ctx context.Context, opts search.Options, onResult search.ResultFunc) (*domain.SearchResponse, error)
}

func (m *mockSearchService) Search(ctx context.Context, opts search.Options) (*domain.SearchResponse, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, opts)
	}
	return &domain.SearchResponse{Query: opts.Query, Results: []domain.EnrichedResult{}, EnginesUsed: []string{}}, nil
}

func (m *mockSearchService) SearchStream(ctx context.Context, opts search.Options, onResult search.ResultFunc) (*domain.SearchResponse, error) {
	if m.streamFunc != nil {
		return m.streamFunc(ctx, opts, onResult)
	}
	return &domain.SearchResponse{Query: opts.Query, Results: []domain.EnrichedResult{}, EnginesUsed: []string{}}, nil
}

// mockAggregator is a mock implementation of the Aggregator interface
type mockAggregator struct {
	healthy bool
}

func (m *mockAggregator) Search(ctx context.Context, query string, limit int, engines, language string) (*interfaces.AggregatorResult, error) {
	return nil, nil
}

func (m *mockAggregator) HealthCheck(ctx context.Context) bool {
	return m.healthy
}

// mockLogger is a no-op implementation of the Logger interface
type mockLogger struct{}

func (mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (mockLogger) Info(msg string, fields map[string]interface{})  {}
func (mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (mockLogger) Error(msg string, fields map[string]interface{}) {}

func sampleResult(url, engine string) domain.EnrichedResult {
	wc := 120
	rt := 1
	return domain.EnrichedResult{
		Title:   "Title for " + url,
		URL:     url,
		Content: "Body for " + url,
		Snippet: "Snippet for " + url,
		Metadata: domain.Metadata{
			Source:             "example.com",
			ContentType:        domain.ContentTypeArticle,
			WordCount:          &wc,
			ReadingTimeMinutes: &rt,
			Keywords:           []string{"example"},
		},
		Citation: domain.Citation{APA: "a", MLA: "m", Chicago: "c"},
		Engine:   engine,
	}
}
