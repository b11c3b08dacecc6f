package search

import (
	"context"
	"sync"

	"searchlens-api/core/domain"
	"searchlens-api/core/interfaces"
)

// mockAggregator is a mock implementation of the Aggregator interface
type mockAggregator struct {
	searchFunc func(ctx context.Context, query string, limit int, engines, language string) (*interfaces.AggregatorResult, error)
}

func (m *mockAggregator) Search(ctx context.Context, query string, limit int, engines, language string) (*interfaces.AggregatorResult, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query, limit, engines, language)
	}
	return &interfaces.AggregatorResult{Hits: []domain.RawHit{}}, nil
}

func (m *mockAggregator) HealthCheck(ctx context.Context) bool {
	return true
}

// mockExtractor is a mock implementation of the ContentExtractor interface
type mockExtractor struct {
	mu          sync.Mutex
	calls       []string
	extractFunc func(ctx context.Context, url string) domain.ExtractedContent
}

func (m *mockExtractor) ExtractFromURL(ctx context.Context, url string) domain.ExtractedContent {
	m.mu.Lock()
	m.calls = append(m.calls, url)
	m.mu.Unlock()

	if m.extractFunc != nil {
		return m.extractFunc(ctx, url)
	}
	return domain.ExtractedContent{
		BodyText:       "Extracted body text for " + url,
		FetchSucceeded: true,
	}
}

func (m *mockExtractor) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// mockAIProvider is a mock implementation of the AIProvider interface
type mockAIProvider struct {
	summarizeFunc func(ctx context.Context, title, content string) *string
	embedFunc     func(ctx context.Context, text string) []float32
}

func (m *mockAIProvider) Summarize(ctx context.Context, title, content string) *string {
	if m.summarizeFunc != nil {
		return m.summarizeFunc(ctx, title, content)
	}
	summary := "A summary."
	return &summary
}

func (m *mockAIProvider) Embed(ctx context.Context, text string) []float32 {
	if m.embedFunc != nil {
		return m.embedFunc(ctx, text)
	}
	return []float32{1, 0, 0}
}

// mockLogger is a no-op implementation of the Logger interface
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
