// ABOUTME: Load tests for the /api/v1/search endpoint
// ABOUTME: Tests performance under high concurrent load

package loadtest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"searchlens-api/api"
	"searchlens-api/api/handlers"
	"searchlens-api/core/domain"
	"searchlens-api/core/search"
)

// mockSearchService returns canned enriched results after a configurable delay
type mockSearchService struct {
	delay time.Duration
}

func (m *mockSearchService) respond(query string) *domain.SearchResponse {
	if m.delay > 0 {
		time.Sleep(m.delay)
	}

	results := make([]domain.EnrichedResult, 3)
	for i := range results {
		results[i] = domain.EnrichedResult{
			Title:   fmt.Sprintf("Result %d for %s", i+1, query),
			URL:     fmt.Sprintf("https://example.com/%d", i+1),
			Content: "Body text",
			Snippet: "Snippet text",
			Metadata: domain.Metadata{
				Source:      "example.com",
				ContentType: domain.ContentTypeArticle,
			},
			Citation: domain.Citation{APA: "a", MLA: "m", Chicago: "c"},
			Engine:   "duckduckgo",
		}
	}

	return &domain.SearchResponse{
		Query:        query,
		Results:      results,
		TotalResults: len(results),
		SearchTimeMs: 12,
		EnginesUsed:  []string{"duckduckgo"},
	}
}

func (m *mockSearchService) Search(ctx context.Context, opts search.Options) (*domain.SearchResponse, error) {
	return m.respond(opts.Query), nil
}

func (m *mockSearchService) SearchStream(ctx context.Context, opts search.Options, onResult search.ResultFunc) (*domain.SearchResponse, error) {
	resp := m.respond(opts.Query)
	for _, r := range resp.Results {
		onResult(r)
	}
	return resp, nil
}

// LoadTestMetrics tracks performance metrics
type LoadTestMetrics struct {
	TotalRequests  int64
	SuccessfulReqs int64
	FailedReqs     int64
	TotalDuration  time.Duration
	MinLatency     time.Duration
	MaxLatency     time.Duration
	AvgLatency     time.Duration
	P95Latency     time.Duration
	P99Latency     time.Duration
	RequestsPerSec float64
}

func searchURL(base string, workerID, reqNum int) string {
	q := url.Values{}
	q.Set("q", fmt.Sprintf("load test query %d-%d", workerID, reqNum))
	return base + "/api/v1/search?" + q.Encode()
}

func TestSearchEndpoint_100ConcurrentRequests(t *testing.T) {
	// Setup
	apiInstance, router := api.NewAPI()
	searchService := &mockSearchService{delay: 10 * time.Millisecond}
	handler := handlers.NewSearchHandler(searchService)
	handler.RegisterRoutes(apiInstance)

	server := httptest.NewServer(router)
	defer server.Close()

	// Test configuration
	concurrency := 100
	requestsPerWorker := 10
	totalRequests := concurrency * requestsPerWorker

	// Metrics collection
	var (
		successCount int64
		failCount    int64
		latencies    []time.Duration
		mu           sync.Mutex
	)

	var wg sync.WaitGroup
	wg.Add(concurrency)

	startTime := time.Now()

	// Launch concurrent workers
	for i := 0; i < concurrency; i++ {
		go func(workerID int) {
			defer wg.Done()

			client := &http.Client{
				Timeout: 30 * time.Second,
			}

			for j := 0; j < requestsPerWorker; j++ {
				reqStart := time.Now()
				resp, err := client.Get(searchURL(server.URL, workerID, j))
				latency := time.Since(reqStart)

				mu.Lock()
				latencies = append(latencies, latency)
				mu.Unlock()

				if err != nil {
					atomic.AddInt64(&failCount, 1)
					continue
				}

				io.ReadAll(resp.Body)
				resp.Body.Close()

				if resp.StatusCode == http.StatusOK {
					atomic.AddInt64(&successCount, 1)
				} else {
					atomic.AddInt64(&failCount, 1)
				}
			}
		}(i)
	}

	wg.Wait()
	totalDuration := time.Since(startTime)

	// Calculate metrics
	metrics := calculateMetrics(latencies, totalDuration, totalRequests)
	metrics.SuccessfulReqs = successCount
	metrics.FailedReqs = failCount

	// Print results
	t.Logf("Load Test Results - 100 Concurrent Requests")
	t.Logf("==========================================")
	t.Logf("Total Requests: %d", metrics.TotalRequests)
	t.Logf("Successful: %d", metrics.SuccessfulReqs)
	t.Logf("Failed: %d", metrics.FailedReqs)
	t.Logf("Total Duration: %v", metrics.TotalDuration)
	t.Logf("Requests/sec: %.2f", metrics.RequestsPerSec)
	t.Logf("Min Latency: %v", metrics.MinLatency)
	t.Logf("Avg Latency: %v", metrics.AvgLatency)
	t.Logf("P95 Latency: %v", metrics.P95Latency)
	t.Logf("P99 Latency: %v", metrics.P99Latency)
	t.Logf("Max Latency: %v", metrics.MaxLatency)

	// Assertions
	if metrics.FailedReqs > 0 {
		t.Errorf("Had %d failed requests", metrics.FailedReqs)
	}

	if metrics.P95Latency > 1*time.Second {
		t.Errorf("P95 latency too high: %v", metrics.P95Latency)
	}
}

func TestSearchEndpoint_SustainedThroughput(t *testing.T) {
	// Setup
	apiInstance, router := api.NewAPI()
	searchService := &mockSearchService{delay: 5 * time.Millisecond}
	handler := handlers.NewSearchHandler(searchService)
	handler.RegisterRoutes(apiInstance)

	server := httptest.NewServer(router)
	defer server.Close()

	// Test configuration
	targetRPS := 500
	duration := 5 * time.Second

	// Metrics
	var (
		successCount int64
		failCount    int64
		latencies    []time.Duration
		mu           sync.Mutex
	)

	ticker := time.NewTicker(time.Second / time.Duration(targetRPS))
	defer ticker.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()

	startTime := time.Now()

	var requestCount int64

	client := &http.Client{
		Timeout: 5 * time.Second,
	}

	for {
		select {
		case <-ctx.Done():
			goto done
		case <-ticker.C:
			go func(reqNum int64) {
				reqStart := time.Now()
				resp, err := client.Get(searchURL(server.URL, 0, int(reqNum)))
				latency := time.Since(reqStart)

				mu.Lock()
				latencies = append(latencies, latency)
				mu.Unlock()

				if err != nil {
					atomic.AddInt64(&failCount, 1)
					return
				}

				io.ReadAll(resp.Body)
				resp.Body.Close()

				if resp.StatusCode == http.StatusOK {
					atomic.AddInt64(&successCount, 1)
				} else {
					atomic.AddInt64(&failCount, 1)
				}
			}(atomic.AddInt64(&requestCount, 1))
		}
	}

done:
	// Wait a bit for in-flight requests
	time.Sleep(1 * time.Second)

	totalDuration := time.Since(startTime)

	// Calculate metrics
	metrics := calculateMetrics(latencies, totalDuration, int(requestCount))
	metrics.SuccessfulReqs = successCount
	metrics.FailedReqs = failCount

	// Print results
	t.Logf("Load Test Results - Sustained Throughput")
	t.Logf("=======================================")
	t.Logf("Target RPS: %d", targetRPS)
	t.Logf("Actual RPS: %.2f", metrics.RequestsPerSec)
	t.Logf("Total Requests: %d", metrics.TotalRequests)
	t.Logf("Successful: %d", metrics.SuccessfulReqs)
	t.Logf("Failed: %d", metrics.FailedReqs)
	t.Logf("Success Rate: %.2f%%", float64(metrics.SuccessfulReqs)/float64(metrics.TotalRequests)*100)
	t.Logf("P95 Latency: %v", metrics.P95Latency)
	t.Logf("P99 Latency: %v", metrics.P99Latency)

	// Assertions
	successRate := float64(metrics.SuccessfulReqs) / float64(metrics.TotalRequests)
	if successRate < 0.95 {
		t.Errorf("Success rate too low: %.2f%%", successRate*100)
	}
}

// calculateMetrics computes performance metrics from latency data
func calculateMetrics(latencies []time.Duration, totalDuration time.Duration, totalRequests int) LoadTestMetrics {
	if len(latencies) == 0 {
		return LoadTestMetrics{}
	}

	// Sort latencies for percentile calculation
	sortedLatencies := make([]time.Duration, len(latencies))
	copy(sortedLatencies, latencies)

	// Simple bubble sort (fine for test data)
	for i := 0; i < len(sortedLatencies); i++ {
		for j := i + 1; j < len(sortedLatencies); j++ {
			if sortedLatencies[i] > sortedLatencies[j] {
				sortedLatencies[i], sortedLatencies[j] = sortedLatencies[j], sortedLatencies[i]
			}
		}
	}

	var sum time.Duration
	for _, l := range latencies {
		sum += l
	}

	p95Index := int(float64(len(sortedLatencies)) * 0.95)
	p99Index := int(float64(len(sortedLatencies)) * 0.99)
	if p95Index >= len(sortedLatencies) {
		p95Index = len(sortedLatencies) - 1
	}
	if p99Index >= len(sortedLatencies) {
		p99Index = len(sortedLatencies) - 1
	}

	return LoadTestMetrics{
		TotalRequests:  int64(totalRequests),
		TotalDuration:  totalDuration,
		MinLatency:     sortedLatencies[0],
		MaxLatency:     sortedLatencies[len(sortedLatencies)-1],
		AvgLatency:     sum / time.Duration(len(latencies)),
		P95Latency:     sortedLatencies[p95Index],
		P99Latency:     sortedLatencies[p99Index],
		RequestsPerSec: float64(totalRequests) / totalDuration.Seconds(),
	}
}
