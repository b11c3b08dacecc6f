// ABOUTME: SearXNG aggregator client for querying the meta-search backend
// ABOUTME: Translates SearXNG JSON responses into ranked raw hits

package searxng

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"searchlens-api/core/domain"
	coreerrors "searchlens-api/core/errors"
	"searchlens-api/core/interfaces"
)

// Client queries a SearXNG instance over its JSON API
type Client struct {
	baseURL    string
	httpClient interfaces.HTTPClient
	logger     interfaces.Logger
}

// NewClient creates a new SearXNG client
func NewClient(baseURL string, httpClient interfaces.HTTPClient, logger interfaces.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// searxngResponse mirrors the fields we consume from SearXNG's JSON output
type searxngResponse struct {
	Results []struct {
		Title         string `json:"title"`
		URL           string `json:"url"`
		Content       string `json:"content"`
		Engine        string `json:"engine"`
		PublishedDate string `json:"publishedDate"`
	} `json:"results"`
}

// Search runs one query and returns ranked raw hits truncated to limit
func (c *Client) Search(ctx context.Context, query string, limit int, engines, language string) (*interfaces.AggregatorResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	if language != "" {
		params.Set("language", language)
	}
	if engines != "" {
		params.Set("engines", engines)
	}

	searchURL := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())

	start := time.Now()
	resp, err := c.httpClient.Get(ctx, searchURL)
	if err != nil {
		return nil, &coreerrors.ExternalAPIError{
			API:     "searxng",
			Message: err.Error(),
		}
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &coreerrors.ExternalAPIError{
			API:        "searxng",
			StatusCode: resp.StatusCode(),
			Message:    "search request failed",
		}
	}

	bodyBytes, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to read searxng response")
	}

	var parsed searxngResponse
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		return nil, coreerrors.WrapError(err, "failed to parse searxng response")
	}

	searchTime := time.Since(start).Milliseconds()

	hits := make([]domain.RawHit, 0, limit)
	for _, r := range parsed.Results {
		if len(hits) >= limit {
			break
		}
		engine := r.Engine
		if engine == "" {
			engine = "unknown"
		}
		hits = append(hits, domain.RawHit{
			Title:         r.Title,
			URL:           r.URL,
			Snippet:       r.Content,
			Engine:        engine,
			PublishedDate: r.PublishedDate,
		})
	}

	c.logger.Debug("searxng search complete", map[string]interface{}{
		"query":          query,
		"hits":           len(hits),
		"search_time_ms": searchTime,
	})

	return &interfaces.AggregatorResult{
		Hits:         hits,
		SearchTimeMs: searchTime,
	}, nil
}

// HealthCheck reports whether the SearXNG instance is reachable.
// Tries /healthz first, then the root path.
func (c *Client) HealthCheck(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	for _, path := range []string{"/healthz", "/"} {
		resp, err := c.httpClient.Get(ctx, c.baseURL+path)
		if err != nil {
			continue
		}
		code := resp.StatusCode()
		resp.Body().Close()
		if code == 200 {
			return true
		}
	}
	return false
}
