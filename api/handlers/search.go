// ABOUTME: Search handler for the Huma API
// ABOUTME: Provides the batch enriched-search endpoint

package handlers

import (
	"context"
	"net/http"

	"searchlens-api/api/dto/mappers"
	"searchlens-api/api/dto/requests"
	"searchlens-api/api/dto/responses"
	"searchlens-api/core/domain"
	"searchlens-api/core/search"
	"github.com/danielgtaylor/huma/v2"
)

// SearchService defines the methods needed from the search pipeline
type SearchService interface {
	Search(ctx context.Context, opts search.Options) (*domain.SearchResponse, error)
	SearchStream(ctx context.Context, opts search.Options, onResult search.ResultFunc) (*domain.SearchResponse, error)
}

// SearchHandler handles search-related HTTP requests
type SearchHandler struct {
	searchService SearchService
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// RegisterRoutes registers the batch search route
func (h *SearchHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "search",
		Method:      http.MethodGet,
		Path:        "/api/v1/search",
		Summary:     "Run an enriched meta-search",
		Description: "Queries the search aggregator, fetches and extracts every linked page, and returns results enriched with metadata, citations, and optional AI summaries and embeddings",
		Tags:        []string{"Search"},
	}, h.Search)
}

// SearchInput defines the input for the Search operation
type SearchInput struct {
	requests.SearchParams
}

// SearchOutput defines the output for the Search operation
type SearchOutput struct {
	Body responses.SearchResponse
}

// Search handles the GET /api/v1/search endpoint
func (h *SearchHandler) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	input.ApplyDefaults()

	response, err := h.searchService.Search(ctx, toOptions(input.SearchParams))
	if err != nil {
		return nil, toHumaError(err)
	}

	return &SearchOutput{Body: mappers.ToSearchResponse(response)}, nil
}

func toOptions(params requests.SearchParams) search.Options {
	return search.Options{
		Query:      params.Query,
		Limit:      params.Limit,
		Engines:    params.Engines,
		Language:   params.Language,
		Summarize:  params.Summarize,
		Embeddings: params.Embeddings,
		Dedup:      params.Dedup,
	}
}
