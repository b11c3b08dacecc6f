// ABOUTME: Request parameter structures for search endpoints
// ABOUTME: Shared between the batch and streaming handlers

package requests

import (
	"net/url"
	"strconv"
)

// SearchParams are the query parameters accepted by both search endpoints.
// Field tags drive huma's parsing and OpenAPI docs for the batch endpoint;
// the streaming endpoint parses the same parameters by hand.
type SearchParams struct {
	Query      string `query:"q" required:"true" maxLength:"500" doc:"Search query"`
	Limit      int    `query:"limit,omitempty" minimum:"1" doc:"Number of results to return (default from server config)"`
	Engines    string `query:"engines,omitempty" doc:"Comma-separated engine filter passed to the aggregator"`
	Language   string `query:"language,omitempty" doc:"Search language code (default en)"`
	Summarize  bool   `query:"summarize,omitempty" doc:"Generate an AI summary per result"`
	Embeddings bool   `query:"embeddings,omitempty" doc:"Generate an embedding vector per result"`
	Dedup      bool   `query:"dedup,omitempty" doc:"Remove near-duplicate results (requires embeddings)"`
}

// ApplyDefaults fills unset parameters with their documented defaults.
func (p *SearchParams) ApplyDefaults() {
	if p.Language == "" {
		p.Language = "en"
	}
}

// ParamsFromQuery parses SearchParams from a raw URL query string.
// Used by the streaming endpoint, which bypasses huma.
func ParamsFromQuery(values url.Values) SearchParams {
	params := SearchParams{
		Query:      values.Get("q"),
		Engines:    values.Get("engines"),
		Language:   values.Get("language"),
		Summarize:  parseBool(values.Get("summarize")),
		Embeddings: parseBool(values.Get("embeddings")),
		Dedup:      parseBool(values.Get("dedup")),
	}
	if limit, err := strconv.Atoi(values.Get("limit")); err == nil {
		params.Limit = limit
	}
	params.ApplyDefaults()
	return params
}

func parseBool(value string) bool {
	parsed, err := strconv.ParseBool(value)
	return err == nil && parsed
}
