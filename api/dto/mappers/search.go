// ABOUTME: Mappers converting search domain models to response DTOs
// ABOUTME: Keeps wire-format concerns out of the core packages

package mappers

import (
	"searchlens-api/api/dto/responses"
	"searchlens-api/core/domain"
)

// ToSearchResultResponse converts one enriched result to its wire form.
func ToSearchResultResponse(result domain.EnrichedResult) responses.SearchResultResponse {
	keywords := result.Metadata.Keywords
	if keywords == nil {
		keywords = []string{}
	}

	return responses.SearchResultResponse{
		Title:   result.Title,
		URL:     result.URL,
		Content: result.Content,
		Snippet: result.Snippet,
		Metadata: responses.MetadataResponse{
			PublishedDate:      result.Metadata.PublishedDate,
			Source:             result.Metadata.Source,
			ContentType:        result.Metadata.ContentType,
			WordCount:          result.Metadata.WordCount,
			CredibilityScore:   result.Metadata.CredibilityScore,
			Language:           result.Metadata.Language,
			ReadingTimeMinutes: result.Metadata.ReadingTimeMinutes,
			Keywords:           keywords,
			IsDirectAnswer:     result.Metadata.IsDirectAnswer,
		},
		Citations: responses.CitationResponse{
			APA:     result.Citation.APA,
			MLA:     result.Citation.MLA,
			Chicago: result.Citation.Chicago,
		},
		Engine:    result.Engine,
		Summary:   result.Summary,
		Embedding: result.Embedding,
	}
}

// ToSearchResponse converts the batch response envelope to its wire form.
func ToSearchResponse(response *domain.SearchResponse) responses.SearchResponse {
	results := make([]responses.SearchResultResponse, 0, len(response.Results))
	for _, result := range response.Results {
		results = append(results, ToSearchResultResponse(result))
	}

	return responses.SearchResponse{
		Query:        response.Query,
		Results:      results,
		TotalResults: response.TotalResults,
		SearchTimeMs: response.SearchTimeMs,
		EnginesUsed:  response.EnginesUsed,
	}
}
