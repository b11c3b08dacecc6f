// ABOUTME: Response DTOs for search endpoints
// ABOUTME: Defines the JSON wire format for enriched results

package responses

// MetadataResponse carries the derived metadata for one result.
// Pointer fields serialize as null when the value could not be derived,
// never as a fabricated default.
type MetadataResponse struct {
	PublishedDate      *string  `json:"published_date" doc:"ISO 8601 date (YYYY-MM-DD), null if unknown"`
	Source             string   `json:"source" doc:"Registrable domain of the result URL"`
	ContentType        string   `json:"content_type" enum:"article,documentation,forum,tutorial,video,pdf,other"`
	WordCount          *int     `json:"word_count" doc:"Approximate word count of the extracted body"`
	CredibilityScore   *float64 `json:"credibility_score" minimum:"0" maximum:"1" doc:"Heuristic credibility score, null when no signals exist"`
	Language           *string  `json:"language" doc:"ISO 639-1 language code, null if ambiguous"`
	ReadingTimeMinutes *int     `json:"reading_time_minutes" doc:"Estimated reading time at 225 wpm"`
	Keywords           []string `json:"keywords" doc:"Top weighted terms, at most ten"`
	IsDirectAnswer     bool     `json:"is_direct_answer" doc:"Whether the opening text appears to answer the query directly"`
}

// CitationResponse carries pre-formatted citation strings.
type CitationResponse struct {
	APA     string `json:"apa"`
	MLA     string `json:"mla"`
	Chicago string `json:"chicago"`
}

// SearchResultResponse is one enriched result on the wire.
type SearchResultResponse struct {
	Title     string           `json:"title"`
	URL       string           `json:"url"`
	Content   string           `json:"content" doc:"Extracted page text, or the snippet when extraction failed"`
	Snippet   string           `json:"snippet"`
	Metadata  MetadataResponse `json:"metadata"`
	Citations CitationResponse `json:"citations"`
	Engine    string           `json:"engine"`
	Summary   *string          `json:"summary" doc:"AI-generated summary, null unless requested and available"`
	Embedding []float32        `json:"embedding,omitempty" doc:"Embedding vector, present only when requested and available"`
}

// SearchResponse is the batch endpoint's response body.
type SearchResponse struct {
	Query        string                 `json:"query"`
	Results      []SearchResultResponse `json:"results"`
	TotalResults int                    `json:"total_results"`
	SearchTimeMs int64                  `json:"search_time_ms" doc:"Aggregator round-trip time in milliseconds"`
	EnginesUsed  []string               `json:"engines_used" doc:"Engines contributing at least one returned result"`
}

// HealthResponse is the health endpoint's response body.
type HealthResponse struct {
	Status           string `json:"status" enum:"ok,degraded"`
	SearXNGConnected bool   `json:"searxng_connected"`
	Version          string `json:"version"`
}
