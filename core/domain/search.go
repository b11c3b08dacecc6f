// ABOUTME: Search domain models for enriched meta-search results
// ABOUTME: Defines raw hits, enrichment output, and the response envelope

package domain

// RawHit represents a single unenriched result returned by the aggregator.
// Ordering of hits from the aggregator is the relevance rank and is preserved
// through the pipeline unless deduplication removes an entry.
type RawHit struct {
	// Title is the result title as reported by the search engine
	Title string

	// URL is the linked page
	URL string

	// Snippet is the engine-provided description, used as fallback content
	Snippet string

	// Engine identifies which backend engine produced the hit.
	// Treated as an open string enumeration, never a closed type.
	Engine string

	// PublishedDate is the aggregator-provided date string, if any
	PublishedDate string
}

// ExtractedContent is the outcome of fetching and cleaning a hit's page.
// Fetch failures are data, not errors: a failed fetch still yields a usable
// snippet-based result downstream.
type ExtractedContent struct {
	// BodyText is the cleaned main-body text, length-capped
	BodyText string `json:"body_text"`

	// Title is the page title found during extraction, if any
	Title string `json:"title"`

	// FetchSucceeded reports whether the page was retrieved and parsed
	FetchSucceeded bool `json:"fetch_succeeded"`

	// FetchError holds the failure reason when FetchSucceeded is false
	FetchError string `json:"fetch_error,omitempty"`

	// MetaPublishedDate is a raw date string found in structured markup
	// (meta tags, time elements, JSON-LD), if any
	MetaPublishedDate string `json:"meta_published_date,omitempty"`

	// HasAuthorMeta reports whether author metadata was present
	HasAuthorMeta bool `json:"has_author_meta,omitempty"`

	// HasVideoEmbed reports whether the page embeds a video player
	HasVideoEmbed bool `json:"has_video_embed,omitempty"`
}

// Metadata holds the derived per-result metadata fields.
type Metadata struct {
	// PublishedDate is an ISO 8601 date (YYYY-MM-DD), nil if unknown
	PublishedDate *string

	// Source is the registrable domain of the result URL
	Source string

	// ContentType is one of the ContentType* constants
	ContentType string

	// WordCount is the approximate word count of the body, nil if no body
	WordCount *int

	// CredibilityScore is in [0,1], nil when no signals exist
	CredibilityScore *float64

	// Language is an ISO 639-1 code, nil if ambiguous
	Language *string

	// ReadingTimeMinutes is ceil(WordCount/225), nil iff WordCount is nil
	ReadingTimeMinutes *int

	// Keywords are the top weighted terms, at most ten
	Keywords []string

	// IsDirectAnswer flags results whose opening text overlaps the query.
	// Best-effort heuristic, not guaranteed correct.
	IsDirectAnswer bool
}

// Content type enumeration for Metadata.ContentType.
const (
	ContentTypeArticle       = "article"
	ContentTypeDocumentation = "documentation"
	ContentTypeForum         = "forum"
	ContentTypeTutorial      = "tutorial"
	ContentTypeVideo         = "video"
	ContentTypePDF           = "pdf"
	ContentTypeOther         = "other"
)

// Citation holds pre-formatted citation strings. Fields are never empty;
// an unknown date renders as "n.d." in all three formats.
type Citation struct {
	APA     string
	MLA     string
	Chicago string
}

// EnrichedResult is one fully processed search result.
// Created once per RawHit per request and immutable after the pipeline
// stage that filled it; nothing is persisted across requests.
type EnrichedResult struct {
	Title    string
	URL      string
	Content  string
	Snippet  string
	Metadata Metadata
	Citation Citation
	Engine   string

	// Summary is the AI-generated summary, nil unless requested and successful
	Summary *string

	// Embedding is the fixed-length vector, nil unless requested and successful
	Embedding []float32

	// Degraded marks results built from fallback (snippet) content after a
	// fetch or extraction failure. Internal quality flag, not an error state.
	Degraded bool
}

// SearchResponse is the batch-mode response envelope.
// Invariant: TotalResults == len(Results), and Results preserves the
// aggregator rank order among survivors.
type SearchResponse struct {
	Query        string
	Results      []EnrichedResult
	TotalResults int
	SearchTimeMs int64
	EnginesUsed  []string
}
