// ABOUTME: Metadata enrichment service deriving structured metadata per result
// ABOUTME: Each sub-derivation is independent and tolerant of missing input

package enrich

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"searchlens-api/core/domain"
	"searchlens-api/core/interfaces"
)

const (
	// wordsPerMinute is the fixed reading speed for reading time estimates
	wordsPerMinute = 225

	// maxKeywords caps the keyword list per result
	maxKeywords = 10

	// titleWeight is how much more a title term counts than a body term
	titleWeight = 3

	// directAnswerThreshold is the query-term overlap share above which a
	// result's opening text is flagged as a direct answer
	directAnswerThreshold = 0.6
)

// credibilityScores maps known high-quality domains to fixed scores.
var credibilityScores = map[string]float64{
	// Academic & research
	"arxiv.org":             0.95,
	"scholar.google.com":    0.95,
	"pubmed.ncbi.nlm.nih.gov": 0.95,
	"semanticscholar.org":   0.9,
	"jstor.org":             0.9,
	"researchgate.net":      0.85,
	// Documentation & official
	"github.com":            0.9,
	"stackoverflow.com":     0.85,
	"developer.mozilla.org": 0.95,
	"docs.python.org":       0.95,
	"docs.microsoft.com":    0.9,
	"go.dev":                0.95,
	// News & media
	"reuters.com":     0.9,
	"apnews.com":      0.9,
	"bbc.com":         0.85,
	"nytimes.com":     0.85,
	"theguardian.com": 0.85,
	// Reference
	"wikipedia.org":  0.8,
	"britannica.com": 0.85,
	// Tech & industry
	"techcrunch.com":  0.75,
	"arstechnica.com": 0.8,
	"wired.com":       0.75,
}

var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "that": {}, "with": {}, "this": {},
	"from": {}, "are": {}, "was": {}, "but": {}, "not": {}, "you": {},
	"all": {}, "can": {}, "her": {}, "has": {}, "had": {}, "our": {},
	"out": {}, "one": {}, "two": {}, "more": {}, "than": {}, "been": {},
	"have": {}, "will": {}, "what": {}, "when": {}, "who": {}, "which": {},
	"their": {}, "said": {}, "each": {}, "about": {}, "how": {}, "other": {},
	"into": {}, "after": {}, "also": {}, "some": {}, "these": {}, "only": {},
	"then": {}, "now": {}, "may": {}, "such": {}, "very": {}, "over": {},
	"just": {}, "where": {}, "most": {}, "both": {}, "through": {}, "way": {},
	"could": {}, "before": {}, "does": {},
}

// languageIndicators holds common-word lists for the supported languages.
var languageIndicators = map[string][]string{
	"en": {"the", "and", "for", "that", "with", "this", "from", "are", "was"},
	"es": {"el", "la", "que", "los", "del", "para", "con", "una", "por"},
	"fr": {"le", "les", "des", "dans", "pour", "est", "une", "sur", "par"},
	"de": {"der", "die", "das", "und", "den", "ist", "für", "von", "mit"},
}

var (
	wordPattern = regexp.MustCompile(`\b[a-z]{3,}\b`)

	urlDatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`/(\d{4})/(\d{2})/(\d{2})/`),
		regexp.MustCompile(`/(\d{4})-(\d{2})-(\d{2})`),
		regexp.MustCompile(`[?&]date=(\d{4}-\d{2}-\d{2})`),
	}

	textDatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
		regexp.MustCompile(`(?i)\b(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]* \d{1,2},? \d{4}\b`),
		regexp.MustCompile(`(?i)\b\d{1,2} (Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]* \d{4}\b`),
		regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{4}\b`),
	}

	stepPattern = regexp.MustCompile(`(?i)\bstep\s+[1-9]\b`)

	binaryExtensions = []string{".zip", ".tar", ".gz", ".exe", ".dmg", ".iso", ".bin"}
)

// Enricher derives metadata for enriched results.
// All derivations are pure functions over the hit, the extracted content,
// and the final body text; none of them can fail the request.
type Enricher struct {
	logger interfaces.Logger
}

// NewEnricher creates a metadata enricher
func NewEnricher(logger interfaces.Logger) *Enricher {
	return &Enricher{logger: logger}
}

// Enrich derives all metadata fields for one result.
// bodyText is the content the result will carry (extracted text, or the
// snippet when extraction failed); query is the original search query.
func (e *Enricher) Enrich(hit domain.RawHit, extracted domain.ExtractedContent, bodyText, query string) domain.Metadata {
	wordCount := countWords(bodyText)

	return domain.Metadata{
		PublishedDate:      e.extractDate(hit, extracted, bodyText),
		Source:             ExtractSource(hit.URL),
		ContentType:        detectContentType(hit.URL, extracted, bodyText),
		WordCount:          wordCount,
		CredibilityScore:   calculateCredibility(hit.URL, extracted, bodyText),
		Language:           detectLanguage(bodyText),
		ReadingTimeMinutes: readingTime(wordCount),
		Keywords:           extractKeywords(hit.Title, bodyText),
		IsDirectAnswer:     isDirectAnswer(query, bodyText),
	}
}

// extractDate finds a publication date, checking the aggregator-provided
// date, structured markup, URL patterns, then free-text patterns in order.
// Returns nil if nothing parses with sufficient confidence.
func (e *Enricher) extractDate(hit domain.RawHit, extracted domain.ExtractedContent, bodyText string) *string {
	if date := parseDateString(hit.PublishedDate); date != nil {
		return date
	}

	if date := parseDateString(extracted.MetaPublishedDate); date != nil {
		return date
	}

	for _, pattern := range urlDatePatterns {
		match := pattern.FindStringSubmatch(hit.URL)
		if match == nil {
			continue
		}
		var candidate string
		if len(match) == 4 {
			candidate = fmt.Sprintf("%s-%s-%s", match[1], match[2], match[3])
		} else {
			candidate = match[1]
		}
		if date := parseDateString(candidate); date != nil {
			return date
		}
	}

	freeText := hit.Title + " " + hit.Snippet + " " + firstN(bodyText, 2000)
	for _, pattern := range textDatePatterns {
		if match := pattern.FindString(freeText); match != "" {
			if date := parseDateString(match); date != nil {
				return date
			}
		}
	}

	return nil
}

// parseDateString parses an arbitrary date string to an ISO date, rejecting
// implausible years.
func parseDateString(raw string) *string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parsed, err := dateparse.ParseAny(raw)
	if err != nil {
		return nil
	}
	if parsed.Year() < 1990 || parsed.Year() > time.Now().Year()+1 {
		return nil
	}

	date := parsed.Format("2006-01-02")
	return &date
}

// ExtractSource returns the source domain of a URL with any www. prefix
// removed, or "unknown" when the URL does not parse.
func ExtractSource(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return "unknown"
	}

	return strings.TrimPrefix(strings.ToLower(parsed.Host), "www.")
}

// detectContentType classifies a result into the closed content type
// enumeration from URL path segments, markup signals, and content shape.
func detectContentType(rawURL string, extracted domain.ExtractedContent, bodyText string) string {
	urlLower := strings.ToLower(rawURL)
	source := ExtractSource(rawURL)

	if strings.HasSuffix(urlPath(urlLower), ".pdf") {
		return domain.ContentTypePDF
	}
	for _, ext := range binaryExtensions {
		if strings.HasSuffix(urlPath(urlLower), ext) {
			return domain.ContentTypeOther
		}
	}

	if extracted.HasVideoEmbed ||
		strings.Contains(urlLower, "/watch") || strings.Contains(urlLower, "/video") ||
		source == "youtube.com" || source == "youtu.be" || source == "vimeo.com" {
		return domain.ContentTypeVideo
	}

	if containsAnySegment(urlLower, "docs", "documentation", "reference", "api", "manual") ||
		strings.HasPrefix(source, "docs.") || source == "developer.mozilla.org" {
		return domain.ContentTypeDocumentation
	}

	if containsAnySegment(urlLower, "forum", "discussion", "thread", "questions") ||
		source == "stackoverflow.com" || source == "reddit.com" {
		return domain.ContentTypeForum
	}

	if containsAnySegment(urlLower, "tutorial", "how-to", "guide", "learn") ||
		stepPattern.MatchString(firstN(bodyText, 3000)) {
		return domain.ContentTypeTutorial
	}

	return domain.ContentTypeArticle
}

func urlPath(rawURL string) string {
	if parsed, err := url.Parse(rawURL); err == nil {
		return parsed.Path
	}
	return rawURL
}

func containsAnySegment(urlLower string, segments ...string) bool {
	for _, seg := range segments {
		if strings.Contains(urlLower, "/"+seg+"/") || strings.HasSuffix(urlLower, "/"+seg) {
			return true
		}
	}
	return false
}

// countWords returns the whitespace-separated word count, nil for empty text
func countWords(text string) *int {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	count := len(strings.Fields(text))
	return &count
}

// calculateCredibility scores source trustworthiness in [0,1].
// Known domains use the reputation table; otherwise a weighted heuristic
// over URL and metadata signals applies. Returns nil when the domain is
// unknown and no signals are present.
func calculateCredibility(rawURL string, extracted domain.ExtractedContent, bodyText string) *float64 {
	source := ExtractSource(rawURL)

	if score, ok := credibilityScores[source]; ok {
		return &score
	}
	// Subdomains inherit the registrable domain's score
	for dom, score := range credibilityScores {
		if strings.HasSuffix(source, "."+dom) {
			s := score
			return &s
		}
	}

	https := strings.HasPrefix(strings.ToLower(rawURL), "https://")
	hasSignals := https || extracted.HasAuthorMeta || extracted.MetaPublishedDate != "" || len(bodyText) > 0
	if source == "unknown" || !hasSignals {
		return nil
	}

	score := 0.5
	if https {
		score += 0.1
	}
	switch {
	case strings.HasSuffix(source, ".edu"):
		score += 0.2
	case strings.HasSuffix(source, ".gov"):
		score += 0.25
	case strings.HasSuffix(source, ".org"):
		score += 0.1
	}
	if extracted.HasAuthorMeta {
		score += 0.05
	}
	if extracted.MetaPublishedDate != "" {
		score += 0.05
	}
	if len(bodyText) > 2000 {
		score += 0.05
	}
	for _, pattern := range []string{"blog", "forum", "wiki"} {
		if strings.Contains(source, pattern) {
			score -= 0.1
			break
		}
	}

	score = clamp01(score)
	return &score
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// detectLanguage votes over common-word occurrences for the supported
// languages (en/es/fr/de). Returns nil when the text is too short or no
// language wins clearly.
func detectLanguage(text string) *string {
	if len(text) < 20 {
		return nil
	}

	padded := " " + strings.ToLower(text) + " "

	best, bestCount, secondCount := "", 0, 0
	for _, lang := range []string{"en", "es", "fr", "de"} {
		count := 0
		for _, word := range languageIndicators[lang] {
			if strings.Contains(padded, " "+word+" ") {
				count++
			}
		}
		if count > bestCount {
			best, secondCount, bestCount = lang, bestCount, count
		} else if count > secondCount {
			secondCount = count
		}
	}

	// Ambiguous: no language has at least two indicators and a clear lead
	if bestCount < 2 || bestCount == secondCount {
		return nil
	}
	return &best
}

// readingTime is ceil(wordCount/225) minutes, nil iff wordCount is nil
func readingTime(wordCount *int) *int {
	if wordCount == nil {
		return nil
	}

	minutes := (*wordCount + wordsPerMinute - 1) / wordsPerMinute
	return &minutes
}

type keywordStat struct {
	word   string
	weight int
	first  int
}

// extractKeywords returns the top terms from title and body, title terms
// weighted 3x, stop words excluded, ties broken by first occurrence order.
func extractKeywords(title, body string) []string {
	stats := make(map[string]*keywordStat)
	position := 0

	add := func(text string, weight int) {
		for _, word := range wordPattern.FindAllString(strings.ToLower(text), -1) {
			if _, stop := stopWords[word]; stop {
				continue
			}
			stat, ok := stats[word]
			if !ok {
				stat = &keywordStat{word: word, first: position}
				stats[word] = stat
			}
			stat.weight += weight
			position++
		}
	}

	add(title, titleWeight)
	add(body, 1)

	if len(stats) == 0 {
		return nil
	}

	ordered := make([]*keywordStat, 0, len(stats))
	for _, stat := range stats {
		ordered = append(ordered, stat)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].weight != ordered[j].weight {
			return ordered[i].weight > ordered[j].weight
		}
		return ordered[i].first < ordered[j].first
	})

	if len(ordered) > maxKeywords {
		ordered = ordered[:maxKeywords]
	}
	keywords := make([]string, len(ordered))
	for i, stat := range ordered {
		keywords[i] = stat.word
	}
	return keywords
}

// isDirectAnswer reports whether the opening sentences of the body overlap
// the query terms above the fixed threshold. Best-effort heuristic.
func isDirectAnswer(query, body string) bool {
	queryTerms := wordPattern.FindAllString(strings.ToLower(query), -1)
	terms := make([]string, 0, len(queryTerms))
	for _, term := range queryTerms {
		if _, stop := stopWords[term]; !stop {
			terms = append(terms, term)
		}
	}
	if len(terms) == 0 {
		return false
	}

	opening := strings.ToLower(openingSentences(body, 2))
	if opening == "" {
		return false
	}

	matched := 0
	for _, term := range terms {
		if strings.Contains(opening, term) {
			matched++
		}
	}

	return float64(matched)/float64(len(terms)) >= directAnswerThreshold
}

// openingSentences returns up to n leading sentences, capped at 400 chars
func openingSentences(text string, n int) string {
	text = firstN(strings.TrimSpace(text), 400)

	count := 0
	for i, r := range text {
		if r == '.' || r == '!' || r == '?' {
			count++
			if count >= n {
				return text[:i+1]
			}
		}
	}
	return text
}

func firstN(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
