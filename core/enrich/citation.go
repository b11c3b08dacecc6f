// ABOUTME: Citation formatting service for generating academic citations
// ABOUTME: Pure functions producing APA, MLA, and Chicago style strings

package enrich

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"searchlens-api/core/domain"
)

// unknownDate is rendered in place of the year when no date is known
const unknownDate = "n.d."

// authorSpecialCases maps well-known domains to their proper publisher names
var authorSpecialCases = map[string]string{
	"nytimes":       "The New York Times",
	"bbc":           "BBC",
	"github":        "GitHub",
	"stackoverflow": "Stack Overflow",
	"wikipedia":     "Wikipedia",
	"arxiv":         "arXiv",
	"pubmed":        "PubMed",
	"mozilla":       "MDN Web Docs",
}

var titleSuffixPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\s*-\s*[^-]+$`),
	regexp.MustCompile(`\s*\|\s*[^|]+$`),
}

// FormatCitations renders the three citation styles for one result.
// publishedDate is an ISO date or nil; a nil date renders as "n.d." in all
// three formats. Missing source falls back to the URL's domain.
func FormatCitations(title, rawURL, source string, publishedDate *string) domain.Citation {
	if source == "" || source == "unknown" {
		source = ExtractSource(rawURL)
	}

	title = cleanTitle(title)
	author := authorFromSource(source)
	year := citationYear(publishedDate)

	return domain.Citation{
		APA:     formatAPA(title, rawURL, source, author, publishedDate),
		MLA:     formatMLA(title, rawURL, source, author, year),
		Chicago: formatChicago(title, rawURL, source, author, year),
	}
}

// citationYear extracts the year portion of an ISO date, or "n.d."
func citationYear(publishedDate *string) string {
	if publishedDate == nil {
		return unknownDate
	}
	parts := strings.SplitN(*publishedDate, "-", 2)
	if parts[0] == "" {
		return unknownDate
	}
	return parts[0]
}

// cleanTitle strips trailing site-name suffixes and ensures terminal
// punctuation for citation use.
func cleanTitle(title string) string {
	title = strings.TrimSpace(title)
	for _, pattern := range titleSuffixPatterns {
		title = pattern.ReplaceAllString(title, "")
	}
	title = strings.TrimSpace(title)

	if title != "" && !strings.ContainsAny(title[len(title)-1:], ".!?") {
		title += "."
	}
	return title
}

// authorFromSource derives a publisher name from the source domain
func authorFromSource(source string) string {
	lower := strings.ToLower(source)
	for key, name := range authorSpecialCases {
		if strings.Contains(lower, key) {
			return name
		}
	}

	parts := strings.Split(source, ".")
	name := source
	if len(parts) > 1 {
		name = parts[len(parts)-2]
	}
	if name == "" {
		return source
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// formatAPA follows the APA 7th edition web format:
// Author. (Year, Month Day). Title. Source. URL
func formatAPA(title, rawURL, source, author string, publishedDate *string) string {
	dateStr := unknownDate
	if publishedDate != nil {
		dateStr = citationYear(publishedDate)
		if parsed, err := time.Parse("2006-01-02", *publishedDate); err == nil {
			dateStr = fmt.Sprintf("%s, %s", dateStr, parsed.Format("January 2"))
		}
	}

	return fmt.Sprintf("%s. (%s). %s %s. %s", author, dateStr, title, source, rawURL)
}

// formatMLA follows the MLA 9th edition web format:
// Author. "Title." Source, Year, URL.
func formatMLA(title, rawURL, source, author, year string) string {
	return fmt.Sprintf("%s. %s %s, %s, %s.", author, quoteTitle(title), source, year, rawURL)
}

// formatChicago follows the Chicago 17th edition web format:
// Author. "Title." Source. Year. URL.
func formatChicago(title, rawURL, source, author, year string) string {
	return fmt.Sprintf("%s. %s %s. %s. %s.", author, quoteTitle(title), source, year, rawURL)
}

// quoteTitle wraps a cleaned title in quotes, folding the trailing period
// inside the closing quote per both MLA and Chicago style
func quoteTitle(title string) string {
	if strings.HasPrefix(title, `"`) {
		return title
	}
	if strings.HasSuffix(title, ".") {
		return `"` + strings.TrimSuffix(title, ".") + `."`
	}
	return `"` + title + `"`
}
