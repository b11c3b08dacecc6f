// ABOUTME: Content extraction service for fetching and cleaning linked pages
// ABOUTME: Uses go-readability with a goquery fallback for malformed markup

package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"searchlens-api/core/domain"
	"searchlens-api/core/interfaces"
	"searchlens-api/pkg/textutil"
)

const (
	// maxBodySize caps fetched page bodies at 5MB
	maxBodySize = 5 * 1024 * 1024

	cacheTTL = 1 * time.Hour
)

var multiBlank = regexp.MustCompile(`\n{3,}`)

// Service fetches pages and extracts clean main-body text.
// Fetch and parse failures never surface as errors; they are recorded on
// the returned ExtractedContent so a snippet-based result can still be built.
type Service struct {
	deps         interfaces.Dependencies
	fetchTimeout time.Duration
	maxLength    int
	converter    *md.Converter
}

// NewService creates a content extraction service.
// fetchTimeout is the hard per-URL time budget; maxLength caps body text.
func NewService(deps interfaces.Dependencies, fetchTimeout time.Duration, maxLength int) *Service {
	return &Service{
		deps:         deps,
		fetchTimeout: fetchTimeout,
		maxLength:    maxLength,
		converter:    md.NewConverter("", true, nil),
	}
}

// ExtractFromURL fetches a page within the per-URL time budget and extracts
// its main content. Deterministic given identical page bytes.
func (s *Service) ExtractFromURL(ctx context.Context, pageURL string) domain.ExtractedContent {
	// Check cache first
	cacheKey := "extract:" + pageURL
	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var cached domain.ExtractedContent
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached
			}
		}
	}

	content := s.fetchAndExtract(ctx, pageURL)

	if s.deps.Cache != nil && content.FetchSucceeded {
		if data, err := json.Marshal(content); err == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, cacheTTL)
		}
	}

	return content
}

func (s *Service) fetchAndExtract(ctx context.Context, pageURL string) domain.ExtractedContent {
	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	resp, err := s.deps.HTTPClient.Get(fetchCtx, pageURL)
	if err != nil {
		return failed(fmt.Sprintf("fetch failed: %v", err))
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return failed(fmt.Sprintf("fetch returned status %d", resp.StatusCode()))
	}

	contentType := resp.Header("Content-Type")
	if contentType != "" && !strings.Contains(contentType, "text/html") {
		return failed(fmt.Sprintf("unsupported content type %q", contentType))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body(), maxBodySize))
	if err != nil {
		return failed(fmt.Sprintf("read failed: %v", err))
	}

	return s.ExtractFromHTML(body, pageURL)
}

// ExtractFromHTML extracts clean text from raw page bytes. Readability
// identifies the main content block; malformed markup falls back to a
// naive tag strip rather than failing.
func (s *Service) ExtractFromHTML(raw []byte, pageURL string) domain.ExtractedContent {
	parsedURL, _ := url.Parse(pageURL)

	var content domain.ExtractedContent
	article, err := readability.FromReader(bytes.NewReader(raw), parsedURL)
	if err != nil || strings.TrimSpace(article.TextContent) == "" {
		if s.deps.Logger != nil && err != nil {
			s.deps.Logger.Debug("readability failed, using fallback extraction", map[string]interface{}{
				"url":   pageURL,
				"error": err.Error(),
			})
		}
		content = s.basicExtraction(raw)
	} else {
		text := article.TextContent
		if markdown, convErr := s.converter.ConvertString(article.Content); convErr == nil && strings.TrimSpace(markdown) != "" {
			text = markdown
		}
		content = domain.ExtractedContent{
			BodyText:       s.truncate(cleanText(text)),
			Title:          strings.TrimSpace(article.Title),
			FetchSucceeded: true,
		}
	}

	if content.FetchSucceeded {
		collectSignals(raw, &content)
	}
	return content
}

// collectSignals scans structured markup for a publication date, author
// metadata, and video embeds. Failures leave the signals zeroed.
func collectSignals(raw []byte, content *domain.ExtractedContent) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return
	}

	dateSelectors := []struct{ selector, attr string }{
		{"meta[property='article:published_time']", "content"},
		{"meta[name='date']", "content"},
		{"meta[name='publish-date']", "content"},
		{"meta[itemprop='datePublished']", "content"},
		{"time[datetime]", "datetime"},
	}
	for _, ds := range dateSelectors {
		if val, ok := doc.Find(ds.selector).First().Attr(ds.attr); ok && strings.TrimSpace(val) != "" {
			content.MetaPublishedDate = strings.TrimSpace(val)
			break
		}
	}
	if content.MetaPublishedDate == "" {
		// JSON-LD datePublished
		doc.Find("script[type='application/ld+json']").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			var ld map[string]interface{}
			if err := json.Unmarshal([]byte(sel.Text()), &ld); err == nil {
				if date, ok := ld["datePublished"].(string); ok && date != "" {
					content.MetaPublishedDate = date
					return false
				}
			}
			return true
		})
	}

	if doc.Find("meta[name='author'], meta[property='article:author'], [rel='author']").Length() > 0 {
		content.HasAuthorMeta = true
	}

	doc.Find("video, iframe[src]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if goquery.NodeName(sel) == "video" {
			content.HasVideoEmbed = true
			return false
		}
		src, _ := sel.Attr("src")
		src = strings.ToLower(src)
		if strings.Contains(src, "youtube.com/embed") || strings.Contains(src, "player.vimeo.com") {
			content.HasVideoEmbed = true
			return false
		}
		return true
	})
}

// basicExtraction strips script/style/nav/header/footer and collapses the
// remaining text. Used when readability cannot parse the document.
func (s *Service) basicExtraction(raw []byte) domain.ExtractedContent {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return failed(fmt.Sprintf("parse failed: %v", err))
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	doc.Find("script, style, nav, header, footer, aside, noscript").Remove()

	var parts []string
	doc.Find("body").Each(func(_ int, sel *goquery.Selection) {
		parts = append(parts, sel.Text())
	})
	if len(parts) == 0 {
		parts = append(parts, doc.Text())
	}

	text := cleanText(strings.Join(parts, "\n"))
	if text == "" {
		return failed("no extractable text")
	}

	return domain.ExtractedContent{
		BodyText:       s.truncate(text),
		Title:          title,
		FetchSucceeded: true,
	}
}

func (s *Service) truncate(body string) string {
	if s.maxLength > 0 && len(body) > s.maxLength {
		return textutil.Truncate(body, s.maxLength) + "..."
	}
	return body
}

// cleanText collapses whitespace: trims each line, keeps paragraph breaks,
// and limits consecutive blank lines to one
func cleanText(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, strings.Join(strings.Fields(line), " "))
	}

	return strings.TrimSpace(multiBlank.ReplaceAllString(strings.Join(cleaned, "\n"), "\n\n"))
}

func failed(reason string) domain.ExtractedContent {
	return domain.ExtractedContent{
		FetchSucceeded: false,
		FetchError:     reason,
	}
}
