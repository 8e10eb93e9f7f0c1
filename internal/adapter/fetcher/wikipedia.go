package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"wikiquiz/internal/config"
	"wikiquiz/internal/domain"
	"wikiquiz/internal/logger"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// citationPattern matches inline reference markers such as [1], [23].
var citationPattern = regexp.MustCompile(`\[\d+\]`)

// stopSections are the trailing boilerplate sections of a Wikipedia article.
// Extraction stops at the first heading with one of these titles.
var stopSections = map[string]bool{
	"See also":        true,
	"References":      true,
	"External links":  true,
	"Notes":           true,
	"Further reading": true,
}

// summaryWordLimit bounds the lead summary kept alongside the full text.
const summaryWordLimit = 200

// WikipediaFetcher implements domain.ArticleFetcher for Wikipedia article
// pages. It issues a single GET per call and extracts the readable
// paragraph text from the main content container.
type WikipediaFetcher struct {
	client *http.Client
	cfg    config.FetcherConfig
}

// NewWikipediaFetcher creates a fetcher with the configured request timeout.
func NewWikipediaFetcher(cfg config.FetcherConfig) domain.ArticleFetcher {
	return &WikipediaFetcher{
		client: &http.Client{Timeout: cfg.Timeout},
		cfg:    cfg,
	}
}

// Fetch implements domain.ArticleFetcher
func (f *WikipediaFetcher) Fetch(ctx context.Context, url string) (*domain.Article, error) {
	log := logger.Get()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("invalid article URL: %s", url))
	}
	req.Header.Set("User-Agent", "wikiquiz/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		log.Warn("Article fetch failed", zap.String("url", url), zap.Error(err))
		return nil, domain.NewFetchError(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warn("Article fetch returned non-success status",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode),
		)
		return nil, domain.NewFetchError(url, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, domain.NewFetchError(url, fmt.Errorf("failed to parse response body: %w", err))
	}

	article, err := f.extract(doc)
	if err != nil {
		return nil, err
	}
	article.URL = url

	log.Info("Article fetched",
		zap.String("url", url),
		zap.String("title", article.Title),
		zap.Int("text_length", len(article.Text)),
		zap.Int("sections", len(article.Sections)),
	)
	return article, nil
}

// extract walks the parsed page and collects title, lead summary, section
// headings and the concatenated paragraph text, with citation markers and
// boilerplate stripped.
func (f *WikipediaFetcher) extract(doc *goquery.Document) (*domain.Article, error) {
	title := strings.TrimSpace(doc.Find("h1#firstHeading").First().Text())
	if title == "" {
		title = "Unknown Article Title"
	}

	content := doc.Find("div#mw-content-text").First()
	if content.Length() == 0 {
		return nil, domain.NewExtractionError("no content container found in page")
	}

	var (
		paragraphs []string
		sections   []string
	)

	root := content.Find(".mw-parser-output").First()
	if root.Length() == 0 {
		root = content
	}

	root.Children().EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if s.Is("h2") || s.Is("h3") {
			// Heading text may carry an "[edit]" suffix.
			heading := strings.TrimSpace(strings.SplitN(s.Text(), "[", 2)[0])
			if stopSections[heading] {
				return false
			}
			if heading != "" {
				sections = append(sections, heading)
			}
			return true
		}
		if s.Is("p") {
			text := cleanText(s.Text())
			if text != "" {
				paragraphs = append(paragraphs, text)
			}
		}
		if s.Is("ul") || s.Is("ol") {
			var items []string
			s.Find("li").Each(func(_ int, li *goquery.Selection) {
				if text := cleanText(li.Text()); text != "" {
					items = append(items, text)
				}
			})
			if len(items) > 0 {
				paragraphs = append(paragraphs, strings.Join(items, "\n"))
			}
		}
		return true
	})

	text := strings.TrimSpace(strings.Join(paragraphs, "\n\n"))
	if len(text) < f.cfg.MinArticleLength {
		return nil, domain.NewExtractionError(fmt.Sprintf(
			"extracted article text is too short (%d chars, need at least %d)",
			len(text), f.cfg.MinArticleLength))
	}
	if f.cfg.MaxArticleLength > 0 {
		if runes := []rune(text); len(runes) > f.cfg.MaxArticleLength {
			text = string(runes[:f.cfg.MaxArticleLength])
		}
	}

	return &domain.Article{
		Title:    title,
		Summary:  buildSummary(paragraphs),
		Text:     text,
		Sections: sections,
	}, nil
}

// cleanText strips citation markers and collapses surrounding whitespace.
func cleanText(text string) string {
	return strings.TrimSpace(citationPattern.ReplaceAllString(text, ""))
}

// buildSummary joins lead paragraphs until the word limit is reached.
func buildSummary(paragraphs []string) string {
	var b strings.Builder
	words := 0
	for _, p := range paragraphs {
		b.WriteString(p)
		b.WriteString("\n")
		words += len(strings.Fields(p))
		if words > summaryWordLimit {
			break
		}
	}
	return strings.TrimSpace(b.String())
}
