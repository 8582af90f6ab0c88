package fetcher

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"curator/internal/domain"
	"curator/internal/youtube"
)

// contentSelectors are the tags likely to carry article prose.
const contentSelectors = "article, p, li, h1, h2, h3, h4, h5, h6, blockquote"

// minExtractedChars is the threshold below which the targeted
// extraction is considered a miss and the whole body is scanned.
const minExtractedChars = 200

type ArticleFetcher struct {
	httpClient *http.Client
	userAgent  string
	maxChars   int
	logger     *slog.Logger
}

func NewArticleFetcher(timeout time.Duration, userAgent string, maxChars int, logger *slog.Logger) *ArticleFetcher {
	return &ArticleFetcher{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
		maxChars:   maxChars,
		logger:     logger.With("component", "article_fetcher"),
	}
}

// CanHandle accepts everything that is not a YouTube video.
func (f *ArticleFetcher) CanHandle(url string) bool {
	return !youtube.IsVideoURL(url)
}

func (f *ArticleFetcher) FetchContent(ctx context.Context, res *domain.Resource) (string, error) {
	text, err := f.extract(ctx, res.URL)
	if err != nil {
		f.logger.Warn("failed to fetch article content",
			"resource_id", res.ID,
			"url", res.URL,
			"error", err,
		)
		return "", nil
	}
	return text, nil
}

func (f *ArticleFetcher) extract(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	doc.Find("script, style, nav, header, footer").Remove()

	var parts []string
	doc.Find(contentSelectors).Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); isUsefulText(text) {
			parts = append(parts, text)
		}
	})

	text := strings.Join(parts, "\n")
	if len(text) < minExtractedChars {
		// Targeted extraction came up short; fall back to scanning
		// every line of the page body.
		parts = parts[:0]
		for _, line := range strings.Split(doc.Find("body").Text(), "\n") {
			if line = strings.TrimSpace(line); isUsefulText(line) {
				parts = append(parts, line)
			}
		}
		text = strings.Join(parts, "\n")
	}

	text = normalizeWhitespace(text)
	if len(text) > f.maxChars {
		text = text[:f.maxChars]
	}
	return text, nil
}

// isUsefulText filters out navigation crumbs and button labels.
func isUsefulText(s string) bool {
	if len(s) > 20 {
		return true
	}
	return len(s) > 5 && strings.Contains(s, " ")
}

func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
