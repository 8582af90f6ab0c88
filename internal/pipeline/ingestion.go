package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"

	"curator/internal/domain"
	"curator/internal/storage/postgres"
	"curator/internal/youtube"
)

// readingWordsPerMinute is the speed used to estimate article reading
// time from word count.
const readingWordsPerMinute = 200

// IngestionJob is the first pipeline stage: it resolves remote
// metadata for a freshly created resource and hands it to the
// analysis stage.
type IngestionJob struct {
	resources  ResourceStore
	queue      Publisher
	videos     VideoMetadataClient
	httpClient *http.Client
	userAgent  string
	logger     *slog.Logger
}

func NewIngestionJob(
	resources ResourceStore,
	queue Publisher,
	videos VideoMetadataClient,
	fetchTimeout time.Duration,
	userAgent string,
	logger *slog.Logger,
) *IngestionJob {
	return &IngestionJob{
		resources:  resources,
		queue:      queue,
		videos:     videos,
		httpClient: &http.Client{Timeout: fetchTimeout},
		userAgent:  userAgent,
		logger:     logger.With("component", "ingestion_job"),
	}
}

// Process runs the metadata-fetch stage for one resource. A missing
// resource is a silent no-op; any other failure flips the resource to
// the error status and propagates so the runner's retry accounting
// applies.
func (j *IngestionJob) Process(ctx context.Context, resourceID uuid.UUID) error {
	res, err := j.resources.GetByID(ctx, resourceID)
	if errors.Is(err, postgres.ErrNotFound) {
		j.logger.Info("resource gone, skipping ingestion", "resource_id", resourceID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("load resource: %w", err)
	}

	res.Status = domain.StatusProcessing
	if err := j.resources.UpdateStatus(ctx, res.ID, res.Status); err != nil {
		return fmt.Errorf("mark processing: %w", err)
	}

	if err := j.ingest(ctx, res); err != nil {
		j.logger.Error("ingestion failed",
			"resource_id", res.ID,
			"url", res.URL,
			"error", err,
		)
		// Best effort; the original error is the one that matters.
		_ = j.resources.UpdateStatus(ctx, res.ID, domain.StatusError)
		return err
	}

	j.logger.Info("ingestion complete", "resource_id", res.ID, "kind", res.Kind)
	return nil
}

func (j *IngestionJob) ingest(ctx context.Context, res *domain.Resource) error {
	switch res.Kind {
	case domain.KindVideo:
		if err := j.ingestVideo(ctx, res); err != nil {
			return err
		}
	case domain.KindArticle:
		if err := j.ingestArticle(ctx, res); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported resource kind %q", res.Kind)
	}

	if err := j.resources.Update(ctx, res); err != nil {
		return fmt.Errorf("persist metadata: %w", err)
	}
	if err := j.queue.EnqueueAnalysis(ctx, res.ID); err != nil {
		return fmt.Errorf("enqueue analysis: %w", err)
	}
	return nil
}

func (j *IngestionJob) ingestVideo(ctx context.Context, res *domain.Resource) error {
	videoID, err := youtube.ExtractVideoID(res.URL)
	if err != nil {
		return fmt.Errorf("extract video id: %w", err)
	}

	meta, err := j.videos.VideoMetadata(ctx, videoID)
	if err != nil {
		return err
	}

	res.Title = domain.TruncateTitle(meta.Title)
	if meta.Description != "" {
		desc := domain.TruncateDescription(meta.Description)
		res.Description = &desc
	}
	if meta.ThumbnailURL != "" {
		res.ImageURL = &meta.ThumbnailURL
	}

	info := &domain.VideoInfo{
		ChannelName: meta.ChannelName,
		ViewCount:   meta.ViewCount,
	}
	if meta.Duration > 0 {
		d := meta.Duration
		info.Duration = &d
	}
	res.Video = info
	return nil
}

func (j *IngestionJob) ingestArticle(ctx context.Context, res *domain.Resource) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, res.URL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", j.userAgent)

	resp, err := j.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return fmt.Errorf("parse html: %w", err)
	}

	title := metaContent(doc, `meta[property="og:title"]`)
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if title == "" {
		title = res.URL
	}
	res.Title = domain.TruncateTitle(title)

	description := metaContent(doc, `meta[property="og:description"]`)
	if description == "" {
		description = metaContent(doc, `meta[name="description"]`)
	}
	if description != "" {
		desc := domain.TruncateDescription(description)
		res.Description = &desc
	}

	if image := metaContent(doc, `meta[property="og:image"]`); image != "" {
		res.ImageURL = &image
	}

	siteName := metaContent(doc, `meta[property="og:site_name"]`)
	if siteName == "" {
		if u, err := url.Parse(res.URL); err == nil {
			siteName = u.Hostname()
		}
	}

	res.Article = &domain.ArticleInfo{
		Author:             metaContent(doc, `meta[name="author"]`),
		SiteName:           siteName,
		ReadingTimeMinutes: estimateReadingTime(doc.Find("body").Text()),
	}
	return nil
}

func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(content)
}

func estimateReadingTime(text string) int {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}
	minutes := (words + readingWordsPerMinute - 1) / readingWordsPerMinute
	return minutes
}
