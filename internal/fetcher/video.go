package fetcher

import (
	"context"
	"log/slog"
	"strings"

	"curator/internal/domain"
	"curator/internal/youtube"
)

type VideoFetcher struct {
	client       *youtube.Client
	fallbackLang string
	maxChars     int
	logger       *slog.Logger
}

func NewVideoFetcher(client *youtube.Client, fallbackLang string, maxChars int, logger *slog.Logger) *VideoFetcher {
	return &VideoFetcher{
		client:       client,
		fallbackLang: fallbackLang,
		maxChars:     maxChars,
		logger:       logger.With("component", "video_fetcher"),
	}
}

func (f *VideoFetcher) CanHandle(url string) bool {
	return youtube.IsVideoURL(url)
}

// FetchContent downloads the video's caption transcript. Videos
// without captions yield an empty string, not an error.
func (f *VideoFetcher) FetchContent(ctx context.Context, res *domain.Resource) (string, error) {
	videoID, err := youtube.ExtractVideoID(res.URL)
	if err != nil {
		f.logger.Warn("failed to extract video id", "resource_id", res.ID, "url", res.URL, "error", err)
		return "", nil
	}

	tracks, err := f.client.ListCaptionTracks(ctx, videoID)
	if err != nil {
		f.logger.Warn("failed to list caption tracks", "resource_id", res.ID, "video_id", videoID, "error", err)
		return "", nil
	}
	if len(tracks) == 0 {
		return "", nil
	}

	track := pickTrack(tracks, f.fallbackLang)

	lines, err := f.client.FetchTranscript(ctx, videoID, track)
	if err != nil {
		f.logger.Warn("failed to fetch transcript",
			"resource_id", res.ID,
			"video_id", videoID,
			"language", track.Language,
			"error", err,
		)
		return "", nil
	}

	text := strings.Join(lines, " ")
	if len(text) > f.maxChars {
		text = text[:f.maxChars]
	}
	return text, nil
}

// pickTrack prefers English, then the configured fallback language,
// then whatever comes first.
func pickTrack(tracks []youtube.CaptionTrack, fallbackLang string) youtube.CaptionTrack {
	for _, t := range tracks {
		if t.Language == "en" || strings.HasPrefix(t.Language, "en-") {
			return t
		}
	}
	for _, t := range tracks {
		if t.Language == fallbackLang {
			return t
		}
	}
	return tracks[0]
}
