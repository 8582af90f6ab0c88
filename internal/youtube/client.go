package youtube

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Config holds YouTube client configuration.
type Config struct {
	APIKey       string
	BaseURL      string
	TimedTextURL string
	Timeout      time.Duration
}

// Client talks to the YouTube Data API for video metadata and to the
// timedtext endpoint for caption transcripts.
type Client struct {
	httpClient   *http.Client
	apiKey       string
	baseURL      string
	timedTextURL string
	logger       *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	timedText := cfg.TimedTextURL
	if timedText == "" {
		timedText = "https://video.google.com/timedtext"
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		apiKey:       cfg.APIKey,
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		timedTextURL: strings.TrimRight(timedText, "/"),
		logger:       logger.With("component", "youtube"),
	}
}

// Metadata is the subset of video fields the pipeline stores.
type Metadata struct {
	Title        string
	Description  string
	ChannelName  string
	Duration     time.Duration
	ViewCount    int64
	ThumbnailURL string
}

// CaptionTrack identifies one closed-caption track on a video.
type CaptionTrack struct {
	Language string
	Name     string
}

// IsVideoURL reports whether the URL points at a YouTube video.
func IsVideoURL(raw string) bool {
	_, err := ExtractVideoID(raw)
	return err == nil
}

// ExtractVideoID pulls the video id out of the common YouTube URL
// shapes: watch?v=, youtu.be/, /embed/, /shorts/, /live/.
func ExtractVideoID(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty url")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	host := strings.ToLower(u.Hostname())
	host = strings.TrimPrefix(host, "www.")
	host = strings.TrimPrefix(host, "m.")

	if host == "youtu.be" {
		if id := firstPathSegment(u.Path); id != "" {
			return id, nil
		}
		return "", errors.New("video id not found")
	}

	if host != "youtube.com" {
		return "", errors.New("not a youtube url")
	}

	if id := u.Query().Get("v"); id != "" {
		return id, nil
	}
	for _, prefix := range []string{"/embed/", "/shorts/", "/live/", "/v/"} {
		if strings.HasPrefix(u.Path, prefix) {
			if id := firstPathSegment(strings.TrimPrefix(u.Path, prefix)); id != "" {
				return id, nil
			}
		}
	}

	return "", errors.New("video id not found")
}

func firstPathSegment(p string) string {
	p = strings.TrimPrefix(strings.TrimSpace(p), "/")
	seg, _, _ := strings.Cut(p, "/")
	return strings.TrimSpace(seg)
}

type videosResponse struct {
	Items []struct {
		Snippet struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			ChannelTitle string `json:"channelTitle"`
			Thumbnails   map[string]struct {
				URL    string `json:"url"`
				Width  int    `json:"width"`
				Height int    `json:"height"`
			} `json:"thumbnails"`
		} `json:"snippet"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
		Statistics struct {
			ViewCount string `json:"viewCount"`
		} `json:"statistics"`
	} `json:"items"`
}

// VideoMetadata fetches title, description, channel, duration, view
// count and the highest-resolution thumbnail for a video id.
func (c *Client) VideoMetadata(ctx context.Context, videoID string) (*Metadata, error) {
	reqURL := fmt.Sprintf("%s/videos?part=snippet,contentDetails,statistics&id=%s&key=%s",
		c.baseURL, url.QueryEscape(videoID), url.QueryEscape(c.apiKey))

	var resp videosResponse
	if err := c.getJSON(ctx, reqURL, &resp); err != nil {
		return nil, fmt.Errorf("fetch video metadata: %w", err)
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("video %s not found", videoID)
	}

	item := resp.Items[0]

	duration, err := ParseISO8601Duration(item.ContentDetails.Duration)
	if err != nil {
		c.logger.Warn("failed to parse video duration",
			"video_id", videoID,
			"duration", item.ContentDetails.Duration,
		)
	}

	viewCount, _ := strconv.ParseInt(item.Statistics.ViewCount, 10, 64)

	meta := &Metadata{
		Title:       item.Snippet.Title,
		Description: item.Snippet.Description,
		ChannelName: item.Snippet.ChannelTitle,
		Duration:    duration,
		ViewCount:   viewCount,
	}

	best := 0
	for _, t := range item.Snippet.Thumbnails {
		if area := t.Width * t.Height; area > best {
			best = area
			meta.ThumbnailURL = t.URL
		}
	}

	return meta, nil
}

func (c *Client) getJSON(ctx context.Context, reqURL string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

type trackList struct {
	Tracks []struct {
		LangCode string `xml:"lang_code,attr"`
		Name     string `xml:"name,attr"`
	} `xml:"track"`
}

// ListCaptionTracks returns the caption tracks available for a video.
// An empty list is a normal outcome for videos without captions.
func (c *Client) ListCaptionTracks(ctx context.Context, videoID string) ([]CaptionTrack, error) {
	reqURL := c.timedTextURL + "?type=list&v=" + url.QueryEscape(videoID)

	body, err := c.getRaw(ctx, reqURL)
	if err != nil {
		return nil, fmt.Errorf("list caption tracks: %w", err)
	}
	if len(body) == 0 {
		return nil, nil
	}

	var list trackList
	if err := xml.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("parse track list: %w", err)
	}

	tracks := make([]CaptionTrack, 0, len(list.Tracks))
	for _, t := range list.Tracks {
		tracks = append(tracks, CaptionTrack{Language: t.LangCode, Name: t.Name})
	}
	return tracks, nil
}

type transcript struct {
	Lines []struct {
		Text string `xml:",chardata"`
	} `xml:"text"`
}

// FetchTranscript downloads one caption track and returns its lines.
func (c *Client) FetchTranscript(ctx context.Context, videoID string, track CaptionTrack) ([]string, error) {
	q := url.Values{}
	q.Set("v", videoID)
	q.Set("lang", track.Language)
	if track.Name != "" {
		q.Set("name", track.Name)
	}
	reqURL := c.timedTextURL + "?" + q.Encode()

	body, err := c.getRaw(ctx, reqURL)
	if err != nil {
		return nil, fmt.Errorf("fetch transcript: %w", err)
	}
	if len(body) == 0 {
		return nil, nil
	}

	var t transcript
	if err := xml.Unmarshal(body, &t); err != nil {
		return nil, fmt.Errorf("parse transcript: %w", err)
	}

	lines := make([]string, 0, len(t.Lines))
	for _, l := range t.Lines {
		if text := strings.TrimSpace(l.Text); text != "" {
			lines = append(lines, text)
		}
	}
	return lines, nil
}

func (c *Client) getRaw(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return body, nil
}

// ParseISO8601Duration parses the PT#H#M#S durations the Data API
// returns.
func ParseISO8601Duration(s string) (time.Duration, error) {
	if s == "" {
		return 0, errors.New("empty duration")
	}
	orig := s
	if !strings.HasPrefix(s, "PT") && !strings.HasPrefix(s, "P") {
		return 0, fmt.Errorf("invalid duration %q", orig)
	}
	s = strings.TrimPrefix(s, "P")
	s = strings.TrimPrefix(s, "T")

	var total time.Duration
	num := ""
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			num += string(r)
		case r == 'T':
			continue
		default:
			if num == "" {
				return 0, fmt.Errorf("invalid duration %q", orig)
			}
			n, err := strconv.Atoi(num)
			if err != nil {
				return 0, fmt.Errorf("invalid duration %q", orig)
			}
			switch r {
			case 'D':
				total += time.Duration(n) * 24 * time.Hour
			case 'H':
				total += time.Duration(n) * time.Hour
			case 'M':
				total += time.Duration(n) * time.Minute
			case 'S':
				total += time.Duration(n) * time.Second
			default:
				return 0, fmt.Errorf("invalid duration %q", orig)
			}
			num = ""
		}
	}
	return total, nil
}
