package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"curator/internal/domain"
	"curator/internal/pipeline/mocks"
	"curator/internal/storage/postgres"
	"curator/internal/youtube"
)

type IngestionJobTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	resources *mocks.MockResourceStore
	queue     *mocks.MockPublisher
	videos    *mocks.MockVideoMetadataClient

	job    *IngestionJob
	logger *slog.Logger
}

func (s *IngestionJobTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.resources = mocks.NewMockResourceStore(s.ctrl)
	s.queue = mocks.NewMockPublisher(s.ctrl)
	s.videos = mocks.NewMockVideoMetadataClient(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.job = NewIngestionJob(
		s.resources,
		s.queue,
		s.videos,
		5*time.Second,
		"test-agent",
		s.logger,
	)
}

func (s *IngestionJobTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestIngestionJobTestSuite(t *testing.T) {
	suite.Run(t, new(IngestionJobTestSuite))
}

func (s *IngestionJobTestSuite) TestProcess_ResourceGone() {
	ctx := context.Background()
	id := uuid.New()

	s.resources.EXPECT().GetByID(ctx, id).Return(nil, postgres.ErrNotFound)

	err := s.job.Process(ctx, id)
	s.NoError(err)
}

func (s *IngestionJobTestSuite) TestProcess_Video() {
	ctx := context.Background()
	res := &domain.Resource{
		ID:     uuid.New(),
		UserID: "user-1",
		Kind:   domain.KindVideo,
		URL:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		Title:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		Status: domain.StatusNew,
	}

	s.resources.EXPECT().GetByID(ctx, res.ID).Return(res, nil)
	s.resources.EXPECT().UpdateStatus(ctx, res.ID, domain.StatusProcessing).Return(nil)

	s.videos.EXPECT().VideoMetadata(ctx, "dQw4w9WgXcQ").Return(&youtube.Metadata{
		Title:        "Video Title",
		Description:  "Video description",
		ChannelName:  "Channel",
		Duration:     3*time.Minute + 33*time.Second,
		ViewCount:    1_000_000,
		ThumbnailURL: "https://img.example.com/t.jpg",
	}, nil)

	s.resources.EXPECT().Update(ctx, res).DoAndReturn(
		func(_ context.Context, r *domain.Resource) error {
			s.Equal("Video Title", r.Title)
			s.Require().NotNil(r.Description)
			s.Equal("Video description", *r.Description)
			s.Require().NotNil(r.ImageURL)
			s.Equal("https://img.example.com/t.jpg", *r.ImageURL)
			s.Require().NotNil(r.Video)
			s.Equal("Channel", r.Video.ChannelName)
			s.Equal(int64(1_000_000), r.Video.ViewCount)
			s.Require().NotNil(r.Video.Duration)
			s.Equal(3*time.Minute+33*time.Second, *r.Video.Duration)
			return nil
		},
	)
	s.queue.EXPECT().EnqueueAnalysis(ctx, res.ID).Return(nil)

	err := s.job.Process(ctx, res.ID)
	s.NoError(err)
}

func (s *IngestionJobTestSuite) TestProcess_Video_TruncatesLongTitle() {
	ctx := context.Background()
	res := &domain.Resource{
		ID:   uuid.New(),
		Kind: domain.KindVideo,
		URL:  "https://youtu.be/dQw4w9WgXcQ",
	}

	s.resources.EXPECT().GetByID(ctx, res.ID).Return(res, nil)
	s.resources.EXPECT().UpdateStatus(ctx, res.ID, domain.StatusProcessing).Return(nil)

	longTitle := strings.Repeat("a", 600)
	s.videos.EXPECT().VideoMetadata(ctx, "dQw4w9WgXcQ").Return(&youtube.Metadata{Title: longTitle}, nil)

	s.resources.EXPECT().Update(ctx, res).DoAndReturn(
		func(_ context.Context, r *domain.Resource) error {
			s.Len(r.Title, 500)
			s.Equal(strings.Repeat("a", 497)+"...", r.Title)
			return nil
		},
	)
	s.queue.EXPECT().EnqueueAnalysis(ctx, res.ID).Return(nil)

	err := s.job.Process(ctx, res.ID)
	s.NoError(err)
}

func (s *IngestionJobTestSuite) TestProcess_Video_MetadataFailure() {
	ctx := context.Background()
	res := &domain.Resource{
		ID:   uuid.New(),
		Kind: domain.KindVideo,
		URL:  "https://youtu.be/dQw4w9WgXcQ",
	}

	s.resources.EXPECT().GetByID(ctx, res.ID).Return(res, nil)
	s.resources.EXPECT().UpdateStatus(ctx, res.ID, domain.StatusProcessing).Return(nil)

	fetchErr := errors.New("api unavailable")
	s.videos.EXPECT().VideoMetadata(ctx, "dQw4w9WgXcQ").Return(nil, fetchErr)

	s.resources.EXPECT().UpdateStatus(ctx, res.ID, domain.StatusError).Return(nil)

	err := s.job.Process(ctx, res.ID)
	s.ErrorIs(err, fetchErr)
}

func (s *IngestionJobTestSuite) TestProcess_Article() {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("test-agent", r.Header.Get("User-Agent"))
		w.Write([]byte(`<!DOCTYPE html>
<html><head>
<title>Fallback Title</title>
<meta property="og:title" content="OG Title">
<meta property="og:description" content="OG description">
<meta property="og:image" content="https://example.com/img.png">
<meta property="og:site_name" content="Example Site">
<meta name="author" content="Jane Writer">
</head><body><p>` + strings.Repeat("word ", 400) + `</p></body></html>`))
	}))
	defer server.Close()

	res := &domain.Resource{
		ID:   uuid.New(),
		Kind: domain.KindArticle,
		URL:  server.URL + "/post",
	}

	s.resources.EXPECT().GetByID(ctx, res.ID).Return(res, nil)
	s.resources.EXPECT().UpdateStatus(ctx, res.ID, domain.StatusProcessing).Return(nil)

	s.resources.EXPECT().Update(ctx, res).DoAndReturn(
		func(_ context.Context, r *domain.Resource) error {
			s.Equal("OG Title", r.Title)
			s.Require().NotNil(r.Description)
			s.Equal("OG description", *r.Description)
			s.Require().NotNil(r.ImageURL)
			s.Equal("https://example.com/img.png", *r.ImageURL)
			s.Require().NotNil(r.Article)
			s.Equal("Example Site", r.Article.SiteName)
			s.Equal("Jane Writer", r.Article.Author)
			s.Equal(2, r.Article.ReadingTimeMinutes)
			return nil
		},
	)
	s.queue.EXPECT().EnqueueAnalysis(ctx, res.ID).Return(nil)

	err := s.job.Process(ctx, res.ID)
	s.NoError(err)
}

func (s *IngestionJobTestSuite) TestProcess_Article_SiteNameFallsBackToHost() {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<html><head><title>Plain Page</title></head><body><p>text</p></body></html>`))
	}))
	defer server.Close()

	res := &domain.Resource{
		ID:   uuid.New(),
		Kind: domain.KindArticle,
		URL:  server.URL + "/page",
	}

	s.resources.EXPECT().GetByID(ctx, res.ID).Return(res, nil)
	s.resources.EXPECT().UpdateStatus(ctx, res.ID, domain.StatusProcessing).Return(nil)

	s.resources.EXPECT().Update(ctx, res).DoAndReturn(
		func(_ context.Context, r *domain.Resource) error {
			s.Equal("Plain Page", r.Title)
			s.Require().NotNil(r.Article)
			s.Equal("127.0.0.1", r.Article.SiteName)
			s.Nil(r.Description)
			return nil
		},
	)
	s.queue.EXPECT().EnqueueAnalysis(ctx, res.ID).Return(nil)

	err := s.job.Process(ctx, res.ID)
	s.NoError(err)
}

func (s *IngestionJobTestSuite) TestProcess_Article_FetchFailure() {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	res := &domain.Resource{
		ID:   uuid.New(),
		Kind: domain.KindArticle,
		URL:  server.URL + "/broken",
	}

	s.resources.EXPECT().GetByID(ctx, res.ID).Return(res, nil)
	s.resources.EXPECT().UpdateStatus(ctx, res.ID, domain.StatusProcessing).Return(nil)
	s.resources.EXPECT().UpdateStatus(ctx, res.ID, domain.StatusError).Return(nil)

	err := s.job.Process(ctx, res.ID)
	s.Error(err)
}

func (s *IngestionJobTestSuite) TestProcess_EnqueueFailure() {
	ctx := context.Background()
	res := &domain.Resource{
		ID:   uuid.New(),
		Kind: domain.KindVideo,
		URL:  "https://youtu.be/dQw4w9WgXcQ",
	}

	s.resources.EXPECT().GetByID(ctx, res.ID).Return(res, nil)
	s.resources.EXPECT().UpdateStatus(ctx, res.ID, domain.StatusProcessing).Return(nil)
	s.videos.EXPECT().VideoMetadata(ctx, "dQw4w9WgXcQ").Return(&youtube.Metadata{Title: "T"}, nil)
	s.resources.EXPECT().Update(ctx, res).Return(nil)

	queueErr := errors.New("broker down")
	s.queue.EXPECT().EnqueueAnalysis(ctx, res.ID).Return(queueErr)
	s.resources.EXPECT().UpdateStatus(ctx, res.ID, domain.StatusError).Return(nil)

	err := s.job.Process(ctx, res.ID)
	s.ErrorIs(err, queueErr)
}
