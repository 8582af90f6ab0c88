package pipeline

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"curator/internal/domain"
	"curator/internal/pipeline/mocks"
	"curator/internal/storage/postgres"
	"curator/testdata/utils"
)

type ResourceServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	resources  *mocks.MockResourceStore
	metadata   *mocks.MockMetadataStore
	categories *mocks.MockCategoryStore
	queue      *mocks.MockPublisher
	txManager  *mocks.MockTransactionManager

	service *ResourceService
}

func (s *ResourceServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.resources = mocks.NewMockResourceStore(s.ctrl)
	s.metadata = mocks.NewMockMetadataStore(s.ctrl)
	s.categories = mocks.NewMockCategoryStore(s.ctrl)
	s.queue = mocks.NewMockPublisher(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewResourceService(
		s.resources,
		s.metadata,
		s.categories,
		s.queue,
		s.txManager,
		logger,
	)
}

func (s *ResourceServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestResourceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ResourceServiceTestSuite))
}

func (s *ResourceServiceTestSuite) expectTransaction(ctx context.Context) {
	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func (s *ResourceServiceTestSuite) TestCreate_Article() {
	ctx := context.Background()

	s.expectTransaction(ctx)
	s.resources.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, res *domain.Resource) error {
			s.Equal("user-1", res.UserID)
			s.Equal(domain.KindArticle, res.Kind)
			s.Equal(domain.StatusNew, res.Status)
			s.Equal("https://example.com/post", res.URL)
			s.Equal("https://example.com/post", res.Title)
			s.False(res.IsVaultTarget)
			return nil
		},
	)
	s.queue.EXPECT().EnqueueIngestion(ctx, gomock.Any()).Return(nil)

	id, err := s.service.Create(ctx, "user-1", "https://example.com/post", false, nil)
	s.NoError(err)
	s.NotEqual(uuid.Nil, id)
}

func (s *ResourceServiceTestSuite) TestCreate_VideoDetection() {
	ctx := context.Background()

	s.expectTransaction(ctx)
	s.resources.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, res *domain.Resource) error {
			s.Equal(domain.KindVideo, res.Kind)
			return nil
		},
	)
	s.queue.EXPECT().EnqueueIngestion(ctx, gomock.Any()).Return(nil)

	_, err := s.service.Create(ctx, "user-1", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", false, nil)
	s.NoError(err)
}

func (s *ResourceServiceTestSuite) TestCreate_VaultWithCategory() {
	ctx := context.Background()
	categoryID := uuid.New()

	s.expectTransaction(ctx)
	s.resources.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	s.categories.EXPECT().ExistsForUser(ctx, categoryID, "user-1").Return(true, nil)
	s.metadata.EXPECT().UpsertVault(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, meta *domain.VaultMetadata) error {
			s.Require().NotNil(meta.CategoryID)
			s.Equal(categoryID, *meta.CategoryID)
			s.NotNil(meta.PromotedToVaultAt)
			return nil
		},
	)
	s.queue.EXPECT().EnqueueIngestion(ctx, gomock.Any()).Return(nil)

	_, err := s.service.Create(ctx, "user-1", "https://example.com/post", true, &categoryID)
	s.NoError(err)
}

func (s *ResourceServiceTestSuite) TestCreate_VaultWithoutCategory() {
	ctx := context.Background()

	s.expectTransaction(ctx)
	s.resources.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	s.metadata.EXPECT().UpsertVault(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, meta *domain.VaultMetadata) error {
			s.Nil(meta.CategoryID)
			s.NotNil(meta.PromotedToVaultAt)
			return nil
		},
	)
	s.queue.EXPECT().EnqueueIngestion(ctx, gomock.Any()).Return(nil)

	_, err := s.service.Create(ctx, "user-1", "https://example.com/post", true, nil)
	s.NoError(err)
}

func (s *ResourceServiceTestSuite) TestCreate_VaultWithForeignCategory() {
	ctx := context.Background()
	categoryID := uuid.New()

	s.expectTransaction(ctx)
	s.resources.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	s.categories.EXPECT().ExistsForUser(ctx, categoryID, "user-1").Return(false, nil)

	_, err := s.service.Create(ctx, "user-1", "https://example.com/post", true, &categoryID)
	s.ErrorIs(err, postgres.ErrNotFound)
}

func (s *ResourceServiceTestSuite) TestRetry() {
	ctx := context.Background()
	res := &domain.Resource{ID: uuid.New(), UserID: "user-1", Status: domain.StatusError}

	s.resources.EXPECT().GetByIDForUser(ctx, res.ID, "user-1").Return(res, nil)
	s.expectTransaction(ctx)
	s.resources.EXPECT().UpdateStatus(ctx, res.ID, domain.StatusProcessing).Return(nil)
	s.metadata.EXPECT().DeleteInbox(ctx, res.ID).Return(nil)
	s.queue.EXPECT().EnqueueIngestion(ctx, res.ID).Return(nil)

	err := s.service.Retry(ctx, res.ID, "user-1")
	s.NoError(err)
}

func (s *ResourceServiceTestSuite) TestRetry_NotOwned() {
	ctx := context.Background()
	id := uuid.New()

	s.resources.EXPECT().GetByIDForUser(ctx, id, "user-2").Return(nil, postgres.ErrNotFound)

	err := s.service.Retry(ctx, id, "user-2")
	s.ErrorIs(err, postgres.ErrNotFound)
}

func (s *ResourceServiceTestSuite) TestUpdateStatus_InvalidStatus() {
	ctx := context.Background()

	err := s.service.UpdateStatus(ctx, uuid.New(), "user-1", domain.Status("bogus"))
	s.ErrorIs(err, ErrInvalidStatus)
}

func (s *ResourceServiceTestSuite) TestUpdateStatus_ManualMove() {
	ctx := context.Background()
	res := &domain.Resource{ID: uuid.New(), UserID: "user-1", Status: domain.StatusInbox}

	s.resources.EXPECT().GetByIDForUser(ctx, res.ID, "user-1").Return(res, nil)
	s.expectTransaction(ctx)
	s.resources.EXPECT().UpdateStatus(ctx, res.ID, domain.StatusArchived).Return(nil)

	err := s.service.UpdateStatus(ctx, res.ID, "user-1", domain.StatusArchived)
	s.NoError(err)
}

func (s *ResourceServiceTestSuite) TestUpdateStatus_VaultMoveCreatesMetadata() {
	ctx := context.Background()
	res := &domain.Resource{ID: uuid.New(), UserID: "user-1", Status: domain.StatusInbox}

	s.resources.EXPECT().GetByIDForUser(ctx, res.ID, "user-1").Return(res, nil)
	s.expectTransaction(ctx)
	s.metadata.EXPECT().UpsertVault(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, meta *domain.VaultMetadata) error {
			s.Equal(res.ID, meta.ResourceID)
			s.NotNil(meta.PromotedToVaultAt)
			return nil
		},
	)
	s.resources.EXPECT().UpdateStatus(ctx, res.ID, domain.StatusVault).Return(nil)

	err := s.service.UpdateStatus(ctx, res.ID, "user-1", domain.StatusVault)
	s.NoError(err)
}

func (s *ResourceServiceTestSuite) TestUpdateStatus_VaultMoveKeepsExistingMetadata() {
	ctx := context.Background()
	promoted := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	res := &domain.Resource{
		ID:     uuid.New(),
		UserID: "user-1",
		Status: domain.StatusInbox,
		VaultMeta: &domain.VaultMetadata{
			ResourceID:        uuid.New(),
			PromotedToVaultAt: &promoted,
		},
	}

	s.resources.EXPECT().GetByIDForUser(ctx, res.ID, "user-1").Return(res, nil)
	s.expectTransaction(ctx)
	s.resources.EXPECT().UpdateStatus(ctx, res.ID, domain.StatusVault).Return(nil)

	err := s.service.UpdateStatus(ctx, res.ID, "user-1", domain.StatusVault)
	s.NoError(err)
}

func (s *ResourceServiceTestSuite) TestUpdateStatus_VaultMoveBackfillsPromotionTime() {
	ctx := context.Background()
	categoryID := uuid.New()
	res := &domain.Resource{
		ID:     uuid.New(),
		UserID: "user-1",
		Status: domain.StatusInbox,
		VaultMeta: &domain.VaultMetadata{
			ResourceID: uuid.New(),
			CategoryID: &categoryID,
		},
	}

	s.resources.EXPECT().GetByIDForUser(ctx, res.ID, "user-1").Return(res, nil)
	s.expectTransaction(ctx)
	s.metadata.EXPECT().UpsertVault(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, meta *domain.VaultMetadata) error {
			s.NotNil(meta.PromotedToVaultAt)
			s.Require().NotNil(meta.CategoryID)
			s.Equal(categoryID, *meta.CategoryID)
			return nil
		},
	)
	s.resources.EXPECT().UpdateStatus(ctx, res.ID, domain.StatusVault).Return(nil)

	err := s.service.UpdateStatus(ctx, res.ID, "user-1", domain.StatusVault)
	s.NoError(err)
}

func (s *ResourceServiceTestSuite) TestAssignCategory() {
	ctx := context.Background()
	categoryID := uuid.New()
	res := &domain.Resource{
		ID:     uuid.New(),
		UserID: "user-1",
		VaultMeta: &domain.VaultMetadata{
			ResourceID:            uuid.New(),
			SuggestedCategoryName: utils.Ptr("Cooking"),
		},
	}

	s.resources.EXPECT().GetByIDForUser(ctx, res.ID, "user-1").Return(res, nil)
	s.categories.EXPECT().ExistsForUser(ctx, categoryID, "user-1").Return(true, nil)
	s.metadata.EXPECT().UpsertVault(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, meta *domain.VaultMetadata) error {
			s.Require().NotNil(meta.CategoryID)
			s.Equal(categoryID, *meta.CategoryID)
			s.Nil(meta.SuggestedCategoryName)
			return nil
		},
	)

	err := s.service.AssignCategory(ctx, res.ID, "user-1", &categoryID)
	s.NoError(err)
}

func (s *ResourceServiceTestSuite) TestAssignCategory_ForeignCategory() {
	ctx := context.Background()
	categoryID := uuid.New()
	res := &domain.Resource{ID: uuid.New(), UserID: "user-1"}

	s.resources.EXPECT().GetByIDForUser(ctx, res.ID, "user-1").Return(res, nil)
	s.categories.EXPECT().ExistsForUser(ctx, categoryID, "user-1").Return(false, nil)

	err := s.service.AssignCategory(ctx, res.ID, "user-1", &categoryID)
	s.ErrorIs(err, postgres.ErrNotFound)
}

func (s *ResourceServiceTestSuite) TestAssignCategory_ClearAssignment() {
	ctx := context.Background()
	existing := uuid.New()
	res := &domain.Resource{
		ID:     uuid.New(),
		UserID: "user-1",
		VaultMeta: &domain.VaultMetadata{
			ResourceID: uuid.New(),
			CategoryID: &existing,
		},
	}

	s.resources.EXPECT().GetByIDForUser(ctx, res.ID, "user-1").Return(res, nil)
	s.metadata.EXPECT().UpsertVault(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, meta *domain.VaultMetadata) error {
			s.Nil(meta.CategoryID)
			return nil
		},
	)

	err := s.service.AssignCategory(ctx, res.ID, "user-1", nil)
	s.NoError(err)
}

func (s *ResourceServiceTestSuite) TestDelete_MovesToTrashFirst() {
	ctx := context.Background()
	res := &domain.Resource{ID: uuid.New(), UserID: "user-1", Status: domain.StatusInbox}

	s.resources.EXPECT().GetByIDForUser(ctx, res.ID, "user-1").Return(res, nil)
	s.resources.EXPECT().UpdateStatus(ctx, res.ID, domain.StatusTrash).Return(nil)

	err := s.service.Delete(ctx, res.ID, "user-1")
	s.NoError(err)
}

func (s *ResourceServiceTestSuite) TestDelete_PermanentFromTrash() {
	ctx := context.Background()
	res := &domain.Resource{ID: uuid.New(), UserID: "user-1", Status: domain.StatusTrash}

	s.resources.EXPECT().GetByIDForUser(ctx, res.ID, "user-1").Return(res, nil)
	s.resources.EXPECT().Delete(ctx, res.ID).Return(nil)

	err := s.service.Delete(ctx, res.ID, "user-1")
	s.NoError(err)
}
