package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"curator/internal/domain"
	"curator/internal/pipeline/mocks"
)

type RecoveryJobTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	resources *mocks.MockResourceStore
	queue     *mocks.MockPublisher

	job *RecoveryJob
}

func (s *RecoveryJobTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.resources = mocks.NewMockResourceStore(s.ctrl)
	s.queue = mocks.NewMockPublisher(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.job = NewRecoveryJob(s.resources, s.queue, logger)
}

func (s *RecoveryJobTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestRecoveryJobTestSuite(t *testing.T) {
	suite.Run(t, new(RecoveryJobTestSuite))
}

func (s *RecoveryJobTestSuite) TestRecover_RequeuesErroredResources() {
	ctx := context.Background()
	id1, id2 := uuid.New(), uuid.New()

	s.resources.EXPECT().ListIDsByStatus(ctx, domain.StatusError).Return([]uuid.UUID{id1, id2}, nil)
	s.queue.EXPECT().EnqueueIngestion(ctx, id1).Return(nil)
	s.queue.EXPECT().EnqueueIngestion(ctx, id2).Return(nil)
	s.resources.EXPECT().UpdateStatusBatch(ctx, []uuid.UUID{id1, id2}, domain.StatusProcessing).Return(nil)

	err := s.job.Recover(ctx)
	s.NoError(err)
}

func (s *RecoveryJobTestSuite) TestRecover_NothingToDo() {
	ctx := context.Background()

	s.resources.EXPECT().ListIDsByStatus(ctx, domain.StatusError).Return(nil, nil)

	err := s.job.Recover(ctx)
	s.NoError(err)
}

func (s *RecoveryJobTestSuite) TestRecover_SkipsResourcesThatFailedToEnqueue() {
	ctx := context.Background()
	id1, id2 := uuid.New(), uuid.New()

	s.resources.EXPECT().ListIDsByStatus(ctx, domain.StatusError).Return([]uuid.UUID{id1, id2}, nil)
	s.queue.EXPECT().EnqueueIngestion(ctx, id1).Return(errors.New("broker down"))
	s.queue.EXPECT().EnqueueIngestion(ctx, id2).Return(nil)
	s.resources.EXPECT().UpdateStatusBatch(ctx, []uuid.UUID{id2}, domain.StatusProcessing).Return(nil)

	err := s.job.Recover(ctx)
	s.NoError(err)
}

func (s *RecoveryJobTestSuite) TestRecover_ListFailure() {
	ctx := context.Background()

	listErr := errors.New("db down")
	s.resources.EXPECT().ListIDsByStatus(ctx, domain.StatusError).Return(nil, listErr)

	err := s.job.Recover(ctx)
	s.ErrorIs(err, listErr)
}
