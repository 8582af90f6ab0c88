package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"curator/internal/domain"
)

// RecoveryJob is the periodic safety net: it restarts the pipeline
// from the ingestion stage for every resource stuck in the error
// status.
type RecoveryJob struct {
	resources ResourceStore
	queue     Publisher
	logger    *slog.Logger
}

func NewRecoveryJob(resources ResourceStore, queue Publisher, logger *slog.Logger) *RecoveryJob {
	return &RecoveryJob{
		resources: resources,
		queue:     queue,
		logger:    logger.With("component", "recovery_job"),
	}
}

// Recover re-enqueues every errored resource and flips the requeued
// ones back to processing in one batch.
func (j *RecoveryJob) Recover(ctx context.Context) error {
	ids, err := j.resources.ListIDsByStatus(ctx, domain.StatusError)
	if err != nil {
		return fmt.Errorf("list errored resources: %w", err)
	}
	if len(ids) == 0 {
		return nil
	}

	requeued := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := j.queue.EnqueueIngestion(ctx, id); err != nil {
			j.logger.Error("failed to requeue resource", "resource_id", id, "error", err)
			continue
		}
		requeued = append(requeued, id)
	}

	if err := j.resources.UpdateStatusBatch(ctx, requeued, domain.StatusProcessing); err != nil {
		return fmt.Errorf("flip requeued resources: %w", err)
	}

	j.logger.Info("recovery sweep complete", "errored", len(ids), "requeued", len(requeued))
	return nil
}
