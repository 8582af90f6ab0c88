package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// Recoverer defines the interface for the periodic recovery sweep.
type Recoverer interface {
	Recover(ctx context.Context) error
}

type Scheduler struct {
	recoverer Recoverer
	interval  time.Duration
	logger    *slog.Logger
}

func NewScheduler(recoverer Recoverer, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		recoverer: recoverer,
		interval:  interval,
		logger:    logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runRecovery(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runRecovery(ctx)
		}
	}
}

func (s *Scheduler) runRecovery(ctx context.Context) {
	recoveryCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	if err := s.recoverer.Recover(recoveryCtx); err != nil {
		s.logger.Error("recovery sweep failed", "error", err)
	}
}
