package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

// Sweeper cancels PENDING bookings that outlived the confirmation window.
type Sweeper interface {
	SweepStalePending(ctx context.Context) (int, error)
}

type Scheduler struct {
	sweeper  Sweeper
	interval time.Duration
	logger   logger.Logger
}

func New(sweeper Sweeper, interval time.Duration, logger logger.Logger) *Scheduler {
	return &Scheduler{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	swept, err := s.sweeper.SweepStalePending(ctx)
	if err != nil {
		s.logger.Error("failed to sweep stale bookings",
			logger.String("error", err.Error()),
		)
		return
	}

	if swept > 0 {
		s.logger.Info("stale pending bookings cancelled",
			logger.Int("count", swept),
		)
	}
}
