package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type statsSource interface {
	CollectionCounts(ctx context.Context) (map[string]int64, error)
}

// Scheduler periodically publishes collection sizes as metrics.
type Scheduler struct {
	source   statsSource
	publish  func(collection string, n int64)
	interval time.Duration
	logger   logger.Logger
}

func New(
	source statsSource,
	publish func(collection string, n int64),
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		source:   source,
		publish:  publish,
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
	counts, err := s.source.CollectionCounts(ctx)
	if err != nil {
		s.logger.Error("failed to count collections",
			logger.String("error", err.Error()),
		)
		return
	}

	for name, n := range counts {
		s.publish(name, n)
	}
	s.logger.Debug("collection sizes refreshed",
		logger.Int("collections", len(counts)),
	)
}
