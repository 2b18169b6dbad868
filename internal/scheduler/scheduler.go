package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type backlogReporter interface {
	ReportBacklog(ctx context.Context, staleAfter time.Duration) (int, error)
}

// Scheduler периодически напоминает проверяющим о зависших заявках.
// Статусы заявок он не меняет.
type Scheduler struct {
	reporter   backlogReporter
	interval   time.Duration
	staleAfter time.Duration
	logger     logger.Logger
}

func New(
	reporter backlogReporter,
	interval time.Duration,
	staleAfter time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reporter:   reporter,
		interval:   interval,
		staleAfter: staleAfter,
		logger:     logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
		logger.Duration("stale_after", s.staleAfter),
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
	count, err := s.reporter.ReportBacklog(ctx, s.staleAfter)
	if err != nil {
		s.logger.Error("failed to report pending backlog",
			logger.String("error", err.Error()),
		)
		return
	}

	if count > 0 {
		s.logger.Debug("pending backlog reported", logger.Int("count", count))
	}
}
