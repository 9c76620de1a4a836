package app

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Sweeper is anything holding state that goes stale and can be dropped in
// one pass.
type Sweeper interface {
	Sweep() int
}

// RunSessionSweeper evicts idle UI sessions every interval until ctx is
// cancelled.
func RunSessionSweeper(
	ctx context.Context,
	sessions Sweeper,
	logger *zap.Logger,
	interval time.Duration,
) {
	if interval <= 0 {
		interval = time.Minute
	}

	log := logger.Named("app.session_sweeper")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info("session sweeper started", zap.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			log.Info("session sweeper stopped")
			return
		case <-ticker.C:
			if n := sessions.Sweep(); n > 0 {
				log.Info("idle sessions evicted", zap.Int("count", n))
			}
		}
	}
}
