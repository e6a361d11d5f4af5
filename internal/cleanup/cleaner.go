// Package cleanup runs the periodic transcript retention worker.
package cleanup

import (
	"context"
	"log/slog"
	"time"
)

// Purger removes stale transcripts older than the given window
type Purger interface {
	PurgeStaleTranscripts(ctx context.Context, olderThan time.Duration) (int64, error)
}

// Cleaner periodically purges transcripts past the retention window
type Cleaner struct {
	purger    Purger
	interval  time.Duration
	retention time.Duration
}

// NewCleaner creates a cleanup worker.
func NewCleaner(purger Purger, interval, retention time.Duration) *Cleaner {
	if interval <= 0 {
		interval = time.Hour
	}

	return &Cleaner{
		purger:    purger,
		interval:  interval,
		retention: retention,
	}
}

// Start begins the cleanup worker in a goroutine
func (c *Cleaner) Start(ctx context.Context) {
	go c.run(ctx)
}

func (c *Cleaner) run(ctx context.Context) {
	slog.Info("cleanup worker started", "interval", c.interval, "retention", c.retention)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	// Run immediately on start
	c.cleanup(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("cleanup worker stopped")
			return
		case <-ticker.C:
			c.cleanup(ctx)
		}
	}
}

func (c *Cleaner) cleanup(ctx context.Context) {
	slog.Debug("running cleanup cycle")

	purged, err := c.purger.PurgeStaleTranscripts(ctx, c.retention)
	if err != nil {
		slog.Error("failed to purge stale transcripts", "error", err)
		return
	}

	if purged > 0 {
		slog.Info("purged stale transcripts", "count", purged)
	} else {
		slog.Debug("no stale transcripts found")
	}
}
