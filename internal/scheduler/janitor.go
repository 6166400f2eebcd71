package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/MrSnakeDoc/linkhub/internal/logger"
)

// DefaultSweepInterval is used when the configured interval is not positive.
const DefaultSweepInterval = time.Minute

// Sweeper reclaims expired keys and reports how many it removed.
type Sweeper interface {
	Sweep() int
}

// Janitor periodically reclaims expired sessions from the in-memory store.
// Expired keys are already invisible to readers; sweeping only frees memory.
type Janitor struct {
	store    Sweeper
	logger   logger.Logger
	interval time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// NewJanitor creates a janitor for store.
func NewJanitor(store Sweeper, log logger.Logger, interval time.Duration) *Janitor {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}

	return &Janitor{
		store:    store,
		logger:   log,
		interval: interval,
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start runs the sweep loop in the background until Stop is called or ctx ends.
func (j *Janitor) Start(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	go func() {
		defer close(j.done)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				j.Sweep()
			case <-j.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	j.logger.Info("memory store janitor started",
		logger.Duration("interval", j.interval))
}

// Stop ends the loop and waits for it to exit. Safe to call more than once,
// but only after Start.
func (j *Janitor) Stop() {
	j.stopOnce.Do(func() { close(j.stopCh) })
	<-j.done
}

// Sweep runs one pass and returns the number of reclaimed keys.
func (j *Janitor) Sweep() int {
	n := j.store.Sweep()
	if n > 0 {
		j.logger.Info("expired keys reclaimed", logger.Int("count", n))
	} else {
		j.logger.Debug("no expired keys to reclaim")
	}
	return n
}
