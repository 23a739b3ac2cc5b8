// Package uptime tracks how long the current session has been running.
package uptime

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Counter measures elapsed session time and emits a periodic heartbeat tick.
type Counter struct {
	logger   *zap.Logger
	cron     *cron.Cron
	interval time.Duration

	mu      sync.RWMutex
	started time.Time
	ticks   int64
}

// New builds a counter that ticks at the given interval once started.
func New(interval time.Duration, logger *zap.Logger) *Counter {
	if interval <= 0 {
		interval = time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Counter{
		logger:   logger,
		interval: interval,
		started:  time.Now(),
		cron:     cron.New(cron.WithSeconds()),
	}

	if _, err := c.cron.AddFunc(heartbeatSpec(interval), c.tick); err != nil {
		logger.Error("heartbeat schedule rejected", zap.Error(err))
	}

	return c
}

// heartbeatSpec formats the cron spec without truncating sub-second
// intervals.
func heartbeatSpec(interval time.Duration) string {
	return fmt.Sprintf("@every %s", interval)
}

// Start resets the session origin and begins ticking.
func (c *Counter) Start() {
	c.mu.Lock()
	c.started = time.Now()
	c.ticks = 0
	c.mu.Unlock()
	c.cron.Start()
}

// Stop halts the heartbeat. Elapsed keeps advancing from the session origin.
func (c *Counter) Stop() {
	ctx := c.cron.Stop()
	<-ctx.Done()
}

// Elapsed returns the time since the session origin.
func (c *Counter) Elapsed() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return time.Since(c.started)
}

// Ticks returns how many heartbeats have fired this session.
func (c *Counter) Ticks() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ticks
}

func (c *Counter) tick() {
	c.mu.Lock()
	c.ticks++
	n := c.ticks
	c.mu.Unlock()

	if n%60 == 0 {
		c.logger.Debug("session heartbeat", zap.Int64("ticks", n))
	}
}
