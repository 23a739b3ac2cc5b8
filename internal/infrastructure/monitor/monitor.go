package monitor

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/fastygo/todo/repository"
	"github.com/fastygo/todo/usecase/taskstore"
)

// Monitor periodically probes the active key-value backend and records the
// task count for health reporting.
type Monitor struct {
	kv      repository.KV
	backend string
	tasks   *taskstore.Store

	status   Status
	mu       sync.RWMutex
	interval time.Duration
	stopCh   chan struct{}
	logger   *zap.Logger
}

func New(kv repository.KV, backend string, tasks *taskstore.Store, interval time.Duration, logger *zap.Logger) *Monitor {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		kv:       kv,
		backend:  backend,
		tasks:    tasks,
		interval: interval,
		stopCh:   make(chan struct{}),
		logger:   logger,
	}
}

func (m *Monitor) Start() {
	go m.loop()
}

func (m *Monitor) Stop() {
	close(m.stopCh)
}

func (m *Monitor) IsOnline() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status.Storage
}

func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

func (m *Monitor) loop() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.refresh()
	for {
		select {
		case <-ticker.C:
			m.refresh()
		case <-m.stopCh:
			return
		}
	}
}

func (m *Monitor) refresh() {
	status := Status{
		Storage:   m.checkStorage(),
		Backend:   m.backend,
		LastCheck: time.Now(),
	}
	if m.tasks != nil {
		status.TaskCount = m.tasks.Len()
	}

	m.mu.Lock()
	m.status = status
	m.mu.Unlock()
}

func (m *Monitor) checkStorage() bool {
	pinger, ok := m.kv.(repository.Pinger)
	if !ok {
		return m.kv != nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := pinger.Ping(ctx); err != nil {
		m.logger.Warn("storage probe failed", zap.String("backend", m.backend), zap.Error(err))
		return false
	}
	return true
}
