package theme

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/fastygo/todo/domain"
	"github.com/fastygo/todo/repository"
)

// Manager owns the persisted color scheme. It holds exactly one storage key
// and never touches the task slot.
type Manager struct {
	kv     repository.KV
	logger *zap.Logger
	key    string

	mu      sync.RWMutex
	current domain.Theme
}

// New loads the stored theme, defaulting to light when the slot is absent or
// holds an unknown value.
func New(ctx context.Context, kv repository.KV, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Manager{
		kv:      kv,
		logger:  logger,
		key:     repository.ThemeKey,
		current: domain.ThemeLight,
	}

	raw, err := kv.Get(ctx, m.key)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			logger.Warn("theme load failed, using light", zap.Error(err))
		}
		return m
	}
	if stored := domain.Theme(raw); stored.Valid() {
		m.current = stored
	} else {
		logger.Warn("discarding unknown stored theme", zap.String("value", raw))
	}
	return m
}

// Current returns the active theme.
func (m *Manager) Current() domain.Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Set replaces the active theme and persists it. The write happens under
// the lock so the stored value always matches the in-memory one.
func (m *Manager) Set(ctx context.Context, t domain.Theme) error {
	if !t.Valid() {
		return domain.ErrInvalidTheme
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.current = t
	return m.persistLocked(ctx)
}

// Toggle switches between light and dark and persists the result.
func (m *Manager) Toggle(ctx context.Context) (domain.Theme, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.current = m.current.Opposite()
	if err := m.persistLocked(ctx); err != nil {
		return m.current, err
	}
	return m.current, nil
}

func (m *Manager) persistLocked(ctx context.Context) error {
	if err := m.kv.Set(ctx, m.key, string(m.current)); err != nil {
		m.logger.Error("theme persistence failed", zap.Error(err))
		return domain.WrapError(domain.ErrCodeInternal, "persist theme", err)
	}
	return nil
}
