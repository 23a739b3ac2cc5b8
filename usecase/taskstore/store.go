package taskstore

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/fastygo/todo/domain"
	"github.com/fastygo/todo/repository"
)

// Store owns the task collection, the active filter, and the derived
// filtered view, and keeps the persistent key-value slot in sync with every
// structural change.
type Store struct {
	kv     repository.KV
	logger *zap.Logger
	key    string

	mu       sync.RWMutex
	tasks    []domain.Task
	filter   domain.Filter
	nextID   int64
	filtered []domain.Task
	stale    bool
}

// New creates a Store seeded from the persistent slot. A missing key,
// unreachable backend, or malformed payload all yield an empty collection;
// load problems are logged but never surfaced.
func New(ctx context.Context, kv repository.KV, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		kv:     kv,
		logger: logger,
		key:    repository.TasksKey,
		filter: domain.FilterAll,
		nextID: 1,
		stale:  true,
	}
	s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) {
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			s.logger.Warn("task load failed, starting empty", zap.Error(err))
		}
		return
	}

	var tasks []domain.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		s.logger.Warn("discarding malformed task payload", zap.Error(err))
		return
	}

	s.tasks = tasks
	for _, t := range tasks {
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
	s.logger.Info("tasks loaded", zap.Int("count", len(tasks)))
}

// Add appends a task with the trimmed title. A title that trims to empty is
// a silent no-op: no task, no error, no persistence write.
func (s *Store) Add(ctx context.Context, title string) (*domain.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := domain.Task{ID: s.nextID, Title: title}
	s.nextID++
	s.tasks = append(s.tasks, task)
	s.stale = true

	if err := s.persistLocked(ctx); err != nil {
		return &task, err
	}
	return &task, nil
}

// Remove deletes the task with the given id. A missing id is a silent no-op
// and does not dirty the persistent slot.
func (s *Store) Remove(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, t := range s.tasks {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	s.stale = true

	return s.persistLocked(ctx)
}

// Toggle flips the completed flag of the task with the given id and rewrites
// the persistent slot. Unlike Remove, a missing id is reported so callers can
// distinguish a stale reference.
func (s *Store) Toggle(ctx context.Context, id int64) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var task *domain.Task
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !s.tasks[i].Completed
			copied := s.tasks[i]
			task = &copied
			break
		}
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}
	s.stale = true

	if err := s.persistLocked(ctx); err != nil {
		return task, err
	}
	return task, nil
}

// SetFilter replaces the active filter. The filter is never persisted.
func (s *Store) SetFilter(f domain.Filter) error {
	if !f.Valid() {
		return domain.ErrInvalidFilter
	}
	s.mu.Lock()
	if s.filter != f {
		s.filter = f
		s.stale = true
	}
	s.mu.Unlock()
	return nil
}

// Filter returns the active filter.
func (s *Store) Filter() domain.Filter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

// Tasks returns a copy of the full collection in insertion order.
func (s *Store) Tasks() []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Task(nil), s.tasks...)
}

// Len returns the number of tasks held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// Filtered returns the derived view for the active filter, preserving
// insertion order. The view is cached and only recomputed after the
// collection or the filter changed.
func (s *Store) Filtered() []domain.Task {
	s.mu.Lock()
	if s.stale {
		s.filtered = s.filtered[:0]
		for _, t := range s.tasks {
			if s.filter.Matches(t) {
				s.filtered = append(s.filtered, t)
			}
		}
		s.stale = false
	}
	out := append([]domain.Task(nil), s.filtered...)
	s.mu.Unlock()
	return out
}

// persistLocked rewrites the persistent slot from the current collection.
// It must run under s.mu so a mutation and its write commit as one step and
// an older snapshot can never land after a newer one.
func (s *Store) persistLocked(ctx context.Context) error {
	payload, err := json.Marshal(s.tasks)
	if err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "encode tasks", err)
	}
	if err := s.kv.Set(ctx, s.key, string(payload)); err != nil {
		s.logger.Error("task persistence failed", zap.Error(err))
		return domain.WrapError(domain.ErrCodeInternal, "persist tasks", err)
	}
	return nil
}
