// Package testutil provides in-memory test doubles.
package testutil

import (
	"context"
	"sync"

	"github.com/fastygo/todo/domain"
)

// FakeKV is an in-memory implementation of repository.KV for testing.
type FakeKV struct {
	mu   sync.RWMutex
	data map[string]string
	sets int

	// Error injection for testing
	GetErr error
	SetErr error
	DelErr error
}

// NewFakeKV creates an empty fake store.
func NewFakeKV() *FakeKV {
	return &FakeKV{data: make(map[string]string)}
}

// Seed stores a value without counting it as a write.
func (f *FakeKV) Seed(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
}

// Value returns the stored value and whether the key exists.
func (f *FakeKV) Value(key string) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.data[key]
	return v, ok
}

// SetCount returns how many Set calls were made.
func (f *FakeKV) SetCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.sets
}

func (f *FakeKV) Get(ctx context.Context, key string) (string, error) {
	if f.GetErr != nil {
		return "", f.GetErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.data[key]
	if !ok {
		return "", domain.ErrKeyNotFound
	}
	return v, nil
}

func (f *FakeKV) Set(ctx context.Context, key, value string) error {
	if f.SetErr != nil {
		return f.SetErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
	f.sets++
	return nil
}

func (f *FakeKV) Delete(ctx context.Context, key string) error {
	if f.DelErr != nil {
		return f.DelErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, key)
	return nil
}

// BlockingKV wraps FakeKV and parks the first Set until Release is called,
// so tests can hold a write in flight while issuing other operations.
type BlockingKV struct {
	*FakeKV
	// FirstWrite is closed when the first Set has begun.
	FirstWrite chan struct{}

	release chan struct{}
	once    sync.Once
}

// NewBlockingKV creates an empty store whose first Set blocks.
func NewBlockingKV() *BlockingKV {
	return &BlockingKV{
		FakeKV:     NewFakeKV(),
		FirstWrite: make(chan struct{}),
		release:    make(chan struct{}),
	}
}

// Release lets the parked Set proceed.
func (b *BlockingKV) Release() {
	close(b.release)
}

func (b *BlockingKV) Set(ctx context.Context, key, value string) error {
	first := false
	b.once.Do(func() { first = true })
	if first {
		close(b.FirstWrite)
		<-b.release
	}
	return b.FakeKV.Set(ctx, key, value)
}
