package repository

import "context"

// Storage keys owned by this service. Each collaborator writes exactly one.
const (
	TasksKey = "todo:tasks"
	ThemeKey = "todo:theme"
)

// KV is the persistent key-value capability consumed by the task and theme
// stores. Get returns domain.ErrKeyNotFound when the key has never been set.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Pinger is implemented by KV backends that can report reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}
