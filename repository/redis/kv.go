package redis

import (
	"context"

	redislib "github.com/redis/go-redis/v9"

	"github.com/fastygo/todo/domain"
	"github.com/fastygo/todo/repository"
)

type kvStore struct {
	client *redislib.Client
	prefix string
}

// NewKV creates a Redis-backed key-value store. Values never expire; the
// task and theme keys are meant to survive across sessions.
func NewKV(client *redislib.Client, prefix string) repository.KV {
	return &kvStore{
		client: client,
		prefix: prefix,
	}
}

func (s *kvStore) Get(ctx context.Context, key string) (string, error) {
	result, err := s.client.Get(ctx, s.prefix+key).Result()
	if err != nil {
		if err == redislib.Nil {
			return "", domain.ErrKeyNotFound
		}
		return "", err
	}
	return result, nil
}

func (s *kvStore) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, s.prefix+key, value, 0).Err()
}

func (s *kvStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.prefix+key).Err()
}

func (s *kvStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
