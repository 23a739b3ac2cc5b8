package bolt

import (
	"context"

	boltdb "go.etcd.io/bbolt"

	"github.com/fastygo/todo/domain"
	"github.com/fastygo/todo/repository"
)

type kvStore struct {
	db     *boltdb.DB
	bucket []byte
}

// NewKV returns a BoltDB-backed key-value store. The bucket is created on
// first use if it does not exist yet.
func NewKV(db *boltdb.DB, bucket string) (repository.KV, error) {
	if bucket == "" {
		bucket = "todo"
	}
	if err := db.Update(func(tx *boltdb.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))
		return err
	}); err != nil {
		return nil, err
	}
	return &kvStore{db: db, bucket: []byte(bucket)}, nil
}

func (s *kvStore) Get(ctx context.Context, key string) (string, error) {
	if s == nil || s.db == nil {
		return "", boltdb.ErrDatabaseNotOpen
	}
	var value []byte
	err := s.db.View(func(tx *boltdb.Tx) error {
		if raw := tx.Bucket(s.bucket).Get([]byte(key)); raw != nil {
			value = append([]byte(nil), raw...)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	if value == nil {
		return "", domain.ErrKeyNotFound
	}
	return string(value), nil
}

func (s *kvStore) Set(ctx context.Context, key, value string) error {
	if s == nil || s.db == nil {
		return boltdb.ErrDatabaseNotOpen
	}
	return s.db.Update(func(tx *boltdb.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(key), []byte(value))
	})
}

func (s *kvStore) Delete(ctx context.Context, key string) error {
	if s == nil || s.db == nil {
		return boltdb.ErrDatabaseNotOpen
	}
	return s.db.Update(func(tx *boltdb.Tx) error {
		return tx.Bucket(s.bucket).Delete([]byte(key))
	})
}

// Ping verifies the database file is still readable.
func (s *kvStore) Ping(ctx context.Context) error {
	if s == nil || s.db == nil {
		return boltdb.ErrDatabaseNotOpen
	}
	return s.db.View(func(tx *boltdb.Tx) error { return nil })
}
