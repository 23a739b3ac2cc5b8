package bolt

import (
	"os"
	"path/filepath"
	"time"

	boltdb "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

// Open initializes the BoltDB file, creating parent directories as needed.
func Open(path string, logger *zap.Logger) (*boltdb.DB, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := boltdb.Open(path, 0o600, &boltdb.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	logger.Info("bolt store opened", zap.String("path", path))
	return db, nil
}
