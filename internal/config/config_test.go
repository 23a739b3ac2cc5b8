package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Storage.Backend != BackendBolt {
		t.Errorf("default backend = %q, want bolt", cfg.Storage.Backend)
	}
	if cfg.Storage.Bolt.Path != "./data/todo.db" {
		t.Errorf("bolt path = %q", cfg.Storage.Bolt.Path)
	}
	if cfg.Context.ShutdownTimeout != 15*time.Second {
		t.Errorf("shutdown timeout = %v", cfg.Context.ShutdownTimeout)
	}
	if cfg.Address() == "" {
		t.Error("Address() should not be empty")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", BackendRedis)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("UPTIME_HEARTBEAT_SECONDS", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Storage.Backend != BackendRedis {
		t.Errorf("backend = %q, want redis", cfg.Storage.Backend)
	}
	if cfg.HTTP.Port != "9090" {
		t.Errorf("port = %q, want 9090", cfg.HTTP.Port)
	}
	if cfg.Uptime.HeartbeatInterval != 5*time.Second {
		t.Errorf("heartbeat = %v, want 5s", cfg.Uptime.HeartbeatInterval)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "etcd")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}
