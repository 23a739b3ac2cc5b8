package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Storage backend names accepted by STORAGE_BACKEND.
const (
	BackendBolt     = "bolt"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Config aggregates all runtime settings required by the application.
type Config struct {
	AppName     string
	Environment string
	HTTP        HTTPConfig
	Storage     StorageConfig
	Auth        AuthConfig
	Context     ContextConfig
	Logger      LoggerConfig
	Migrations  MigrationsConfig
	Uptime      UptimeConfig
}

type HTTPConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type StorageConfig struct {
	Backend  string
	Bolt     BoltConfig
	Redis    RedisConfig
	Database DatabaseConfig
}

type BoltConfig struct {
	Path   string
	Bucket string
}

type RedisConfig struct {
	URL      string
	Password string
	DB       int
	Prefix   string
}

type DatabaseConfig struct {
	URL             string
	Host            string
	Port            string
	Name            string
	User            string
	Password        string
	MaxOpenConns    int
	MaxIdleConns    int
	MaxConnLifetime time.Duration
	SSLMode         string
}

// AuthConfig guards mutating routes. An empty secret disables the guard;
// this is a single-user app and auth is opt-in.
type AuthConfig struct {
	Secret string
	Issuer string
}

type ContextConfig struct {
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level    string
	Encoding string
}

type MigrationsConfig struct {
	Enabled bool
	Path    string
}

type UptimeConfig struct {
	HeartbeatInterval time.Duration
}

// Load reads configuration from environment variables (optionally .env)
// and applies sane defaults so the service can boot in any environment.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		AppName:     getString("APP_NAME", "todo-backend"),
		Environment: getString("APP_ENV", "development"),
		HTTP: HTTPConfig{
			Host:         getString("SERVER_HOST", "0.0.0.0"),
			Port:         getString("SERVER_PORT", "8080"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
		},
		Storage: StorageConfig{
			Backend: getString("STORAGE_BACKEND", BackendBolt),
			Bolt: BoltConfig{
				Path:   getString("BOLTDB_PATH", "./data/todo.db"),
				Bucket: getString("BOLTDB_BUCKET", "todo"),
			},
			Redis: RedisConfig{
				URL:      getString("REDIS_URL", "redis://localhost:6379"),
				Password: os.Getenv("REDIS_PASSWORD"),
				DB:       getInt("REDIS_DB", 0),
				Prefix:   getString("REDIS_PREFIX", ""),
			},
			Database: DatabaseConfig{
				URL:             os.Getenv("DATABASE_URL"),
				Host:            getString("DB_HOST", "localhost"),
				Port:            getString("DB_PORT", "5432"),
				Name:            getString("DB_NAME", "todo_db"),
				User:            getString("DB_USER", "todo_user"),
				Password:        os.Getenv("DB_PASSWORD"),
				MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 10),
				MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 5),
				MaxConnLifetime: getDuration("DB_CONN_LIFETIME", time.Hour),
				SSLMode:         getString("DB_SSLMODE", "disable"),
			},
		},
		Auth: AuthConfig{
			Secret: os.Getenv("AUTH_SECRET"),
			Issuer: getString("AUTH_ISSUER", "todo-backend"),
		},
		Context: ContextConfig{
			RequestTimeout:  getDuration("REQUEST_TIMEOUT_SECONDS", 5*time.Second),
			ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT_SECONDS", 15*time.Second),
		},
		Logger: LoggerConfig{
			Level:    getString("LOG_LEVEL", "info"),
			Encoding: getString("LOG_ENCODING", "json"),
		},
		Migrations: MigrationsConfig{
			Enabled: getBool("RUN_MIGRATIONS", true),
			Path:    getString("MIGRATIONS_PATH", "./assets/migrations"),
		},
		Uptime: UptimeConfig{
			HeartbeatInterval: getDuration("UPTIME_HEARTBEAT_SECONDS", time.Second),
		},
	}

	switch cfg.Storage.Backend {
	case BackendBolt, BackendRedis, BackendPostgres:
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	if cfg.Storage.Database.URL == "" {
		cfg.Storage.Database.URL = buildPostgresURL(cfg)
	}

	return cfg, nil
}

// MustLoad panics if configuration cannot be loaded.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func buildPostgresURL(cfg *Config) string {
	db := cfg.Storage.Database
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		db.User,
		db.Password,
		db.Host,
		db.Port,
		db.Name,
		db.SSLMode,
	)
}

func getString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
		if seconds, err := strconv.Atoi(val); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}

// Address returns the HTTP listen address for the fasthttp server.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%s", c.HTTP.Host, c.HTTP.Port)
}
