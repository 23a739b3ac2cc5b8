package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/fastygo/todo/api/handler"
	"github.com/fastygo/todo/internal/config"
	boltInfra "github.com/fastygo/todo/internal/infrastructure/bolt"
	"github.com/fastygo/todo/internal/infrastructure/monitor"
	pgInfra "github.com/fastygo/todo/internal/infrastructure/postgres"
	redisInfra "github.com/fastygo/todo/internal/infrastructure/redis"
	"github.com/fastygo/todo/internal/middleware"
	"github.com/fastygo/todo/internal/router"
	"github.com/fastygo/todo/internal/services/lifecycle"
	"github.com/fastygo/todo/internal/services/uptime"
	"github.com/fastygo/todo/pkg/httpcontext"
	"github.com/fastygo/todo/pkg/logger"
	"github.com/fastygo/todo/repository"
	boltRepo "github.com/fastygo/todo/repository/bolt"
	pgRepo "github.com/fastygo/todo/repository/postgres"
	redisRepo "github.com/fastygo/todo/repository/redis"
	"github.com/fastygo/todo/usecase/taskstore"
	themeUC "github.com/fastygo/todo/usecase/theme"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	kv, err := openStorage(appCtx, cfg, manager, zapLogger)
	if err != nil {
		zapLogger.Fatal("storage initialization failed", zap.Error(err))
	}

	tasks := taskstore.New(appCtx, kv, zapLogger)
	themes := themeUC.New(appCtx, kv, zapLogger)

	counter := uptime.New(cfg.Uptime.HeartbeatInterval, zapLogger)
	counter.Start()
	manager.Register("uptime", func(ctx context.Context) error {
		counter.Stop()
		return nil
	})

	mon := monitor.New(kv, cfg.Storage.Backend, tasks, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Task:   apiHandler.NewTaskHandler(tasks, ctxAdapter, zapLogger),
		Theme:  apiHandler.NewThemeHandler(themes, ctxAdapter, zapLogger),
		Health: apiHandler.NewHealthHandler(mon, counter, ctxAdapter, zapLogger),
	}

	authMiddleware := middleware.BearerAuth(cfg.Auth.Secret, zapLogger)
	r := router.New(handlers, authMiddleware)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started",
			zap.String("address", cfg.Address()),
			zap.String("backend", cfg.Storage.Backend),
		)
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	if err := manager.Wait(appCtx); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}

// openStorage builds the key-value backend selected by configuration and
// registers its shutdown hook.
func openStorage(ctx context.Context, cfg *config.Config, manager *lifecycle.Manager, zapLogger *zap.Logger) (repository.KV, error) {
	switch cfg.Storage.Backend {
	case config.BackendBolt:
		db, err := boltInfra.Open(cfg.Storage.Bolt.Path, zapLogger)
		if err != nil {
			return nil, err
		}
		manager.Register("bolt", func(ctx context.Context) error {
			return db.Close()
		})
		return boltRepo.NewKV(db, cfg.Storage.Bolt.Bucket)

	case config.BackendRedis:
		client, err := redisInfra.NewClient(cfg.Storage.Redis)
		if err != nil {
			return nil, err
		}
		manager.Register("redis", func(ctx context.Context) error {
			return client.Close()
		})
		return redisRepo.NewKV(client, cfg.Storage.Redis.Prefix), nil

	case config.BackendPostgres:
		if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
			return nil, err
		}
		pool, err := pgInfra.NewPool(ctx, cfg.Storage.Database, zapLogger)
		if err != nil {
			return nil, err
		}
		manager.Register("postgres", func(ctx context.Context) error {
			pool.Close()
			return nil
		})
		return pgRepo.NewKV(pool), nil
	}

	return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}
