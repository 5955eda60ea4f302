package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dart-sh/dart/internal/config"
	"github.com/dart-sh/dart/internal/httpserver"
	"github.com/dart-sh/dart/internal/httpserver/deps"
	"github.com/dart-sh/dart/internal/index"
	"github.com/dart-sh/dart/internal/logger"
	"github.com/dart-sh/dart/internal/scheduler"
	redisstore "github.com/dart-sh/dart/internal/store/redis"
	"github.com/dart-sh/dart/internal/version"
)

type App struct {
	cfg      *config.Config
	logger   logger.Logger
	server   *httpserver.Server
	store    *redisstore.Store
	snapshot *index.Snapshot
	reloader *scheduler.Reloader
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	snapshot := index.New()

	// Redis is optional. When it is down we run from the entry file alone.
	var store *redisstore.Store
	if cfg.RedisAddr != "" {
		loggerClient.Infof("connecting to redis at %s", cfg.RedisAddr)
		s, err := redisstore.Connect(redisstore.Options{
			Addr:         cfg.RedisAddr,
			User:         cfg.RedisUser,
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			DialTimeout:  cfg.RedisDT,
			ReadTimeout:  cfg.RedisRT,
			WriteTimeout: cfg.RedisWT,
			PoolSize:     cfg.RedisPoolSize,
			PingTimeout:  cfg.RedisPingTimeout,
		})
		if err != nil {
			loggerClient.Warn("redis unavailable, snapshot persistence disabled",
				logger.Error(err))
		} else {
			store = s
			// Serve the last persisted snapshot until the entry file
			// parses.
			syncer := scheduler.NewSyncer(store, snapshot, loggerClient)
			if err := syncer.Sync(context.Background()); err != nil {
				loggerClient.Warn("failed to sync snapshot from redis",
					logger.Error(err))
			}
		}
	} else {
		loggerClient.Info("redis not configured, snapshot persistence disabled")
	}

	reloadTrigger := make(chan struct{}, 1)

	reloader := scheduler.NewReloader(
		cfg.EntryFile,
		cfg.BookmarkFile,
		store,
		snapshot,
		loggerClient,
		cfg.ReloadInterval,
		reloadTrigger,
	)

	d := deps.Deps{
		Logger:        loggerClient,
		StartTime:     time.Now(),
		Version:       version.Version,
		Commit:        version.Commit,
		BuildDate:     version.BuildDate,
		GoVersion:     version.GoVersion,
		AllowedHosts:  cfg.AllowedHosts,
		AllowedCIDRS:  cfg.AllowedCIDRS,
		TrustProxy:    cfg.TrustProxy,
		Snapshot:      snapshot,
		Store:         store,
		MaxResults:    cfg.MaxResults,
		ReloadTrigger: reloadTrigger,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:      cfg,
		logger:   loggerClient,
		server:   server,
		store:    store,
		snapshot: snapshot,
		reloader: reloader,
	}
}

func (a *App) Run() error {
	a.logger.Infof("starting dart %s on %s (commit=%s, built=%s, go=%s)",
		version.Version, a.cfg.ListenPort, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.reloader.Start(ctx); err != nil {
		return fmt.Errorf("failed to start reloader: %w", err)
	}
	a.logger.Info("entry reloader started",
		logger.Duration("interval", a.cfg.ReloadInterval))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	a.reloader.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		}
	}

	a.logger.Info("dart stopped cleanly")
	return nil
}
