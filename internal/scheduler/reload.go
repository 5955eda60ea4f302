package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/dart-sh/dart/internal/domain"
	"github.com/dart-sh/dart/internal/index"
	"github.com/dart-sh/dart/internal/logger"
	"github.com/dart-sh/dart/internal/sources/bookmarks"
	"github.com/dart-sh/dart/internal/store/entries"
	redisstore "github.com/dart-sh/dart/internal/store/redis"
)

// Reloader rebuilds the entry database from its sources, periodically and on
// manual trigger. A failed reload keeps the previously installed database
// serving queries; only a fully successful parse swaps the snapshot.
type Reloader struct {
	loader         *entries.Loader
	bookmarkLoader *bookmarks.Loader // nil when no bookmark file is configured
	bookmarkMapper *bookmarks.Mapper
	store          *redisstore.Store // nil when redis is disabled
	snapshot       *index.Snapshot
	logger         logger.Logger
	interval       time.Duration
	stopCh         chan struct{}
	manualTrigger  chan struct{}
}

// NewReloader creates a reloader. bookmarkFile may be empty to disable the
// bookmark source, store may be nil to disable persistence.
func NewReloader(
	entryFile string,
	bookmarkFile string,
	store *redisstore.Store,
	snapshot *index.Snapshot,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *Reloader {
	r := &Reloader{
		loader:        entries.NewLoader(entryFile),
		store:         store,
		snapshot:      snapshot,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
	if bookmarkFile != "" {
		r.bookmarkLoader = bookmarks.NewLoader(bookmarkFile)
		r.bookmarkMapper = bookmarks.NewMapper()
	}
	return r
}

// Start loads the database once, then keeps it fresh until the context is
// done or Stop is called. The initial load must succeed unless a persisted
// snapshot is already installed.
func (r *Reloader) Start(ctx context.Context) error {
	if err := r.Reload(ctx); err != nil {
		if r.snapshot.Current() == nil {
			return fmt.Errorf("initial load failed: %w", err)
		}
		// A snapshot restored from redis keeps serving until the file
		// parses again.
		r.logger.Warn("initial load failed, serving persisted snapshot",
			logger.Error(err))
	}

	ticker := time.NewTicker(r.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := r.Reload(ctx); err != nil {
					r.logger.Error("reload failed, keeping previous database",
						logger.Error(err))
				}
			case <-r.manualTrigger:
				r.logger.Info("manual reload triggered")
				if err := r.Reload(ctx); err != nil {
					r.logger.Error("reload failed, keeping previous database",
						logger.Error(err))
				}
			case <-r.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the periodic reload.
func (r *Reloader) Stop() {
	close(r.stopCh)
}

// Reload parses all sources and, only if every source succeeds, installs the
// new database atomically. The previous database is never mutated.
func (r *Reloader) Reload(ctx context.Context) error {
	all, settings, err := r.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load entries: %w", err)
	}

	if r.bookmarkLoader != nil {
		config, err := r.bookmarkLoader.Load()
		if err != nil {
			return fmt.Errorf("failed to load bookmarks: %w", err)
		}
		marks := r.bookmarkMapper.MapEntries(config)
		r.logger.Debug("loaded bookmarks", logger.Int("count", len(marks)))
		all = append(all, marks...)
	}

	db := domain.NewDatabase(all)
	r.snapshot.Install(db, settings)
	r.logger.Info("entry database installed",
		logger.Int("entries", db.Len()))

	// Persist best effort; memory is the primary source.
	if r.store != nil {
		if err := r.store.SaveSnapshot(ctx, db, settings); err != nil {
			r.logger.Warn("failed to persist snapshot to redis",
				logger.Error(err))
		}
		if err := r.store.FlushCache(ctx); err != nil {
			r.logger.Warn("failed to flush resolution cache",
				logger.Error(err))
		}
	}

	return nil
}
