package scheduler

import (
	"context"

	"github.com/dart-sh/dart/internal/index"
	"github.com/dart-sh/dart/internal/logger"
	redisstore "github.com/dart-sh/dart/internal/store/redis"
)

// Syncer restores the persisted snapshot from redis on startup, so the
// service can answer queries before the first file parse.
type Syncer struct {
	store    *redisstore.Store
	snapshot *index.Snapshot
	logger   logger.Logger
}

// NewSyncer creates a startup syncer.
func NewSyncer(store *redisstore.Store, snapshot *index.Snapshot, log logger.Logger) *Syncer {
	return &Syncer{
		store:    store,
		snapshot: snapshot,
		logger:   log,
	}
}

// Sync installs the persisted snapshot, if any, along with the file-level
// settings it was built with. A missing snapshot is not an error.
func (s *Syncer) Sync(ctx context.Context) error {
	db, settings, err := s.store.LoadSnapshot(ctx)
	if err != nil {
		return err
	}
	if db == nil {
		s.logger.Info("no persisted snapshot in redis")
		return nil
	}

	s.snapshot.Install(db, settings)
	s.logger.Info("restored snapshot from redis",
		logger.Int("entries", db.Len()))
	return nil
}
