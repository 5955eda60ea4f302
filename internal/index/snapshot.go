package index

import (
	"sync"
	"time"

	"github.com/dart-sh/dart/internal/domain"
)

// Snapshot holds the currently installed database and hands it out to the
// query path. The database itself is immutable; reloads swap the whole value
// under the lock, so a query in flight observes either the old or the new
// database in its entirety, never a half-built one.
type Snapshot struct {
	mu         sync.RWMutex
	db         *domain.Database
	settings   domain.Settings
	lastReload time.Time
}

// New creates an empty snapshot holder. Current returns nil until the first
// Install.
func New() *Snapshot {
	return &Snapshot{}
}

// Install replaces the installed database and its file-level settings.
func (s *Snapshot) Install(db *domain.Database, settings domain.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.db = db
	s.settings = settings
	s.lastReload = time.Now()
}

// Current returns the installed database, or nil before the first install.
func (s *Snapshot) Current() *domain.Database {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.db
}

// Settings returns the file-level settings of the installed database.
func (s *Snapshot) Settings() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.settings
}

// Count returns the number of entries in the installed database.
func (s *Snapshot) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.db.Len()
}

// LastReload returns the time of the last successful install.
func (s *Snapshot) LastReload() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastReload
}
