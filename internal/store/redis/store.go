package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dart-sh/dart/internal/domain"
)

const (
	// DefaultSnapshotTTL bounds how long a persisted snapshot outlives the
	// process that wrote it.
	DefaultSnapshotTTL = 48 * time.Hour
	// DefaultCacheTTL is the TTL for cached query resolutions.
	DefaultCacheTTL = 24 * time.Hour
)

// Options configures the redis connection.
type Options struct {
	Addr         string
	User         string
	Password     string
	DB           int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolSize     int
	PingTimeout  time.Duration
}

// Store persists entry snapshots and caches query resolutions. It is a
// best-effort layer: the in-memory snapshot is always the primary source.
type Store struct {
	client *redis.Client
}

// Connect dials redis and verifies the connection with a single ping.
func Connect(opts Options) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Username:     opts.User,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  opts.DialTimeout,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		PoolSize:     opts.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), opts.PingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", opts.Addr, err)
	}

	return &Store{client: client}, nil
}

// NewStore wraps an existing client. Used by tests.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}

// Ping checks the connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// persistedEntry is the wire form of a database entry. Kept separate from
// domain.Entry so the domain model can evolve without silently changing the
// stored format.
type persistedEntry struct {
	Name        string   `json:"name"`
	Kind        string   `json:"kind"`
	Target      string   `json:"target"`
	Keyword     string   `json:"keyword,omitempty"`
	Escape      bool     `json:"escape,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Description string   `json:"description,omitempty"`
	Icon        string   `json:"icon,omitempty"`
}

// persistedSnapshot is the complete stored payload: the entry list plus the
// file-level settings that were active when it was built, so a restart
// serves the same result bound as before.
type persistedSnapshot struct {
	MaxResults int              `json:"max_results,omitempty"`
	Entries    []persistedEntry `json:"entries"`
}

// SaveSnapshot persists the whole database under a single key. The write is
// all-or-nothing: a reader never observes a partial entry list.
func (s *Store) SaveSnapshot(ctx context.Context, db *domain.Database, settings domain.Settings) error {
	data, err := marshalSnapshot(db, settings)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := s.client.Set(ctx, SnapshotKey(), data, DefaultSnapshotTTL).Err(); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot restores the last persisted database and its settings.
// Returns nil without error when no snapshot exists.
func (s *Store) LoadSnapshot(ctx context.Context) (*domain.Database, domain.Settings, error) {
	data, err := s.client.Get(ctx, SnapshotKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.Settings{}, nil
		}
		return nil, domain.Settings{}, fmt.Errorf("failed to get snapshot: %w", err)
	}
	return unmarshalSnapshot(data)
}

func marshalSnapshot(db *domain.Database, settings domain.Settings) ([]byte, error) {
	entries := db.Entries()
	out := make([]persistedEntry, len(entries))
	for i, e := range entries {
		out[i] = persistedEntry{
			Name:        e.Name,
			Kind:        e.Target.Kind.String(),
			Target:      e.Target.Value,
			Keyword:     e.Keyword,
			Escape:      e.Escape,
			Tags:        e.Tags,
			Description: e.Description,
			Icon:        e.Icon,
		}
	}
	return json.Marshal(persistedSnapshot{
		MaxResults: settings.MaxResults,
		Entries:    out,
	})
}

func unmarshalSnapshot(data []byte) (*domain.Database, domain.Settings, error) {
	var raw persistedSnapshot
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, domain.Settings{}, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	out := make([]domain.Entry, len(raw.Entries))
	for i, p := range raw.Entries {
		out[i] = domain.Entry{
			Name:        p.Name,
			Target:      domain.Target{Kind: parseKind(p.Kind), Value: p.Target},
			Keyword:     p.Keyword,
			Escape:      p.Escape,
			Tags:        p.Tags,
			Description: p.Description,
			Icon:        p.Icon,
		}
	}
	return domain.NewDatabase(out), domain.Settings{MaxResults: raw.MaxResults}, nil
}

func parseKind(s string) domain.TargetKind {
	switch s {
	case "system":
		return domain.KindSystem
	case "url":
		return domain.KindURL
	default:
		return domain.KindLocation
	}
}
