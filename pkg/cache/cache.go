// Package cache stores generated puzzles and rendered artifacts.
//
// # Backends
//
//   - [FileCache]: zstd-compressed files under a directory (CLI default)
//   - [RedisCache]: a shared Redis instance
//   - [MongoCache]: a MongoDB collection with a TTL index
//   - [NullCache]: stores nothing
//
// [New] picks a backend from [Options]. Keys come from a [Keyer], so two
// runs with the same generation options share a puzzle, and two renders of
// the same puzzle with the same settings share an artifact.
package cache

import (
	"context"
	"time"

	bserrors "github.com/matzehuels/brickstack/pkg/errors"
)

// Cache lifetimes.
const (
	TTLPuzzle   = 30 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte store with per-entry expiry. A zero ttl never expires.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Clearer is implemented by caches that can drop every entry at once.
// Clear returns the number of entries removed.
type Clearer interface {
	Clear(ctx context.Context) (int, error)
}

// Backend names accepted by [New].
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
	BackendNone  = "none"
)

// Options selects and configures a backend.
type Options struct {
	Backend string

	Dir string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	MongoURI        string
	MongoDatabase   string
	MongoCollection string
}

// New opens the configured backend. An empty backend means file.
func New(ctx context.Context, opts Options) (Cache, error) {
	switch opts.Backend {
	case "", BackendFile:
		if opts.Dir == "" {
			return nil, bserrors.New(bserrors.ErrCodeInvalidConfig, "file cache needs a directory")
		}
		c, err := NewFileCache(opts.Dir)
		if err != nil {
			return nil, err
		}
		return c, nil
	case BackendRedis:
		c, err := NewRedisCache(ctx, RedisOptions{Addr: opts.RedisAddr, Password: opts.RedisPassword, DB: opts.RedisDB})
		if err != nil {
			return nil, err
		}
		return c, nil
	case BackendMongo:
		c, err := NewMongoCache(ctx, MongoOptions{URI: opts.MongoURI, Database: opts.MongoDatabase, Collection: opts.MongoCollection})
		if err != nil {
			return nil, err
		}
		return c, nil
	case BackendNone:
		return NewNullCache(), nil
	}
	return nil, bserrors.New(bserrors.ErrCodeInvalidConfig,
		"unknown cache backend %q (must be one of: file, redis, mongo, none)", opts.Backend)
}
