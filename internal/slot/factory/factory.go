// Package slotfactory builds the slot.Provider selected by configuration.
package slotfactory

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/blobkeeper/internal/common"
	"github.com/dmitrijs2005/blobkeeper/internal/config"
	"github.com/dmitrijs2005/blobkeeper/internal/filex"
	"github.com/dmitrijs2005/blobkeeper/internal/slot"
	"github.com/dmitrijs2005/blobkeeper/internal/slot/bolt"
	"github.com/dmitrijs2005/blobkeeper/internal/slot/memory"
	"github.com/dmitrijs2005/blobkeeper/internal/slot/postgres"
	"github.com/dmitrijs2005/blobkeeper/internal/slot/redis"
	"github.com/dmitrijs2005/blobkeeper/internal/slot/s3"
	"github.com/dmitrijs2005/blobkeeper/internal/slot/sqlite"
)

// Backend names accepted by Open.
const (
	Memory   = "memory"
	SQLite   = "sqlite"
	Postgres = "postgres"
	Bolt     = "bolt"
	Redis    = "redis"
	S3       = "s3"
)

// CloseFunc releases whatever Open acquired.
type CloseFunc func() error

func noClose() error { return nil }

// isPlainPath reports whether dsn names a file on disk rather than an
// in-memory database or a "file:" URI.
func isPlainPath(dsn string) bool {
	return dsn != "" && dsn != ":memory:" && !strings.HasPrefix(dsn, "file:")
}

// Open returns the provider for cfg.Backend together with its close func.
// The caller must call the close func once done, even for the memory backend.
func Open(ctx context.Context, cfg *config.Config) (slot.Provider, CloseFunc, error) {
	switch strings.ToLower(cfg.Backend) {
	case Memory:
		return memory.New(), noClose, nil

	case SQLite:
		if isPlainPath(cfg.SQLitePath) {
			if _, err := filex.EnsureParentDir(cfg.SQLitePath); err != nil {
				return nil, nil, err
			}
		}
		p, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite %s: %w", cfg.SQLitePath, err)
		}
		return p, p.Close, nil

	case Postgres:
		p, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		return p, p.Close, nil

	case Bolt:
		if _, err := filex.EnsureParentDir(cfg.BoltPath); err != nil {
			return nil, nil, err
		}
		p, err := bolt.Open(cfg.BoltPath, cfg.BoltBucket)
		if err != nil {
			return nil, nil, err
		}
		return p, p.Close, nil

	case Redis:
		p, err := redis.Open(ctx, redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisPrefix,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("open redis %s: %w", cfg.RedisAddr, err)
		}
		return p, p.Close, nil

	case S3:
		p, err := s3.Open(ctx, s3.Options{
			Region:       cfg.S3Region,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
			Bucket:       cfg.S3Bucket,
			BaseEndpoint: cfg.S3BaseEndpoint,
			Prefix:       cfg.S3Prefix,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("open s3: %w", err)
		}
		return p, noClose, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", common.ErrUnknownBackend, cfg.Backend)
	}
}
