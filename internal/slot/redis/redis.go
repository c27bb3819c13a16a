// Package redis provides a slot.Provider backed by plain Redis string keys.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options configures Open.
type Options struct {
	Addr     string
	Password string
	DB       int
	// Prefix is prepended to every slot key as "<prefix>:<key>".
	Prefix string
}

// cmdable is the subset of redis.Cmdable the provider needs.
type cmdable interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type Provider struct {
	c      cmdable
	prefix string
	closer func() error
}

// New wraps an existing client. The caller keeps ownership of it.
func New(c cmdable, prefix string) *Provider {
	return &Provider{c: c, prefix: prefix}
}

// Open dials Redis and verifies the connection with a ping.
func Open(ctx context.Context, o Options) (*Provider, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     o.Addr,
		Password: o.Password,
		DB:       o.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return &Provider{c: rdb, prefix: o.Prefix, closer: rdb.Close}, nil
}

func (p *Provider) key(k string) string {
	if p.prefix == "" {
		return k
	}
	return p.prefix + ":" + k
}

func (p *Provider) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer()
}

func (p *Provider) GetItem(ctx context.Context, key string) (string, bool, error) {
	val, err := p.c.Get(ctx, p.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, true, nil
}

// SetItem stores the value without expiry.
func (p *Provider) SetItem(ctx context.Context, key string, value string) error {
	if err := p.c.Set(ctx, p.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (p *Provider) RemoveItem(ctx context.Context, key string) error {
	if err := p.c.Del(ctx, p.key(key)).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}
