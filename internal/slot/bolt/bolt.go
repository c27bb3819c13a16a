// Package bolt provides a slot.Provider on top of a bbolt file. All slots
// live in one bucket; keys and values are stored as raw bytes.
package bolt

import (
	"context"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

// DefaultBucket is used when Open is given an empty bucket name.
const DefaultBucket = "slots"

// Provider is an adapter for a bolt database.
type Provider struct {
	bdb    *bolt.DB
	bucket []byte
}

// Open opens a database, creating it and the bucket if they don't exist.
func Open(path string, bucket string) (*Provider, error) {
	if bucket == "" {
		bucket = DefaultBucket
	}
	opts := &bolt.Options{Timeout: 10 * time.Second}
	bdb, err := bolt.Open(path, 0600, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}
	err = bdb.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))
		return err
	})
	if err != nil {
		_ = bdb.Close()
		return nil, fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}
	return &Provider{bdb: bdb, bucket: []byte(bucket)}, nil
}

// Close closes the db.
func (p *Provider) Close() error {
	return p.bdb.Close()
}

// GetItem copies the value out of the read transaction, since bolt memory is
// only valid while the transaction is open.
func (p *Provider) GetItem(_ context.Context, key string) (value string, ok bool, err error) {
	err = p.bdb.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(p.bucket)
		if b == nil {
			return nil
		}
		v := b.Get([]byte(key))
		if v == nil {
			return nil
		}
		value, ok = string(v), true
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("failed to get slot[%s]: %w", key, err)
	}
	return
}

func (p *Provider) SetItem(_ context.Context, key string, value string) error {
	err := p.bdb.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(p.bucket)
		if err != nil {
			return err
		}
		return b.Put([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("failed to set slot[%s]: %w", key, err)
	}
	return nil
}

func (p *Provider) RemoveItem(_ context.Context, key string) error {
	err := p.bdb.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(p.bucket)
		if b == nil {
			return nil
		}
		return b.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("failed to delete slot[%s]: %w", key, err)
	}
	return nil
}

// Keys lists all slot names in byte order.
func (p *Provider) Keys(_ context.Context) ([]string, error) {
	var keys []string
	err := p.bdb.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(p.bucket)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	return keys, err
}
