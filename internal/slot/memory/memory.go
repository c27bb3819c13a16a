// Package memory provides an in-process slot.Provider. It is the test double
// for the repository and the backend used when nothing is configured.
package memory

import (
	"context"
	"sort"

	gocache "github.com/patrickmn/go-cache"
)

// Provider keeps slots in a go-cache instance with expiry disabled.
type Provider struct {
	c *gocache.Cache
}

func New() *Provider {
	return &Provider{c: gocache.New(gocache.NoExpiration, 0)}
}

func (p *Provider) GetItem(_ context.Context, key string) (string, bool, error) {
	v, ok := p.c.Get(key)
	if !ok {
		return "", false, nil
	}
	s, _ := v.(string)
	return s, true, nil
}

func (p *Provider) SetItem(_ context.Context, key string, value string) error {
	p.c.Set(key, value, gocache.NoExpiration)
	return nil
}

func (p *Provider) RemoveItem(_ context.Context, key string) error {
	p.c.Delete(key)
	return nil
}

// Len reports the number of slots held.
func (p *Provider) Len() int {
	return p.c.ItemCount()
}

// Key returns the index-th slot name in sorted order, or "" past the end.
func (p *Provider) Key(index int) string {
	keys := p.Keys()
	if index < 0 || index >= len(keys) {
		return ""
	}
	return keys[index]
}

// Keys lists all slot names in sorted order.
func (p *Provider) Keys() []string {
	items := p.c.Items()
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clear drops every slot.
func (p *Provider) Clear() {
	p.c.Flush()
}
