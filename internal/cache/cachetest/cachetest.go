// Package cachetest fornece um cache em memória para testes.
package cachetest

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/BruksfildServices01/vet-scheduler/internal/cache"
)

type Cache struct {
	mu         sync.Mutex
	items      map[string][]byte
	tombstones map[string]time.Time
	hits       int

	// Now pode ser trocado para simular a expiração das marcas.
	Now func() time.Time
}

func New() *Cache {
	return &Cache{
		items:      make(map[string][]byte),
		tombstones: make(map[string]time.Time),
		Now:        time.Now,
	}
}

func (c *Cache) Get(_ context.Context, key string, dest any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, ok := c.items[key]
	if !ok {
		return false, nil
	}
	c.hits++
	return true, json.Unmarshal(raw, dest)
}

func (c *Cache) Set(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if until, ok := c.tombstones[key]; ok {
		if c.Now().Before(until) {
			return nil
		}
		delete(c.tombstones, key)
	}
	c.items[key] = raw
	return nil
}

func (c *Cache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.items, k)
	}
	return nil
}

func (c *Cache) Evict(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	until := c.Now().Add(cache.TombstoneTTL)
	for _, k := range keys {
		delete(c.items, k)
		c.tombstones[k] = until
	}
	return nil
}

func (c *Cache) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.items[key]
	return ok
}

func (c *Cache) Hits() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits
}

var _ cache.Cache = (*Cache)(nil)
