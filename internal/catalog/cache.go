package catalog

import (
	"context"
	"encoding/json"
	"time"

	pkgerrors "github.com/viniciusmachado/adega-backend/pkg/errors"
	"github.com/viniciusmachado/adega-backend/pkg/logger"
	"github.com/viniciusmachado/adega-backend/pkg/redis"
)

// SnapshotStore is the slice of the redis client the cache depends on.
type SnapshotStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	CatalogKey(parts ...string) string
}

// Cache decorates a Source with a redis snapshot of the full product list.
// The catalog is small enough to cache as one document. Redis failures fall
// through to the underlying source.
type Cache struct {
	source Source
	store  SnapshotStore
	ttl    time.Duration
	logg   *logger.Logger
}

// NewCache wires the cache decorator.
func NewCache(source Source, store SnapshotStore, ttl time.Duration, logg *logger.Logger) (*Cache, error) {
	if source == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "catalog source required")
	}
	if store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "snapshot store required")
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Cache{source: source, store: store, ttl: ttl, logg: logg}, nil
}

// Products returns the cached snapshot when fresh, otherwise reloads from the
// source and refreshes the snapshot.
func (c *Cache) Products(ctx context.Context) ([]Product, error) {
	key := c.store.CatalogKey("products")

	raw, err := c.store.Get(ctx, key)
	if err == nil {
		var products []Product
		if unmarshalErr := json.Unmarshal([]byte(raw), &products); unmarshalErr == nil {
			return products, nil
		}
		// Corrupt snapshot: drop it and reload.
		_ = c.store.Del(ctx, key)
	} else if !redis.IsMiss(err) && c.logg != nil {
		warnCtx := c.logg.WithField(ctx, "error", err.Error())
		c.logg.Warn(warnCtx, "catalog cache read failed, falling through to source")
	}

	products, err := c.source.Products(ctx)
	if err != nil {
		return nil, err
	}

	if encoded, marshalErr := json.Marshal(products); marshalErr == nil {
		if setErr := c.store.Set(ctx, key, encoded, c.ttl); setErr != nil && c.logg != nil {
			warnCtx := c.logg.WithField(ctx, "error", setErr.Error())
			c.logg.Warn(warnCtx, "catalog cache write failed")
		}
	}

	return products, nil
}

// Invalidate drops the snapshot so the next read hits the source.
func (c *Cache) Invalidate(ctx context.Context) error {
	return c.store.Del(ctx, c.store.CatalogKey("products"))
}
