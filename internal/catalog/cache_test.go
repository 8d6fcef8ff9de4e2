package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/viniciusmachado/adega-backend/pkg/enums"
)

type stubSnapshotStore struct {
	value   string
	getErr  error
	setErr  error
	setKey  string
	setVal  any
	setTTL  time.Duration
	deleted []string
}

func (s *stubSnapshotStore) Get(context.Context, string) (string, error) {
	if s.getErr != nil {
		return "", s.getErr
	}
	return s.value, nil
}

func (s *stubSnapshotStore) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	s.setKey = key
	s.setVal = value
	s.setTTL = ttl
	return s.setErr
}

func (s *stubSnapshotStore) Del(_ context.Context, keys ...string) error {
	s.deleted = append(s.deleted, keys...)
	return nil
}

func (s *stubSnapshotStore) CatalogKey(parts ...string) string {
	return strings.Join(append([]string{"adega", "catalog"}, parts...), ":")
}

type countingSource struct {
	products []Product
	err      error
	calls    int
}

func (s *countingSource) Products(context.Context) ([]Product, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.products, nil
}

func cacheFixture() []Product {
	return []Product{
		product("Vodka Smirnoff 998ml", enums.ProductTypeDestilado, 10, true),
		product("Gelo 2kg", enums.ProductTypeGelo, 20, true),
	}
}

func decodeSnapshot(t *testing.T, value any) []Product {
	t.Helper()
	encoded, ok := value.([]byte)
	if !ok {
		t.Fatalf("expected snapshot bytes, got %T", value)
	}
	var products []Product
	if err := json.Unmarshal(encoded, &products); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	return products
}

func TestCacheMissLoadsSourceAndWritesBack(t *testing.T) {
	t.Parallel()

	source := &countingSource{products: cacheFixture()}
	store := &stubSnapshotStore{getErr: goredis.Nil}
	cache, err := NewCache(source, store, time.Minute, nil)
	if err != nil {
		t.Fatalf("new cache: %v", err)
	}

	products, err := cache.Products(context.Background())
	if err != nil {
		t.Fatalf("products: %v", err)
	}
	if len(products) != 2 || source.calls != 1 {
		t.Fatalf("expected one source load of 2 products, got %d products after %d calls", len(products), source.calls)
	}
	if store.setKey != "adega:catalog:products" {
		t.Fatalf("unexpected snapshot key %q", store.setKey)
	}
	if store.setTTL != time.Minute {
		t.Fatalf("expected ttl 1m got %s", store.setTTL)
	}
	if snapshot := decodeSnapshot(t, store.setVal); len(snapshot) != 2 {
		t.Fatalf("expected 2 products in snapshot, got %d", len(snapshot))
	}
}

func TestCacheHitSkipsSource(t *testing.T) {
	t.Parallel()

	encoded, err := json.Marshal(cacheFixture())
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	source := &countingSource{}
	store := &stubSnapshotStore{value: string(encoded)}
	cache, err := NewCache(source, store, time.Minute, nil)
	if err != nil {
		t.Fatalf("new cache: %v", err)
	}

	products, err := cache.Products(context.Background())
	if err != nil {
		t.Fatalf("products: %v", err)
	}
	if source.calls != 0 {
		t.Fatalf("expected no source load on hit, got %d calls", source.calls)
	}
	if len(products) != 2 || products[0].Name != "Vodka Smirnoff 998ml" {
		t.Fatalf("unexpected snapshot contents: %+v", products)
	}
}

func TestCacheReadFailureFallsThroughToSource(t *testing.T) {
	t.Parallel()

	source := &countingSource{products: cacheFixture()}
	store := &stubSnapshotStore{getErr: errors.New("connection refused")}
	cache, err := NewCache(source, store, time.Minute, nil)
	if err != nil {
		t.Fatalf("new cache: %v", err)
	}

	products, err := cache.Products(context.Background())
	if err != nil {
		t.Fatalf("products: %v", err)
	}
	if len(products) != 2 || source.calls != 1 {
		t.Fatalf("expected fall-through to source, got %d products after %d calls", len(products), source.calls)
	}
	if store.setKey == "" {
		t.Fatal("expected snapshot write-back after fall-through")
	}
}

func TestCacheCorruptSnapshotIsDroppedAndReloaded(t *testing.T) {
	t.Parallel()

	source := &countingSource{products: cacheFixture()}
	store := &stubSnapshotStore{value: "{not json"}
	cache, err := NewCache(source, store, time.Minute, nil)
	if err != nil {
		t.Fatalf("new cache: %v", err)
	}

	products, err := cache.Products(context.Background())
	if err != nil {
		t.Fatalf("products: %v", err)
	}
	if len(products) != 2 || source.calls != 1 {
		t.Fatalf("expected reload after corrupt snapshot, got %d products after %d calls", len(products), source.calls)
	}
	if len(store.deleted) != 1 || store.deleted[0] != "adega:catalog:products" {
		t.Fatalf("expected corrupt snapshot to be deleted, got %v", store.deleted)
	}
	if store.setKey == "" {
		t.Fatal("expected fresh snapshot write after reload")
	}
}

func TestCacheSourceErrorPropagates(t *testing.T) {
	t.Parallel()

	source := &countingSource{err: errors.New("catalog down")}
	store := &stubSnapshotStore{getErr: goredis.Nil}
	cache, err := NewCache(source, store, time.Minute, nil)
	if err != nil {
		t.Fatalf("new cache: %v", err)
	}

	if _, err := cache.Products(context.Background()); err == nil {
		t.Fatal("expected source error to propagate")
	}
	if store.setKey != "" {
		t.Fatal("must not write a snapshot when the source load failed")
	}
}

func TestCacheWriteFailureDoesNotAffectResult(t *testing.T) {
	t.Parallel()

	source := &countingSource{products: cacheFixture()}
	store := &stubSnapshotStore{getErr: goredis.Nil, setErr: errors.New("read only replica")}
	cache, err := NewCache(source, store, time.Minute, nil)
	if err != nil {
		t.Fatalf("new cache: %v", err)
	}

	products, err := cache.Products(context.Background())
	if err != nil {
		t.Fatalf("products: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected source products despite write failure, got %d", len(products))
	}
}

func TestInvalidateDeletesSnapshot(t *testing.T) {
	t.Parallel()

	store := &stubSnapshotStore{}
	cache, err := NewCache(&countingSource{}, store, time.Minute, nil)
	if err != nil {
		t.Fatalf("new cache: %v", err)
	}

	if err := cache.Invalidate(context.Background()); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if len(store.deleted) != 1 || store.deleted[0] != "adega:catalog:products" {
		t.Fatalf("expected snapshot key deleted, got %v", store.deleted)
	}
}
