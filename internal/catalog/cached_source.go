package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pawpantry/storefront-backend/pkg/logger"
)

type snapshotCache interface {
	Lookup(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	CatalogSnapshotKey(source string) string
}

// CachedSource keeps a JSON snapshot of another source's products in Redis
// so restarts within ttl skip the upstream fetch. Cache failures fall back to
// the upstream source.
type CachedSource struct {
	inner Source
	cache snapshotCache
	ttl   time.Duration
	logg  *logger.Logger
}

func NewCachedSource(inner Source, cache snapshotCache, ttl time.Duration, logg *logger.Logger) *CachedSource {
	return &CachedSource{inner: inner, cache: cache, ttl: ttl, logg: logg}
}

func (s *CachedSource) Name() string { return s.inner.Name() }

func (s *CachedSource) Fetch(ctx context.Context) ([]Product, error) {
	key := s.cache.CatalogSnapshotKey(s.inner.Name())

	raw, ok, err := s.cache.Lookup(ctx, key)
	switch {
	case err != nil:
		s.warn(ctx, "catalog cache lookup failed", err)
	case ok:
		var products []Product
		if err := json.Unmarshal([]byte(raw), &products); err != nil {
			s.warn(ctx, "catalog cache entry unreadable", err)
			break
		}
		return products, nil
	}

	products, err := s.inner.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(products)
	if err == nil {
		err = s.cache.Set(ctx, key, string(payload), s.ttl)
	}
	if err != nil {
		s.warn(ctx, "catalog cache write failed", err)
	}
	return products, nil
}

func (s *CachedSource) warn(ctx context.Context, msg string, err error) {
	if s.logg != nil {
		s.logg.WarnErr(ctx, msg, err)
	}
}
