// Package bootstrap turns configuration into the storefront's runtime
// dependencies. Every binary under cmd/ builds its graph through here.
package bootstrap

import (
	"context"
	"fmt"

	"go.uber.org/multierr"

	"github.com/pawpantry/storefront-backend/internal/cart"
	"github.com/pawpantry/storefront-backend/internal/catalog"
	"github.com/pawpantry/storefront-backend/pkg/config"
	"github.com/pawpantry/storefront-backend/pkg/db"
	"github.com/pawpantry/storefront-backend/pkg/logger"
	"github.com/pawpantry/storefront-backend/pkg/metrics"
	"github.com/pawpantry/storefront-backend/pkg/migrate"
	"github.com/pawpantry/storefront-backend/pkg/redis"
)

// Resources holds the optional backing services. Either field may be nil.
type Resources struct {
	DB    *db.Client
	Redis *redis.Client
}

// Open connects to the database when a DSN is configured and to Redis when
// an address is configured. In dev with auto-migrate on, the embedded
// migrations run before Open returns.
func Open(ctx context.Context, cfg *config.Config, logg *logger.Logger) (*Resources, error) {
	res := &Resources{}

	if cfg.DB.DSN != "" {
		client, err := db.New(ctx, cfg.DB, cfg.FeatureFlags.UseSQLite, logg)
		if err != nil {
			return nil, fmt.Errorf("bootstrap database: %w", err)
		}
		res.DB = client
		if err := migrate.MaybeRunDev(ctx, cfg, logg, client); err != nil {
			return nil, multierr.Append(fmt.Errorf("dev migrations: %w", err), res.Close())
		}
	}

	if cfg.Redis.Configured() {
		client, err := redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			return nil, multierr.Append(fmt.Errorf("bootstrap redis: %w", err), res.Close())
		}
		res.Redis = client
	}

	return res, nil
}

// Close releases every opened resource, reporting all failures.
func (r *Resources) Close() error {
	if r == nil {
		return nil
	}
	var errs error
	if r.Redis != nil {
		errs = multierr.Append(errs, r.Redis.Close())
	}
	if r.DB != nil {
		errs = multierr.Append(errs, r.DB.Close())
	}
	return errs
}

// CatalogSource picks the configured product source. Remote sources are
// fronted by a Redis snapshot cache when Redis is available.
func CatalogSource(cfg *config.Config, res *Resources, logg *logger.Logger) (catalog.Source, error) {
	if res == nil {
		res = &Resources{}
	}

	var src catalog.Source
	switch cfg.Catalog.Source {
	case config.CatalogSourceEmbedded, "":
		return catalog.EmbeddedSource{}, nil
	case config.CatalogSourceHTTP:
		src = catalog.NewHTTPSource(cfg.Catalog.URL, cfg.Catalog.FetchTimeout)
	case config.CatalogSourceFile:
		src = catalog.NewFileSource(cfg.Catalog.File)
	case config.CatalogSourceDB:
		if res.DB == nil {
			return nil, fmt.Errorf("catalog source %q requires a database", cfg.Catalog.Source)
		}
		src = catalog.NewRepository(res.DB.DB())
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}

	if res.Redis != nil && cfg.Catalog.CacheTTL > 0 {
		src = catalog.NewCachedSource(src, res.Redis, cfg.Catalog.CacheTTL, logg)
	}
	return src, nil
}

// LoadCatalog resolves the source and performs the single startup fetch.
// Any failure leaves an empty catalog; the error has already been logged.
func LoadCatalog(ctx context.Context, cfg *config.Config, res *Resources, logg *logger.Logger, m *metrics.CatalogMetrics) *catalog.Catalog {
	src, err := CatalogSource(cfg, res, logg)
	if err != nil {
		if logg != nil {
			logg.Error(ctx, "catalog source unavailable", err)
		}
		return catalog.Empty(string(cfg.Catalog.Source))
	}

	if cfg.Catalog.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Catalog.FetchTimeout)
		defer cancel()
	}
	return catalog.Load(ctx, src, logg, m)
}

// CartStore picks the configured cart persistence. The returned name labels
// cart metrics.
func CartStore(cfg *config.Config, res *Resources) (cart.Store, string, error) {
	if res == nil {
		res = &Resources{}
	}

	switch cfg.Cart.Store {
	case config.CartStoreMemory, "":
		return cart.NewMemoryStore(), string(config.CartStoreMemory), nil
	case config.CartStoreNop:
		return cart.NopStore{}, string(config.CartStoreNop), nil
	case config.CartStoreRedis:
		if res.Redis == nil {
			return nil, "", fmt.Errorf("cart store %q requires redis", cfg.Cart.Store)
		}
		return cart.NewRedisStore(res.Redis, cfg.Cart.TTL), string(config.CartStoreRedis), nil
	case config.CartStoreDB:
		if res.DB == nil {
			return nil, "", fmt.Errorf("cart store %q requires a database", cfg.Cart.Store)
		}
		return cart.NewDBStore(res.DB.DB()), string(config.CartStoreDB), nil
	case config.CartStoreFile:
		store, err := cart.NewFileStore(cfg.Cart.Dir)
		if err != nil {
			return nil, "", err
		}
		return store, string(config.CartStoreFile), nil
	default:
		return nil, "", fmt.Errorf("unknown cart store %q", cfg.Cart.Store)
	}
}
