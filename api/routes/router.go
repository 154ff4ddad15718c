package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pawpantry/storefront-backend/api/controllers"
	cartcontrollers "github.com/pawpantry/storefront-backend/api/controllers/cart"
	"github.com/pawpantry/storefront-backend/api/middleware"
	"github.com/pawpantry/storefront-backend/api/validators"
	"github.com/pawpantry/storefront-backend/internal/cart"
	"github.com/pawpantry/storefront-backend/pkg/config"
	"github.com/pawpantry/storefront-backend/pkg/logger"
	"github.com/pawpantry/storefront-backend/pkg/metrics"
)

type rateLimiterStore interface {
	IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

// Deps groups what the router wires into handlers. Optional entries may
// be nil: DB and Redis are skipped by readiness, a nil Gatherer disables
// /metrics and a nil RateLimiter disables cart throttling.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	Catalog     controllers.CatalogReader
	Cart        cart.Service
	DB          controllers.Pinger
	Redis       controllers.Pinger
	RateLimiter rateLimiterStore
	Gatherer    prometheus.Gatherer
	HTTPMetrics *metrics.HTTPMetrics
}

func NewRouter(d Deps) http.Handler {
	cfg, logg := d.Config, d.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins),
		middleware.Metrics(d.HTTPMetrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg.App.Env))
		r.Get("/ready", controllers.HealthReady(cfg.App.Env, logg, map[string]controllers.Pinger{
			"db":    d.DB,
			"redis": d.Redis,
		}))
	})

	if cfg.Metrics.Enabled && d.Gatherer != nil {
		r.Method(http.MethodGet, cfg.Metrics.Path, promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Get("/api/mocks/{resource}", controllers.MockResource(logg))

	defaults := validators.CatalogQueryDefaults{
		PageSize: cfg.Catalog.PageSize,
	}
	cartPolicy := middleware.NewRateLimitPolicy(
		"cart",
		cfg.Cart.RateLimitWindow,
		cfg.Cart.RateLimitIPLimit,
		cfg.Cart.RateLimitCartLimit,
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductList(d.Catalog, defaults, logg))
			r.Get("/facets", controllers.ProductFacets(d.Catalog, logg))
			r.Get("/{productId}", controllers.ProductDetail(d.Catalog, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(middleware.CartID(logg))
			if d.RateLimiter != nil {
				r.Use(middleware.RateLimit(cartPolicy, d.RateLimiter, logg))
			}
			r.Get("/", cartcontrollers.CartFetch(d.Cart, logg))
			r.Delete("/", cartcontrollers.CartClear(d.Cart, logg))
			r.Route("/items", func(r chi.Router) {
				r.Post("/", cartcontrollers.CartAddItem(d.Cart, logg))
				r.Put("/{productId}", cartcontrollers.CartSetQuantity(d.Cart, logg))
				r.Delete("/{productId}", cartcontrollers.CartRemoveItem(d.Cart, logg))
				r.Post("/{productId}/increment", cartcontrollers.CartIncrement(d.Cart, logg))
				r.Post("/{productId}/decrement", cartcontrollers.CartDecrement(d.Cart, logg))
			})
		})
	})

	return r
}
