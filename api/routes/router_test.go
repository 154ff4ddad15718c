package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/pawpantry/storefront-backend/api/middleware"
	"github.com/pawpantry/storefront-backend/internal/cart"
	"github.com/pawpantry/storefront-backend/internal/catalog"
	"github.com/pawpantry/storefront-backend/pkg/config"
	"github.com/pawpantry/storefront-backend/pkg/logger"
	"github.com/pawpantry/storefront-backend/pkg/metrics"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type countingLimiter struct {
	mu     sync.Mutex
	counts map[string]int64
}

func (c *countingLimiter) IncrWithTTL(_ context.Context, key string, _ time.Duration) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.counts == nil {
		c.counts = map[string]int64{}
	}
	c.counts[key]++
	return c.counts[key], nil
}

func testConfig() *config.Config {
	return &config.Config{
		App:     config.AppConfig{Env: "dev"},
		Catalog: config.CatalogConfig{PageSize: 6},
		Cart:    config.CartConfig{StorageKey: "cart", RateLimitWindow: time.Minute, RateLimitCartLimit: 2},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

func newTestRouter(t *testing.T, limiter rateLimiterStore) http.Handler {
	t.Helper()

	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	reg := prometheus.NewRegistry()
	cat := catalog.New("embedded", catalog.SampleProducts())
	svc, err := cart.NewService(cat, cart.NewMemoryStore(), cart.DefaultStorageKey, cart.Options{
		Logger:  logg,
		Metrics: metrics.NewCartMetrics(reg),
	})
	if err != nil {
		t.Fatalf("new cart service: %v", err)
	}

	return NewRouter(Deps{
		Config:      testConfig(),
		Logger:      logg,
		Catalog:     cat,
		Cart:        svc,
		DB:          stubPinger{},
		RateLimiter: limiter,
		Gatherer:    reg,
		HTTPMetrics: metrics.NewHTTPMetrics(reg),
	})
}

func serve(router http.Handler, method, target, cartID, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if cartID != "" {
		req.Header.Set(middleware.CartIDHeader, cartID)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthRoutes(t *testing.T) {
	router := newTestRouter(t, nil)

	for _, target := range []string{"/health/live", "/health/ready"} {
		if rec := serve(router, http.MethodGet, target, "", ""); rec.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200 got %d", target, rec.Code)
		}
	}
}

func TestProductRoutes(t *testing.T) {
	router := newTestRouter(t, nil)

	cases := map[string]int{
		"/api/v1/products":              http.StatusOK,
		"/api/v1/products?pet_type=cat": http.StatusOK,
		"/api/v1/products/facets":       http.StatusOK,
		"/api/v1/products/9":            http.StatusOK,
		"/api/v1/products/99":           http.StatusNotFound,
		"/api/mocks/products":           http.StatusOK,
		"/api/mocks/unknown":            http.StatusNotFound,
	}
	for target, status := range cases {
		if rec := serve(router, http.MethodGet, target, "", ""); rec.Code != status {
			t.Fatalf("GET %s: expected %d got %d", target, status, rec.Code)
		}
	}
}

func TestCartRoutesRoundTrip(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := serve(router, http.MethodPost, "/api/v1/cart/items", "", `{"product_id":9}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
	cartID := rec.Header().Get(middleware.CartIDHeader)
	if cartID == "" {
		t.Fatal("expected an issued cart id")
	}

	serve(router, http.MethodPost, "/api/v1/cart/items", cartID, `{"product_id":9}`)
	serve(router, http.MethodPost, "/api/v1/cart/items/9/decrement", cartID, "")

	rec = serve(router, http.MethodGet, "/api/v1/cart", cartID, "")
	var env struct {
		Data cart.View `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if env.Data.TotalCount != 1 || env.Data.TotalValue != 85 {
		t.Fatalf("unexpected cart %+v", env.Data)
	}
}

func TestCartMutationsAreRateLimited(t *testing.T) {
	router := newTestRouter(t, &countingLimiter{})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := serve(router, http.MethodPost, "/api/v1/cart/items", "limited", `{"product_id":1}`)
		codes = append(codes, rec.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("unexpected status sequence %v", codes)
	}

	if rec := serve(router, http.MethodGet, "/api/v1/cart", "limited", ""); rec.Code != http.StatusOK {
		t.Fatalf("expected reads to bypass the limiter, got %d", rec.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t, nil)

	serve(router, http.MethodGet, "/api/v1/products", "", "")
	rec := serve(router, http.MethodGet, "/metrics", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `http_requests_total{method="GET",route="/api/v1/products`) {
		t.Fatalf("expected request counter in exposition, got %s", rec.Body.String())
	}
}
