package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/pawpantry/storefront-backend/pkg/logger"
	"github.com/pawpantry/storefront-backend/pkg/metrics"
)

func TestCartIDIssuesWhenMissing(t *testing.T) {
	var seen string
	handler := CartID(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = CartIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if seen == "" {
		t.Fatal("expected a cart id to be issued")
	}
	if got := rec.Header().Get(CartIDHeader); got != seen {
		t.Fatalf("expected header %q to echo %q", got, seen)
	}
}

func TestCartIDKeepsValidHeader(t *testing.T) {
	var seen string
	handler := CartID(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = CartIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(CartIDHeader, "  shopper_42  ")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if seen != "shopper_42" {
		t.Fatalf("expected shopper_42, got %q", seen)
	}
}

func TestCartIDReplacesUnsafeHeader(t *testing.T) {
	var seen string
	handler := CartID(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = CartIDFromContext(r.Context())
	}))

	for _, bad := range []string{"../../etc", "a:b", strings.Repeat("x", 65)} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(CartIDHeader, bad)
		handler.ServeHTTP(httptest.NewRecorder(), req)
		if seen == bad || seen == "" {
			t.Fatalf("expected %q to be replaced, got %q", bad, seen)
		}
	}
}

func TestRecovererWritesInternalError(t *testing.T) {
	var logs bytes.Buffer
	logg := logger.New(logger.Options{ServiceName: "test", Output: &logs})
	handler := Recoverer(logg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("kibble spill")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(logs.String(), "panic.recovered") {
		t.Fatalf("expected panic log, got %s", logs.String())
	}
}

func TestRequestIDPropagates(t *testing.T) {
	handler := RequestID(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "req-1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if got := rec.Header().Get(requestIDHeader); got != "req-1" {
		t.Fatalf("expected req-1, got %q", got)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Header().Get(requestIDHeader) == "" {
		t.Fatal("expected a generated request id")
	}
}

func TestLoggingRecordsStatus(t *testing.T) {
	var logs bytes.Buffer
	logg := logger.New(logger.Options{ServiceName: "test", Output: &logs})
	handler := Logging(logg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/brew", nil))

	out := logs.String()
	if !strings.Contains(out, "request.complete") || !strings.Contains(out, `"status":418`) {
		t.Fatalf("unexpected log output %s", out)
	}
}

func TestMetricsUsesRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewHTTPMetrics(reg)

	r := chi.NewRouter()
	r.Use(Metrics(m))
	r.Get("/api/v1/products/{productId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, id := range []string{"1", "2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/products/"+id, nil))
	}

	if got := testutil.CollectAndCount(reg, "http_requests_total"); got != 1 {
		t.Fatalf("expected one series, got %d", got)
	}
}
