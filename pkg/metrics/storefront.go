package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CatalogMetrics tracks catalog loads.
type CatalogMetrics struct {
	products *prometheus.GaugeVec
	failures *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewCatalogMetrics registers the catalog metrics on the provided registerer.
func NewCatalogMetrics(reg prometheus.Registerer) *CatalogMetrics {
	if reg == nil {
		return &CatalogMetrics{}
	}
	products := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "catalog_products",
		Help: "Products held by the loaded catalog.",
	}, []string{"source"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_load_failures_total",
		Help: "Catalog fetches that failed and left the catalog empty.",
	}, []string{"source"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "catalog_load_duration_seconds",
		Help:    "Duration of catalog fetches in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"source"})
	reg.MustRegister(products, failures, duration)
	return &CatalogMetrics{products: products, failures: failures, duration: duration}
}

// ObserveLoad records the outcome of one catalog fetch.
func (c *CatalogMetrics) ObserveLoad(source string, count int, elapsed time.Duration, err error) {
	if c == nil || c.products == nil {
		return
	}
	source = normalizeLabel(source)
	c.duration.WithLabelValues(source).Observe(elapsed.Seconds())
	if err != nil {
		c.failures.WithLabelValues(source).Inc()
	}
	c.products.WithLabelValues(source).Set(float64(count))
}

// CartMetrics tracks ledger mutations and persistence health.
type CartMetrics struct {
	mutations       *prometheus.CounterVec
	persistFailures *prometheus.CounterVec
	restoreFailures *prometheus.CounterVec
}

// NewCartMetrics registers the cart metrics on the provided registerer.
func NewCartMetrics(reg prometheus.Registerer) *CartMetrics {
	if reg == nil {
		return &CartMetrics{}
	}
	mutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_mutations_total",
		Help: "Cart ledger mutations that changed state, by operation.",
	}, []string{"op"})
	persistFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_persist_failures_total",
		Help: "Cart ledger writes the persistence store rejected.",
	}, []string{"store"})
	restoreFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_restore_failures_total",
		Help: "Cart ledgers that could not be restored and started empty.",
	}, []string{"store"})
	reg.MustRegister(mutations, persistFailures, restoreFailures)
	return &CartMetrics{
		mutations:       mutations,
		persistFailures: persistFailures,
		restoreFailures: restoreFailures,
	}
}

// IncMutation counts a state-changing ledger operation.
func (c *CartMetrics) IncMutation(op string) {
	if c == nil || c.mutations == nil {
		return
	}
	c.mutations.WithLabelValues(normalizeLabel(op)).Inc()
}

// IncPersistFailure counts a failed ledger write.
func (c *CartMetrics) IncPersistFailure(store string) {
	if c == nil || c.persistFailures == nil {
		return
	}
	c.persistFailures.WithLabelValues(normalizeLabel(store)).Inc()
}

// IncRestoreFailure counts a ledger that could not be restored.
func (c *CartMetrics) IncRestoreFailure(store string) {
	if c == nil || c.restoreFailures == nil {
		return
	}
	c.restoreFailures.WithLabelValues(normalizeLabel(store)).Inc()
}
