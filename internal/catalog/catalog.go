package catalog

import (
	"context"
	"fmt"
	"time"

	pkgerrors "github.com/pawpantry/storefront-backend/pkg/errors"
	"github.com/pawpantry/storefront-backend/pkg/logger"
	"github.com/pawpantry/storefront-backend/pkg/metrics"
	"go.uber.org/multierr"
)

// Catalog is the ordered, read-only product list loaded at startup. It is
// safe for concurrent use once constructed.
type Catalog struct {
	source   string
	products []Product
	index    map[int]int
	facets   Facets
}

// New builds a catalog over products, keeping their order.
func New(source string, products []Product) *Catalog {
	c := &Catalog{
		source:   source,
		products: make([]Product, len(products)),
		index:    make(map[int]int, len(products)),
	}
	copy(c.products, products)
	for i, p := range c.products {
		c.index[p.ID] = i
	}
	c.facets = BuildFacets(c.products)
	return c
}

// Empty returns a catalog with no products.
func Empty(source string) *Catalog {
	return New(source, nil)
}

// Load performs the single startup fetch. A failed fetch is logged and
// yields an empty catalog; nothing is retried.
func Load(ctx context.Context, src Source, logg *logger.Logger, m *metrics.CatalogMetrics) *Catalog {
	name := "unknown"
	if src != nil {
		name = src.Name()
	}
	if logg != nil {
		ctx = logg.WithField(ctx, "catalog_source", name)
	}

	start := time.Now()
	products, err := fetch(ctx, src)
	if err != nil {
		m.ObserveLoad(name, 0, time.Since(start), err)
		if logg != nil {
			logg.Error(ctx, "catalog fetch failed, serving empty catalog", err)
		}
		return Empty(name)
	}

	valid, rejected := Sanitize(products)
	if rejected != nil && logg != nil {
		logg.WarnErr(logg.WithField(ctx, "rejected", len(products)-len(valid)), "catalog contains invalid products", rejected)
	}

	m.ObserveLoad(name, len(valid), time.Since(start), nil)
	if logg != nil {
		logg.Info(logg.WithField(ctx, "products", len(valid)), "catalog loaded")
	}
	return New(name, valid)
}

func fetch(ctx context.Context, src Source) (products []Product, err error) {
	if src == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "catalog source is nil")
	}
	defer func() {
		if r := recover(); r != nil {
			err = pkgerrors.New(pkgerrors.CodeDependency, fmt.Sprintf("catalog source panicked: %v", r))
		}
	}()
	products, err = src.Fetch(ctx)
	if err != nil && pkgerrors.As(err) == nil {
		err = pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetch catalog")
	}
	return products, err
}

// Sanitize drops products that fail validation or repeat an earlier id.
// The returned error aggregates every rejection.
func Sanitize(products []Product) ([]Product, error) {
	out := make([]Product, 0, len(products))
	seen := make(map[int]bool, len(products))
	var errs error
	for _, p := range products {
		if err := p.Validate(); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if seen[p.ID] {
			errs = multierr.Append(errs, pkgerrors.New(pkgerrors.CodeConflict, fmt.Sprintf("duplicate product id %d", p.ID)))
			continue
		}
		seen[p.ID] = true
		out = append(out, p)
	}
	return out, errs
}

// Source names where the catalog came from.
func (c *Catalog) Source() string {
	return c.source
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Products returns the catalog in its original order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// ProductByID looks a product up by id.
func (c *Catalog) ProductByID(id int) (Product, bool) {
	i, ok := c.index[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// Facets returns the distinct filterable values of the catalog.
func (c *Catalog) Facets() Facets {
	return c.facets
}

// PriceBounds returns the catalog's min and max price.
func (c *Catalog) PriceBounds() PriceRange {
	return c.facets.PriceRange
}

// Filter returns the products matching s in catalog order.
func (c *Catalog) Filter(s FilterState) []Product {
	return Filter(c.products, s)
}

// View returns one page of the products matching s.
func (c *Catalog) View(s FilterState, page, size int) Page {
	return View(c.products, s, page, size)
}
