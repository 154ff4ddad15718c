package catalog

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/pawpantry/storefront-backend/pkg/enums"
	pkgerrors "github.com/pawpantry/storefront-backend/pkg/errors"
	"github.com/pawpantry/storefront-backend/pkg/logger"
	"github.com/pawpantry/storefront-backend/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

type failingSource struct{ err error }

func (failingSource) Name() string { return "failing" }

func (f failingSource) Fetch(context.Context) ([]Product, error) { return nil, f.err }

type panickingSource struct{}

func (panickingSource) Name() string { return "panicking" }

func (panickingSource) Fetch(context.Context) ([]Product, error) { panic("boom") }

func newTestLogger(buf *bytes.Buffer) *logger.Logger {
	return logger.New(logger.Options{ServiceName: "catalog-test", Level: zerolog.InfoLevel, Output: buf})
}

func TestLoad_Embedded(t *testing.T) {
	var buf bytes.Buffer
	c := Load(context.Background(), EmbeddedSource{}, newTestLogger(&buf), metrics.NewCatalogMetrics(prometheus.NewRegistry()))

	assert.Equal(t, 12, c.Len())
	assert.Equal(t, "embedded", c.Source())
	assert.Contains(t, buf.String(), "catalog loaded")

	p, ok := c.ProductByID(9)
	require.True(t, ok)
	assert.Equal(t, "Sheba Pleasure", p.Name)

	_, ok = c.ProductByID(404)
	assert.False(t, ok)

	assert.Equal(t, PriceRange{Min: 85, Max: 4200}, c.PriceBounds())
	assert.Equal(t, []int{2, 4, 8, 9}, ids(c.Filter(FilterState{PetTypes: []enums.PetType{enums.PetTypeCat}})))
}

func TestLoad_FailureYieldsEmptyCatalog(t *testing.T) {
	var buf bytes.Buffer
	c := Load(context.Background(), failingSource{err: errors.New("connection refused")}, newTestLogger(&buf), nil)

	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Products())
	assert.Equal(t, DefaultPriceRange(), c.PriceBounds())
	assert.Contains(t, buf.String(), "catalog fetch failed")

	page := c.View(FilterState{}, 1, 6)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.TotalPages)
}

func TestLoad_PanickingSourceIsContained(t *testing.T) {
	c := Load(context.Background(), panickingSource{}, nil, nil)
	assert.Equal(t, 0, c.Len())
}

func TestLoad_NilSource(t *testing.T) {
	c := Load(context.Background(), nil, nil, nil)
	assert.Equal(t, 0, c.Len())
}

func TestSanitize_DropsInvalidAndDuplicates(t *testing.T) {
	products := SampleProducts()[:3]
	dup := products[0]
	dup.Name = "Second listing"
	bad := products[1]
	bad.ID = 0
	bad.PetType = enums.PetType("dragon")

	valid, err := Sanitize(append(products, dup, bad))

	assert.Equal(t, []int{1, 2, 3}, ids(valid))
	require.Error(t, err)
	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	assert.True(t, pkgerrors.IsCode(errs[0], pkgerrors.CodeConflict))
	assert.True(t, pkgerrors.IsCode(errs[1], pkgerrors.CodeValidation))
}

func TestProductsReturnsCopy(t *testing.T) {
	c := New("static", SampleProducts())
	products := c.Products()
	products[0].Name = "mutated"

	p, _ := c.ProductByID(1)
	assert.Equal(t, "Royal Canin Maxi Adult", p.Name)
}

func TestProductValidate(t *testing.T) {
	for _, p := range SampleProducts() {
		require.NoError(t, p.Validate(), "sample %d", p.ID)
	}

	p := SampleProducts()[0]
	bad := -1.0
	p.Rating = &bad
	p.PackageSize.Unit = "lb"
	err := p.Validate()
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	details, ok := typed.Details().(map[string]any)
	require.True(t, ok)
	assert.Len(t, details["problems"], 2)
}

func TestMockResource(t *testing.T) {
	products, err := MockResource(ResourceProducts)
	require.NoError(t, err)
	assert.Len(t, products, 12)

	_, err = MockResource("orders")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
	assert.Equal(t, "resource not found", pkgerrors.As(err).Message())
}
