package storefront

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawpantry/storefront-backend/internal/cart"
	"github.com/pawpantry/storefront-backend/internal/catalog"
	"github.com/pawpantry/storefront-backend/pkg/enums"
	pkgerrors "github.com/pawpantry/storefront-backend/pkg/errors"
)

func sampleCatalog() *catalog.Catalog {
	return catalog.New("embedded", catalog.SampleProducts())
}

func productIDs(products []catalog.Product) []int {
	out := make([]int, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestNewSessionSeedsPriceBounds(t *testing.T) {
	t.Parallel()

	s := NewSession(context.Background(), sampleCatalog(), cart.NewMemoryStore(), Options{})

	f := s.Filters()
	require.NotNil(t, f.PriceRange)
	assert.Equal(t, catalog.PriceRange{Min: 85, Max: 4200}, *f.PriceRange)
	assert.Equal(t, 2, s.TotalPages())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, productIDs(s.PageItems()))
}

func TestSessionFilterByPetType(t *testing.T) {
	t.Parallel()

	s := NewSession(context.Background(), sampleCatalog(), nil, Options{})
	cats := []enums.PetType{enums.PetTypeCat}
	require.NoError(t, s.SetFilters(catalog.FilterPatch{PetTypes: &cats}))

	assert.Equal(t, []int{2, 4, 8, 9}, productIDs(s.Filtered()))
	assert.Equal(t, 1, s.TotalPages())
	assert.Equal(t, []int{2, 4, 8, 9}, productIDs(s.PageItems()))
}

func TestSessionPageIsClampedAfterFiltering(t *testing.T) {
	t.Parallel()

	s := NewSession(context.Background(), sampleCatalog(), nil, Options{})
	require.NoError(t, s.SetPage(2))
	assert.Equal(t, []int{7, 8, 9, 10, 11, 12}, productIDs(s.PageItems()))

	cats := []enums.PetType{enums.PetTypeCat}
	require.NoError(t, s.SetFilters(catalog.FilterPatch{PetTypes: &cats}))
	assert.Equal(t, 1, s.Page())
	assert.Equal(t, []int{2, 4, 8, 9}, productIDs(s.PageItems()))

	err := s.SetPage(0)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestSessionRejectsInvertedPriceRange(t *testing.T) {
	t.Parallel()

	s := NewSession(context.Background(), sampleCatalog(), nil, Options{})
	before := s.Filters()

	err := s.SetFilters(catalog.FilterPatch{PriceRange: &catalog.PriceRange{Min: 500, Max: 100}})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
	assert.Equal(t, before, s.Filters())
}

func TestSessionSearchAndReset(t *testing.T) {
	t.Parallel()

	s := NewSession(context.Background(), sampleCatalog(), nil, Options{PageSize: 2})
	s.SetSearchQuery("royal canin")
	assert.Equal(t, []int{1, 5}, productIDs(s.Filtered()))

	require.NoError(t, s.SetFilters(catalog.FilterPatch{PriceRange: &catalog.PriceRange{Min: 85, Max: 120}}))
	require.NoError(t, s.SetPage(3))

	s.ResetFilters()
	f := s.Filters()
	assert.Empty(t, f.Query)
	assert.Empty(t, f.PetTypes)
	assert.Equal(t, catalog.PriceRange{Min: 85, Max: 4200}, *f.PriceRange)
	assert.Equal(t, 1, s.Page())
	assert.Equal(t, 6, s.TotalPages())
}

func TestSessionEmptyCatalog(t *testing.T) {
	t.Parallel()

	s := NewSession(context.Background(), catalog.Empty("embedded"), nil, Options{})

	assert.Equal(t, catalog.DefaultPriceRange(), *s.Filters().PriceRange)
	assert.Equal(t, 0, s.TotalPages())
	assert.Equal(t, 1, s.Page())
	assert.NotNil(t, s.PageItems())
	assert.Empty(t, s.PageItems())
}

func TestSessionCartRestoredOnConstruction(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := cart.NewMemoryStore()

	first := NewSession(ctx, sampleCatalog(), store, Options{})
	require.NoError(t, first.AddToCart(ctx, 9))
	require.NoError(t, first.AddToCart(ctx, 9))
	first.DecrementCartItem(ctx, 9)

	second := NewSession(ctx, sampleCatalog(), store, Options{})
	c := second.Cart()
	assert.Equal(t, 1, c.QuantityOf(9))
	assert.Equal(t, 1, c.TotalCount())
	assert.InDelta(t, 85.0, c.TotalValue(), 1e-9)

	second.UpdateCartQuantity(ctx, 9, 4)
	second.IncrementCartItem(ctx, 9)
	assert.Equal(t, 5, c.QuantityOf(9))

	second.RemoveFromCart(ctx, 9)
	assert.False(t, c.Contains(9))

	require.NoError(t, second.AddToCart(ctx, 1))
	second.ClearCart(ctx)
	assert.Equal(t, 0, c.TotalCount())
}

func TestSessionAddUnknownProduct(t *testing.T) {
	t.Parallel()

	s := NewSession(context.Background(), sampleCatalog(), nil, Options{})
	err := s.AddToCart(context.Background(), 404)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
	assert.Equal(t, 0, s.Cart().TotalCount())
}

func TestSessionUsesConfiguredStorageKey(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := cart.NewMemoryStore()
	s := NewSession(ctx, sampleCatalog(), store, Options{StorageKey: "shopper-1:cart"})
	require.NoError(t, s.AddToCart(ctx, 2))

	_, ok, err := store.Get(ctx, "shopper-1:cart")
	require.NoError(t, err)
	assert.True(t, ok)
}
