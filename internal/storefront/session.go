// Package storefront holds the browsing state of one shopper: the loaded
// catalog, the current filter selection and page, and the persisted cart.
package storefront

import (
	"context"

	"github.com/pawpantry/storefront-backend/internal/cart"
	"github.com/pawpantry/storefront-backend/internal/catalog"
	pkgerrors "github.com/pawpantry/storefront-backend/pkg/errors"
	"github.com/pawpantry/storefront-backend/pkg/pagination"
)

type Options struct {
	// PageSize defaults to pagination.DefaultPageSize.
	PageSize int
	// StorageKey defaults to cart.DefaultStorageKey.
	StorageKey string
	Cart       cart.Options
}

// Session is owned by whoever constructs it; nothing here is global.
// A Session is not safe for concurrent use.
type Session struct {
	catalog  *catalog.Catalog
	filters  catalog.FilterState
	page     int
	pageSize int
	cart     *cart.Cart
}

// NewSession restores the cart from store and seeds the price filter with
// the catalog's price bounds.
func NewSession(ctx context.Context, cat *catalog.Catalog, store cart.Store, opts Options) *Session {
	if cat == nil {
		cat = catalog.Empty("none")
	}
	key := opts.StorageKey
	if key == "" {
		key = cart.DefaultStorageKey
	}
	bounds := cat.PriceBounds()
	return &Session{
		catalog:  cat,
		filters:  catalog.FilterState{PriceRange: &bounds},
		page:     1,
		pageSize: pagination.NormalizePageSize(opts.PageSize),
		cart:     cart.Open(ctx, store, key, opts.Cart),
	}
}

func (s *Session) Catalog() *catalog.Catalog { return s.catalog }
func (s *Session) Cart() *cart.Cart          { return s.cart }
func (s *Session) PageSize() int             { return s.pageSize }

// Filters returns a copy of the current selection.
func (s *Session) Filters() catalog.FilterState {
	return s.filters.Clone()
}

// SetFilters merges the provided dimensions into the current selection.
// An inverted price range is rejected and leaves the state untouched.
func (s *Session) SetFilters(p catalog.FilterPatch) error {
	next := s.filters.Merge(p)
	if err := next.Validate(); err != nil {
		return err
	}
	s.filters = next
	return nil
}

// ResetFilters clears every dimension, restores the catalog price bounds
// and returns to the first page.
func (s *Session) ResetFilters() {
	bounds := s.catalog.PriceBounds()
	s.filters = catalog.FilterState{PriceRange: &bounds}
	s.page = 1
}

func (s *Session) SetSearchQuery(q string) {
	s.filters.Query = q
}

// SetPage stores the requested page. It is clamped whenever a view is
// derived, so an out of range value never yields a bogus window.
func (s *Session) SetPage(page int) error {
	if page < 1 {
		return pkgerrors.New(pkgerrors.CodeValidation, "page must be positive").
			WithDetails(map[string]any{"page": page})
	}
	s.page = page
	return nil
}

func (s *Session) SetPageSize(size int) {
	s.pageSize = pagination.NormalizePageSize(size)
}

// Page is the clamped current page.
func (s *Session) Page() int {
	return s.View().Page
}

func (s *Session) Filtered() []catalog.Product {
	return s.catalog.Filter(s.filters)
}

func (s *Session) TotalPages() int {
	return pagination.TotalPages(len(s.Filtered()), s.pageSize)
}

// View derives the filtered list, page count and window in one pass.
func (s *Session) View() catalog.Page {
	return s.catalog.View(s.filters, s.page, s.pageSize)
}

func (s *Session) PageItems() []catalog.Product {
	return s.View().Items
}

// AddToCart looks the product up in the loaded catalog before adding it.
func (s *Session) AddToCart(ctx context.Context, productID int) error {
	p, ok := s.catalog.ProductByID(productID)
	if !ok {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found").
			WithDetails(map[string]any{"product_id": productID})
	}
	s.cart.Add(ctx, p)
	return nil
}

func (s *Session) RemoveFromCart(ctx context.Context, productID int) {
	s.cart.Remove(ctx, productID)
}

func (s *Session) UpdateCartQuantity(ctx context.Context, productID, qty int) {
	s.cart.SetQuantity(ctx, productID, qty)
}

func (s *Session) IncrementCartItem(ctx context.Context, productID int) {
	s.cart.Increment(ctx, productID)
}

func (s *Session) DecrementCartItem(ctx context.Context, productID int) {
	s.cart.Decrement(ctx, productID)
}

func (s *Session) ClearCart(ctx context.Context) {
	s.cart.Clear(ctx)
}
