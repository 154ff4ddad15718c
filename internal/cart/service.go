package cart

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/pawpantry/storefront-backend/internal/catalog"
	pkgerrors "github.com/pawpantry/storefront-backend/pkg/errors"
)

const lockStripes = 64

type productLookup interface {
	ProductByID(id int) (catalog.Product, bool)
}

// Service exposes per-cart ledger operations over a shared store.
type Service interface {
	View(ctx context.Context, cartID string) (*View, error)
	Add(ctx context.Context, cartID string, productID int) (*View, error)
	SetQuantity(ctx context.Context, cartID string, productID, qty int) (*View, error)
	Increment(ctx context.Context, cartID string, productID int) (*View, error)
	Decrement(ctx context.Context, cartID string, productID int) (*View, error)
	Remove(ctx context.Context, cartID string, productID int) (*View, error)
	Clear(ctx context.Context, cartID string) (*View, error)
}

// Line is one cart entry with its subtotal.
type Line struct {
	Entry
	Subtotal float64 `json:"subtotal"`
}

// View is the read model returned after every cart operation.
type View struct {
	CartID     string  `json:"cart_id"`
	Items      []Line  `json:"items"`
	TotalCount int     `json:"total_count"`
	TotalValue float64 `json:"total_value"`
}

// NewView snapshots a cart.
func NewView(cartID string, c *Cart) *View {
	entries := c.Entries()
	lines := make([]Line, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, Line{Entry: e, Subtotal: e.Subtotal().InexactFloat64()})
	}
	return &View{
		CartID:     cartID,
		Items:      lines,
		TotalCount: c.TotalCount(),
		TotalValue: c.TotalValue(),
	}
}

type service struct {
	products   productLookup
	store      Store
	storageKey string
	opts       Options
	locks      [lockStripes]sync.Mutex
}

// NewService builds a cart service. Carts are restored from store on every
// call, so any store shared between processes keeps them consistent.
func NewService(products productLookup, store Store, storageKey string, opts Options) (Service, error) {
	if products == nil {
		return nil, fmt.Errorf("product lookup required")
	}
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if storageKey == "" {
		storageKey = DefaultStorageKey
	}
	return &service{
		products:   products,
		store:      store,
		storageKey: storageKey,
		opts:       opts,
	}, nil
}

func (s *service) View(ctx context.Context, cartID string) (*View, error) {
	return s.with(ctx, cartID, func(ctx context.Context, c *Cart) error { return nil })
}

func (s *service) Add(ctx context.Context, cartID string, productID int) (*View, error) {
	p, ok := s.products.ProductByID(productID)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found").
			WithDetails(map[string]any{"product_id": productID})
	}
	return s.with(ctx, cartID, func(ctx context.Context, c *Cart) error {
		c.Add(ctx, p)
		return nil
	})
}

func (s *service) SetQuantity(ctx context.Context, cartID string, productID, qty int) (*View, error) {
	return s.with(ctx, cartID, func(ctx context.Context, c *Cart) error {
		c.SetQuantity(ctx, productID, qty)
		return nil
	})
}

func (s *service) Increment(ctx context.Context, cartID string, productID int) (*View, error) {
	return s.with(ctx, cartID, func(ctx context.Context, c *Cart) error {
		c.Increment(ctx, productID)
		return nil
	})
}

func (s *service) Decrement(ctx context.Context, cartID string, productID int) (*View, error) {
	return s.with(ctx, cartID, func(ctx context.Context, c *Cart) error {
		c.Decrement(ctx, productID)
		return nil
	})
}

func (s *service) Remove(ctx context.Context, cartID string, productID int) (*View, error) {
	return s.with(ctx, cartID, func(ctx context.Context, c *Cart) error {
		c.Remove(ctx, productID)
		return nil
	})
}

func (s *service) Clear(ctx context.Context, cartID string) (*View, error) {
	return s.with(ctx, cartID, func(ctx context.Context, c *Cart) error {
		c.Clear(ctx)
		return nil
	})
}

// with serializes load, mutate and persist for one cart id.
func (s *service) with(ctx context.Context, cartID string, fn func(context.Context, *Cart) error) (*View, error) {
	if cartID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart id required")
	}
	if s.opts.Logger != nil {
		ctx = s.opts.Logger.WithCartID(ctx, cartID)
	}

	mu := s.lockFor(cartID)
	mu.Lock()
	defer mu.Unlock()

	c := Open(ctx, s.store, StorageKey(cartID, s.storageKey), s.opts)
	if err := fn(ctx, c); err != nil {
		return nil, err
	}
	return NewView(cartID, c), nil
}

func (s *service) lockFor(cartID string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(cartID))
	return &s.locks[h.Sum32()%lockStripes]
}
