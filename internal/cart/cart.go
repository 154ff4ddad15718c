package cart

import (
	"context"

	"github.com/pawpantry/storefront-backend/internal/catalog"
	pkgerrors "github.com/pawpantry/storefront-backend/pkg/errors"
	"github.com/pawpantry/storefront-backend/pkg/logger"
	"github.com/pawpantry/storefront-backend/pkg/metrics"
)

const DefaultStorageKey = "cart"

// Options wires the collaborators shared by every cart.
type Options struct {
	// StoreName labels metrics; defaults to "store".
	StoreName string
	Logger    *logger.Logger
	Metrics   *metrics.CartMetrics
}

func (o Options) storeName() string {
	if o.StoreName == "" {
		return "store"
	}
	return o.StoreName
}

// Cart is a ledger bound to its storage key. Every state-changing operation
// writes the whole ledger back; write failures are logged and never reach
// the caller. A Cart is not safe for concurrent use.
type Cart struct {
	key    string
	ledger *Ledger
	store  Store
	opts   Options
}

// Restore loads the ledger persisted under key. A missing key is an empty
// ledger. Store failures are returned as dependency errors and unparsable
// blobs as validation errors.
func Restore(ctx context.Context, store Store, key string) (*Ledger, error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read persisted cart")
	}
	if !ok {
		return NewLedger(), nil
	}
	return DecodeLedger(raw)
}

// Open restores the cart stored under key. When the stored value cannot be
// restored the failure is logged and the cart starts empty.
func Open(ctx context.Context, store Store, key string, opts Options) *Cart {
	if store == nil {
		store = NopStore{}
	}
	ledger, err := Restore(ctx, store, key)
	if err != nil {
		opts.Metrics.IncRestoreFailure(opts.storeName())
		if opts.Logger != nil {
			opts.Logger.WarnErr(opts.Logger.WithField(ctx, "storage_key", key), "cart restore failed, starting empty", err)
		}
		ledger = NewLedger()
	}
	return &Cart{key: key, ledger: ledger, store: store, opts: opts}
}

func (c *Cart) Key() string { return c.key }

func (c *Cart) Add(ctx context.Context, p catalog.Product) {
	c.apply(ctx, "add", c.ledger.Add(p))
}

func (c *Cart) Remove(ctx context.Context, id int) {
	c.apply(ctx, "remove", c.ledger.Remove(id))
}

func (c *Cart) SetQuantity(ctx context.Context, id, qty int) {
	c.apply(ctx, "set_quantity", c.ledger.SetQuantity(id, qty))
}

func (c *Cart) Increment(ctx context.Context, id int) {
	c.apply(ctx, "increment", c.ledger.Increment(id))
}

func (c *Cart) Decrement(ctx context.Context, id int) {
	c.apply(ctx, "decrement", c.ledger.Decrement(id))
}

func (c *Cart) Clear(ctx context.Context) {
	c.apply(ctx, "clear", c.ledger.Clear())
}

func (c *Cart) TotalCount() int       { return c.ledger.TotalCount() }
func (c *Cart) TotalValue() float64   { return c.ledger.TotalValue() }
func (c *Cart) Contains(id int) bool  { return c.ledger.Contains(id) }
func (c *Cart) QuantityOf(id int) int { return c.ledger.QuantityOf(id) }
func (c *Cart) Entries() []Entry      { return c.ledger.Entries() }
func (c *Cart) Ledger() *Ledger       { return c.ledger }

func (c *Cart) apply(ctx context.Context, op string, changed bool) {
	if !changed {
		return
	}
	c.opts.Metrics.IncMutation(op)
	c.persist(ctx)
}

func (c *Cart) persist(ctx context.Context) {
	payload, err := c.ledger.Encode()
	if err == nil {
		err = c.store.Set(ctx, c.key, payload)
	}
	if err == nil {
		return
	}
	c.opts.Metrics.IncPersistFailure(c.opts.storeName())
	if c.opts.Logger != nil {
		c.opts.Logger.WarnErr(c.opts.Logger.WithField(ctx, "storage_key", c.key), "cart persist failed", err)
	}
}
