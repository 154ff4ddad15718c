package cart

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/pawpantry/storefront-backend/internal/catalog"
	pkgerrors "github.com/pawpantry/storefront-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

// Entry is a product snapshot plus how many units are in the cart. It
// serializes flat: the product fields followed by "count".
type Entry struct {
	catalog.Product
	Count int `json:"count"`
}

// Subtotal is price times count.
func (e Entry) Subtotal() decimal.Decimal {
	return decimal.NewFromFloat(e.Price).Mul(decimal.NewFromInt(int64(e.Count)))
}

// Ledger maps product ids to cart entries. Every operation reports whether
// it changed state so the owner knows when to persist. A Ledger is not safe
// for concurrent use.
type Ledger struct {
	entries map[int]*Entry
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{entries: make(map[int]*Entry)}
}

// Add inserts the product with count 1, or increments an existing entry.
func (l *Ledger) Add(p catalog.Product) bool {
	if e, ok := l.entries[p.ID]; ok {
		e.Count++
		return true
	}
	l.entries[p.ID] = &Entry{Product: p, Count: 1}
	return true
}

// Remove deletes the entry for id.
func (l *Ledger) Remove(id int) bool {
	if _, ok := l.entries[id]; !ok {
		return false
	}
	delete(l.entries, id)
	return true
}

// SetQuantity overwrites the count of an existing entry. A non-positive
// quantity removes it; an absent id is never inserted.
func (l *Ledger) SetQuantity(id, qty int) bool {
	if qty <= 0 {
		return l.Remove(id)
	}
	e, ok := l.entries[id]
	if !ok {
		return false
	}
	e.Count = qty
	return true
}

// Increment adds one unit to an existing entry.
func (l *Ledger) Increment(id int) bool {
	e, ok := l.entries[id]
	if !ok {
		return false
	}
	e.Count++
	return true
}

// Decrement removes one unit, dropping the entry when it reaches zero.
func (l *Ledger) Decrement(id int) bool {
	e, ok := l.entries[id]
	if !ok {
		return false
	}
	if e.Count <= 1 {
		delete(l.entries, id)
		return true
	}
	e.Count--
	return true
}

// Clear empties the ledger. It always reports a change so the empty state
// is written through.
func (l *Ledger) Clear() bool {
	l.entries = make(map[int]*Entry)
	return true
}

func (l *Ledger) Len() int {
	return len(l.entries)
}

// TotalCount sums the counts of every entry.
func (l *Ledger) TotalCount() int {
	total := 0
	for _, e := range l.entries {
		total += e.Count
	}
	return total
}

// TotalValueDecimal sums price times count exactly.
func (l *Ledger) TotalValueDecimal() decimal.Decimal {
	total := decimal.Zero
	for _, e := range l.entries {
		total = total.Add(e.Subtotal())
	}
	return total
}

// TotalValue is TotalValueDecimal as a float64.
func (l *Ledger) TotalValue() float64 {
	return l.TotalValueDecimal().InexactFloat64()
}

func (l *Ledger) Contains(id int) bool {
	_, ok := l.entries[id]
	return ok
}

// QuantityOf returns the count for id, or 0 when absent.
func (l *Ledger) QuantityOf(id int) int {
	if e, ok := l.entries[id]; ok {
		return e.Count
	}
	return 0
}

// Entries lists copies of every entry ordered by product id.
func (l *Ledger) Entries() []Entry {
	out := make([]Entry, 0, len(l.entries))
	for _, e := range l.entries {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Encode serializes the ledger as a JSON array of entries.
func (l *Ledger) Encode() (string, error) {
	payload, err := json.Marshal(l.Entries())
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode cart")
	}
	return string(payload), nil
}

// DecodeLedger parses a blob written by Encode. An empty blob is an empty
// ledger; anything unparsable is a validation error.
func DecodeLedger(raw string) (*Ledger, error) {
	l := NewLedger()
	if strings.TrimSpace(raw) == "" {
		return l, nil
	}

	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "malformed persisted cart")
	}
	for i, e := range entries {
		switch {
		case e.ID <= 0:
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("persisted cart entry %d has no product id", i))
		case e.Count <= 0:
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("persisted cart entry %d has non-positive count", i))
		case l.Contains(e.ID):
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("persisted cart repeats product %d", e.ID))
		}
		entry := e
		l.entries[e.ID] = &entry
	}
	return l, nil
}
