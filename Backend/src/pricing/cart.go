package pricing

import (
	"sort"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

type Line struct {
	Kind     Kind
	Quantity decimal.Decimal
}

// Cart accumulates weights per kind for a single pricing computation.
// It has no locking: keep each Cart confined to one goroutine.
type Cart struct {
	items map[Kind]decimal.Decimal
}

func NewCart() *Cart { return &Cart{items: map[Kind]decimal.Decimal{}} }

// Add accumulates amount into the kind's total. Negative amounts are rejected
// and leave the cart unchanged; zero is a no-op. The zero Cart is ready to use.
func (c *Cart) Add(kind Kind, amount decimal.Decimal) error {
	if c == nil {
		return ErrNilCart
	}
	if amount.IsNegative() {
		return errors.Wrapf(ErrInvalidQuantity, "add %s %s", amount, kind)
	}
	if amount.IsZero() {
		return nil
	}
	if c.items == nil {
		c.items = map[Kind]decimal.Decimal{}
	}
	c.items[kind] = c.items[kind].Add(amount)
	return nil
}

func (c *Cart) QuantityOf(kind Kind) decimal.Decimal {
	if c == nil {
		return decimal.Zero
	}
	return c.items[kind]
}

// Entries returns a snapshot of the cart ordered by kind.
func (c *Cart) Entries() []Line {
	if c == nil {
		return nil
	}
	out := make([]Line, 0, len(c.items))
	for k, q := range c.items {
		out = append(out, Line{Kind: k, Quantity: q})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}

func (c *Cart) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

func (c *Cart) IsEmpty() bool { return c.Len() == 0 }
