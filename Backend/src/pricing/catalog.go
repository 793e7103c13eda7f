package pricing

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Entry registers the unit price of one kind, per unit of weight.
type Entry struct {
	Kind      Kind
	UnitPrice decimal.Decimal
}

// Catalog maps kinds to unit prices. It is never mutated after NewCatalog returns,
// so one instance may be shared by concurrent pricing computations.
type Catalog struct {
	prices map[Kind]decimal.Decimal
}

func NewCatalog(entries ...Entry) (*Catalog, error) {
	c := &Catalog{prices: make(map[Kind]decimal.Decimal, len(entries))}
	for _, e := range entries {
		if !e.Kind.Valid() {
			return nil, errors.Wrapf(ErrUnknownFruitKind, "register kind %d", e.Kind)
		}
		if e.UnitPrice.IsNegative() {
			return nil, errors.Wrapf(ErrInvalidPrice, "%s: %s", e.Kind, e.UnitPrice)
		}
		if _, ok := c.prices[e.Kind]; ok {
			return nil, errors.Wrapf(ErrDuplicateKind, "%s", e.Kind)
		}
		c.prices[e.Kind] = e.UnitPrice
	}
	return c, nil
}

// DefaultCatalog is the store's fixed price list.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(
		Entry{Kind: Apple, UnitPrice: decimal.NewFromInt(8)},
		Entry{Kind: Strawberry, UnitPrice: decimal.NewFromInt(13)},
		Entry{Kind: Mango, UnitPrice: decimal.NewFromInt(20)},
	)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) PriceOf(kind Kind) (decimal.Decimal, error) {
	p, ok := c.prices[kind]
	if !ok {
		return decimal.Zero, errors.Wrapf(ErrUnknownFruitKind, "price of %s", kind)
	}
	return p, nil
}

func (c *Catalog) Kinds() []Kind {
	out := make([]Kind, 0, len(c.prices))
	for _, k := range AllKinds {
		if _, ok := c.prices[k]; ok {
			out = append(out, k)
		}
	}
	return out
}
