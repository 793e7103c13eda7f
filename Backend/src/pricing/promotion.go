package pricing

import (
	"fmt"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Rule turns a price into an adjusted price given the cart it was computed from.
// Implementations are pure and must not mutate the cart, so one chain can be
// reused across carts and goroutines.
type Rule interface {
	Apply(base decimal.Decimal, cart *Cart) (decimal.Decimal, error)
}

var hundred = decimal.NewFromInt(100)

// NoPromotion is the identity rule.
type NoPromotion struct{}

func (NoPromotion) Apply(base decimal.Decimal, _ *Cart) (decimal.Decimal, error) { return base, nil }

func (NoPromotion) String() string { return "none" }

// catalogBound is implemented by rules that captured unit prices at construction.
type catalogBound interface {
	checkCatalog(c *Catalog) error
}

// checkCatalog reports ErrCatalogMismatch when any rule in the chain captured a
// unit price that differs from c.
func checkCatalog(r Rule, c *Catalog) error {
	if b, ok := r.(catalogBound); ok {
		return b.checkCatalog(c)
	}
	return nil
}

func orNone(r Rule) Rule {
	if r == nil {
		return NoPromotion{}
	}
	return r
}

// KindPercentage charges percent% of the list price for one kind, leaving the rest
// of the price as the inner rule produced it.
type KindPercentage struct {
	inner   Rule
	kind    Kind
	unit    decimal.Decimal
	percent decimal.Decimal
}

func NewKindPercentage(inner Rule, catalog *Catalog, kind Kind, percent decimal.Decimal) (*KindPercentage, error) {
	if percent.IsNegative() || percent.GreaterThan(hundred) {
		return nil, errors.Wrapf(ErrInvalidPercent, "%s%% on %s", percent, kind)
	}
	unit, err := catalog.PriceOf(kind)
	if err != nil {
		return nil, err
	}
	return &KindPercentage{inner: orNone(inner), kind: kind, unit: unit, percent: percent}, nil
}

func (r *KindPercentage) Apply(base decimal.Decimal, cart *Cart) (decimal.Decimal, error) {
	p, err := r.inner.Apply(base, cart)
	if err != nil {
		return decimal.Zero, err
	}
	slice := cart.QuantityOf(r.kind).Mul(r.unit)
	if slice.IsZero() {
		return p, nil
	}
	discounted := slice.Mul(r.percent).Div(hundred)
	return p.Sub(slice).Add(discounted), nil
}

func (r *KindPercentage) checkCatalog(c *Catalog) error {
	unit, err := c.PriceOf(r.kind)
	if err != nil || !unit.Equal(r.unit) {
		return errors.Wrapf(ErrCatalogMismatch, "%s priced at %s by rule", r.kind, r.unit)
	}
	return checkCatalog(r.inner, c)
}

func (r *KindPercentage) String() string {
	return fmt.Sprintf("%s%% %s", r.percent, r.kind)
}

// Threshold takes a flat amount off once the inner rule's price reaches min.
// The discount may not exceed min, so a qualifying price never goes negative.
type Threshold struct {
	inner    Rule
	min      decimal.Decimal
	discount decimal.Decimal
}

func NewThreshold(inner Rule, min, discount decimal.Decimal) (*Threshold, error) {
	if min.IsNegative() || discount.IsNegative() || discount.GreaterThan(min) {
		return nil, errors.Wrapf(ErrInvalidAmount, "threshold %s off %s", min, discount)
	}
	return &Threshold{inner: orNone(inner), min: min, discount: discount}, nil
}

func (r *Threshold) Apply(base decimal.Decimal, cart *Cart) (decimal.Decimal, error) {
	p, err := r.inner.Apply(base, cart)
	if err != nil {
		return decimal.Zero, err
	}
	if p.GreaterThanOrEqual(r.min) {
		return p.Sub(r.discount), nil
	}
	return p, nil
}

func (r *Threshold) checkCatalog(c *Catalog) error { return checkCatalog(r.inner, c) }

func (r *Threshold) String() string {
	return fmt.Sprintf("%s off from %s", r.discount, r.min)
}

// Describe renders a rule chain innermost first, e.g. "80% strawberry > 10 off from 100".
func Describe(r Rule) string {
	switch v := r.(type) {
	case nil:
		return NoPromotion{}.String()
	case NoPromotion:
		return v.String()
	case *KindPercentage:
		return chained(v.inner, v.String())
	case *Threshold:
		return chained(v.inner, v.String())
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%T", r)
	}
}

func chained(inner Rule, self string) string {
	if _, ok := inner.(NoPromotion); ok {
		return self
	}
	return Describe(inner) + " > " + self
}
