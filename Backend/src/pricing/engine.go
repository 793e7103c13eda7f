package pricing

import "github.com/shopspring/decimal"

type QuoteLine struct {
	Kind      Kind
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// Quote is the breakdown of one pricing computation.
type Quote struct {
	Lines []QuoteLine
	Base  decimal.Decimal
	Total decimal.Decimal
}

func (q *Quote) Discount() decimal.Decimal { return q.Base.Sub(q.Total) }

// Price sums quantity*unit price over the cart and runs the result through rule.
// A nil rule means no promotion. Any kind missing from the catalog aborts the
// whole computation, as does a rule built against different unit prices.
func Price(cart *Cart, catalog *Catalog, rule Rule) (*Quote, error) {
	if err := checkCatalog(rule, catalog); err != nil {
		return nil, err
	}
	q := &Quote{Base: decimal.Zero}
	for _, l := range cart.Entries() {
		unit, err := catalog.PriceOf(l.Kind)
		if err != nil {
			return nil, err
		}
		sub := l.Quantity.Mul(unit)
		q.Lines = append(q.Lines, QuoteLine{Kind: l.Kind, Quantity: l.Quantity, UnitPrice: unit, Subtotal: sub})
		q.Base = q.Base.Add(sub)
	}
	total, err := orNone(rule).Apply(q.Base, cart)
	if err != nil {
		return nil, err
	}
	q.Total = total
	return q, nil
}

func ComputeTotal(cart *Cart, catalog *Catalog, rule Rule) (decimal.Decimal, error) {
	q, err := Price(cart, catalog, rule)
	if err != nil {
		return decimal.Zero, err
	}
	return q.Total, nil
}
