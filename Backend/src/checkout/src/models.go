package main

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ahinestrog/fruitcheckout/Backend/src/pricing"
)

type Receipt struct {
	ID          string
	CreatedUnix int64
	Promotion   string
	Base        Money
	Total       Money
	Items       []ReceiptItem
}

type ReceiptItem struct {
	Fruit     string
	Qty       string
	UnitPrice Money
	LineTotal Money
}

func (r *Receipt) Discount() Money { return r.Base.Sub(r.Total) }

// Money is an amount in cents, rounded half away from zero.
type Money struct{ Cents int64 }

func MoneyOf(d decimal.Decimal) Money { return Money{Cents: d.Shift(2).Round(0).IntPart()} }

func (m Money) Sub(o Money) Money { return Money{Cents: m.Cents - o.Cents} }

func (m Money) String() string {
	return humanize.FormatFloat("#,###.##", float64(m.Cents)/100)
}

func newReceipt(q *pricing.Quote, rule pricing.Rule) *Receipt {
	r := &Receipt{
		ID:          uuid.NewString(),
		CreatedUnix: time.Now().Unix(),
		Promotion:   pricing.Describe(rule),
		Base:        MoneyOf(q.Base),
		Total:       MoneyOf(q.Total),
	}
	for _, l := range q.Lines {
		r.Items = append(r.Items, ReceiptItem{
			Fruit:     l.Kind.String(),
			Qty:       l.Quantity.String(),
			UnitPrice: MoneyOf(l.UnitPrice),
			LineTotal: MoneyOf(l.Subtotal),
		})
	}
	return r
}
