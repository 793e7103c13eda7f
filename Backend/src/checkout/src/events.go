package main

// Events published by checkout
const (
	RKCheckoutPriced = "checkout.priced"
)

type CheckoutPricedPayload struct {
	ReceiptID  string    `json:"receipt_id"`
	Promotion  string    `json:"promotion"`
	BaseCents  int64     `json:"base_cents"`
	TotalCents int64     `json:"total_cents"`
	Items      []ItemEvt `json:"items"`
}

type ItemEvt struct {
	Fruit     string `json:"fruit"`
	Qty       string `json:"qty"`
	UnitCents int64  `json:"unit_cents"`
	LineCents int64  `json:"line_cents"`
}

func pricedPayload(r *Receipt) CheckoutPricedPayload {
	p := CheckoutPricedPayload{
		ReceiptID:  r.ID,
		Promotion:  r.Promotion,
		BaseCents:  r.Base.Cents,
		TotalCents: r.Total.Cents,
		Items:      make([]ItemEvt, 0, len(r.Items)),
	}
	for _, it := range r.Items {
		p.Items = append(p.Items, ItemEvt{
			Fruit:     it.Fruit,
			Qty:       it.Qty,
			UnitCents: it.UnitPrice.Cents,
			LineCents: it.LineTotal.Cents,
		})
	}
	return p
}
