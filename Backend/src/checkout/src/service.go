package main

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/rs/zerolog/log"

	"github.com/ahinestrog/fruitcheckout/Backend/src/pricing"
)

type Events interface {
	PublishJSON(ctx context.Context, routingKey string, v any) error
}

// CheckoutService prices carts against one catalog and promotion chain. Both are
// read-only, so a single service may serve concurrent checkouts as long as each
// cart stays with its caller.
type CheckoutService struct {
	catalog *pricing.Catalog
	rule    pricing.Rule
	repo    ReceiptRepository
	events  Events
}

// NewCheckoutService accepts a nil repo or events to run without storage or publishing.
func NewCheckoutService(catalog *pricing.Catalog, rule pricing.Rule, repo ReceiptRepository, events Events) *CheckoutService {
	return &CheckoutService{catalog: catalog, rule: rule, repo: repo, events: events}
}

func (s *CheckoutService) Checkout(ctx context.Context, cart *pricing.Cart) (*Receipt, error) {
	q, err := pricing.Price(cart, s.catalog, s.rule)
	if err != nil {
		return nil, errors.Wrap(err, "price cart")
	}
	r := newReceipt(q, s.rule)

	if s.repo != nil {
		if err := s.repo.Save(ctx, r); err != nil {
			return nil, errors.Wrap(err, "save receipt")
		}
	}
	s.publish(ctx, r)

	log.Info().
		Str("receipt", r.ID).
		Str("promotion", r.Promotion).
		Str("base", r.Base.String()).
		Str("total", r.Total.String()).
		Msg("checkout priced")
	return r, nil
}

func (s *CheckoutService) publish(ctx context.Context, r *Receipt) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishJSON(ctx, RKCheckoutPriced, pricedPayload(r)); err != nil {
		log.Warn().Err(err).Str("receipt", r.ID).Msg("publish checkout.priced failed")
	}
}
