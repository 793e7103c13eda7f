package main

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/ahinestrog/fruitcheckout/Backend/src/pricing"
)

var ErrBadChain = errors.New("bad promotion chain")

// ParseChain builds a rule chain from comma separated steps, innermost first:
//
//	percent:<fruit>:<pct>     charge pct% of the fruit's list price
//	threshold:<min>:<off>     take off once the running price reaches min
//
// An empty spec yields NoPromotion.
func ParseChain(spec string, catalog *pricing.Catalog) (pricing.Rule, error) {
	var rule pricing.Rule = pricing.NoPromotion{}
	if strings.TrimSpace(spec) == "" {
		return rule, nil
	}
	for _, step := range strings.Split(spec, ",") {
		parts := strings.Split(strings.TrimSpace(step), ":")
		if len(parts) != 3 {
			return nil, errors.Wrapf(ErrBadChain, "step %q", step)
		}
		switch strings.ToLower(parts[0]) {
		case "percent":
			kind, err := pricing.ParseKind(parts[1])
			if err != nil {
				return nil, err
			}
			pct, err := decimal.NewFromString(parts[2])
			if err != nil {
				return nil, errors.Wrapf(ErrBadChain, "step %q: %v", step, err)
			}
			if rule, err = pricing.NewKindPercentage(rule, catalog, kind, pct); err != nil {
				return nil, err
			}
		case "threshold":
			min, err := decimal.NewFromString(parts[1])
			if err != nil {
				return nil, errors.Wrapf(ErrBadChain, "step %q: %v", step, err)
			}
			off, err := decimal.NewFromString(parts[2])
			if err != nil {
				return nil, errors.Wrapf(ErrBadChain, "step %q: %v", step, err)
			}
			if rule, err = pricing.NewThreshold(rule, min, off); err != nil {
				return nil, err
			}
		default:
			return nil, errors.Wrapf(ErrBadChain, "unknown step kind %q", parts[0])
		}
	}
	return rule, nil
}
