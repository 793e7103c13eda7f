package pricing

import "github.com/go-faster/errors"

var (
	ErrUnknownFruitKind = errors.New("unknown fruit kind")
	ErrInvalidQuantity  = errors.New("invalid quantity")
	ErrInvalidPrice     = errors.New("invalid unit price")
	ErrDuplicateKind    = errors.New("duplicate catalog entry")
	ErrInvalidPercent   = errors.New("invalid percent")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrCatalogMismatch  = errors.New("rule priced against another catalog")
	ErrNilCart          = errors.New("nil cart")
)
