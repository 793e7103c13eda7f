package pricing

import (
	"strings"

	"github.com/go-faster/errors"
)

// Kind identifies a priced good. The set is closed; the zero value is not a fruit.
type Kind uint8

const (
	KindUnspecified Kind = iota
	Apple
	Strawberry
	Mango
)

// AllKinds lists every valid kind in declaration order.
var AllKinds = []Kind{Apple, Strawberry, Mango}

func (k Kind) String() string {
	switch k {
	case Apple:
		return "apple"
	case Strawberry:
		return "strawberry"
	case Mango:
		return "mango"
	default:
		return "unspecified"
	}
}

func (k Kind) Valid() bool { return k >= Apple && k <= Mango }

// ParseKind maps a case-insensitive fruit name to its Kind.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, k := range AllKinds {
		if k.String() == n {
			return k, nil
		}
	}
	return KindUnspecified, errors.Wrapf(ErrUnknownFruitKind, "parse %q", name)
}
