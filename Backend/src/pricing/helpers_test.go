package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func requireDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.Truef(t, d(want).Equal(got), "want %s, got %s", want, got)
}

func cartOf(t *testing.T, amounts map[Kind]string) *Cart {
	t.Helper()
	c := NewCart()
	for k, a := range amounts {
		require.NoError(t, c.Add(k, d(a)))
	}
	return c
}
