package pricing

import (
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAccumulates(t *testing.T) {
	c := NewCart()
	require.NoError(t, c.Add(Apple, d("2")))
	require.NoError(t, c.Add(Apple, d("3.5")))
	require.NoError(t, c.Add(Mango, d("1")))

	requireDecimal(t, "5.5", c.QuantityOf(Apple))
	requireDecimal(t, "1", c.QuantityOf(Mango))
	requireDecimal(t, "0", c.QuantityOf(Strawberry))
	assert.Equal(t, 2, c.Len())
}

func TestCartRejectsNegative(t *testing.T) {
	c := NewCart()
	require.NoError(t, c.Add(Apple, d("4")))

	err := c.Add(Apple, d("-1"))
	assert.True(t, errors.Is(err, ErrInvalidQuantity))
	requireDecimal(t, "4", c.QuantityOf(Apple))
}

func TestCartZeroIsNoop(t *testing.T) {
	c := NewCart()
	require.NoError(t, c.Add(Strawberry, d("0")))
	assert.True(t, c.IsEmpty())
	assert.Empty(t, c.Entries())
}

func TestCartEntriesOrderedByKind(t *testing.T) {
	c := cartOf(t, map[Kind]string{Mango: "1", Apple: "2", Strawberry: "3"})
	entries := c.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, Apple, entries[0].Kind)
	assert.Equal(t, Strawberry, entries[1].Kind)
	assert.Equal(t, Mango, entries[2].Kind)

	// snapshot, not a view
	entries[0].Quantity = d("100")
	requireDecimal(t, "2", c.QuantityOf(Apple))
}

func TestNilCart(t *testing.T) {
	var c *Cart
	assert.True(t, c.IsEmpty())
	assert.Nil(t, c.Entries())
	requireDecimal(t, "0", c.QuantityOf(Apple))
	assert.True(t, errors.Is(c.Add(Apple, d("1")), ErrNilCart))
}

func TestZeroValueCart(t *testing.T) {
	var c Cart
	require.NoError(t, c.Add(Apple, d("1")))
	require.NoError(t, c.Add(Apple, d("2")))
	requireDecimal(t, "3", c.QuantityOf(Apple))
	assert.Equal(t, 1, c.Len())

	got, err := ComputeTotal(&c, DefaultCatalog(), nil)
	require.NoError(t, err)
	requireDecimal(t, "24", got)
}
