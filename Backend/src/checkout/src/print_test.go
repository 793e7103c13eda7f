package main

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyOf(t *testing.T) {
	for in, want := range map[string]int64{
		"38.4":    3840,
		"192":     19200,
		"10.005":  1001,
		"-10.005": -1001,
		"0":       0,
	} {
		assert.Equal(t, want, MoneyOf(decimal.RequireFromString(in)).Cents, in)
	}
}

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "38.40", Money{Cents: 3840}.String())
	assert.Equal(t, "1,234.50", Money{Cents: 123450}.String())
	assert.Equal(t, "0.00", Money{}.String())
}

func TestPrintReceipt(t *testing.T) {
	r := &Receipt{
		ID:        "r-1",
		Promotion: "80% strawberry > 10 off from 100",
		Base:      Money{Cents: 20500},
		Total:     Money{Cents: 18200},
		Items: []ReceiptItem{
			{Fruit: "apple", Qty: "5", UnitPrice: Money{Cents: 800}, LineTotal: Money{Cents: 4000}},
			{Fruit: "mango", Qty: "5", UnitPrice: Money{Cents: 2000}, LineTotal: Money{Cents: 10000}},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, PrintReceipt(&buf, r))

	out := buf.String()
	assert.Contains(t, out, "receipt r-1")
	assert.Contains(t, out, "promotion: 80% strawberry > 10 off from 100")
	assert.Contains(t, out, "100.00")
	assert.Contains(t, out, "-23.00")
	assert.Contains(t, out, "182.00")
}

func TestPrintReceiptWithoutDiscount(t *testing.T) {
	r := &Receipt{
		ID:        "r-2",
		Promotion: "none",
		Base:      Money{Cents: 10500},
		Total:     Money{Cents: 10500},
		Items: []ReceiptItem{
			{Fruit: "apple", Qty: "5", UnitPrice: Money{Cents: 800}, LineTotal: Money{Cents: 4000}},
			{Fruit: "strawberry", Qty: "5", UnitPrice: Money{Cents: 1300}, LineTotal: Money{Cents: 6500}},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, PrintReceipt(&buf, r))

	out := buf.String()
	assert.NotContains(t, out, "discount")
	assert.NotContains(t, out, "-0.00")
	assert.Contains(t, out, "105.00")
}
