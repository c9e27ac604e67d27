package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestCartAddCreatesAndIncrements(t *testing.T) {
	cart := Cart{}

	cart.Add("7")
	require.Equal(t, 1, cart["7"])

	cart.Add("7")
	cart.Add("7")
	require.Equal(t, 3, cart["7"])

	cart.Add("9")
	require.Equal(t, 1, cart["9"])
	require.Len(t, cart, 2)
}

func TestCartDecreaseNeverLeavesZeroEntry(t *testing.T) {
	cart := Cart{"7": 2}

	cart.Decrease("7")
	require.Equal(t, 1, cart["7"])

	cart.Decrease("7")
	_, present := cart["7"]
	require.False(t, present, "removing the last unit must delete the entry")

	// Decreasing an absent entry is a no-op, never a negative quantity.
	cart.Decrease("7")
	require.Empty(t, cart)
}

func TestCartQuantitiesStayPositive(t *testing.T) {
	cart := Cart{}
	ops := []struct {
		op string
		id string
	}{
		{"add", "1"}, {"add", "1"}, {"dec", "1"},
		{"add", "2"}, {"dec", "2"}, {"dec", "2"},
		{"add", "3"}, {"rm", "3"},
		{"add", "1"}, {"dec", "1"}, {"dec", "1"},
	}
	for _, step := range ops {
		switch step.op {
		case "add":
			cart.Add(step.id)
		case "dec":
			cart.Decrease(step.id)
		case "rm":
			cart.Remove(step.id)
		}
		for id, qty := range cart {
			require.GreaterOrEqual(t, qty, 1, "entry %s dropped below 1", id)
		}
	}
	require.Empty(t, cart)
}

func TestCartRemoveAndClear(t *testing.T) {
	cart := Cart{"7": 5, "9": 1}

	cart.Remove("7")
	require.Len(t, cart, 1)

	cart.Remove("missing")
	require.Len(t, cart, 1)

	cart.Clear()
	require.True(t, cart.IsEmpty())
}

func TestCartProductIDsSorted(t *testing.T) {
	cart := Cart{"9": 1, "10": 2, "7": 3}
	require.Equal(t, []string{"10", "7", "9"}, cart.ProductIDs())
}

func TestCartSummarize(t *testing.T) {
	catalog := map[string]*Product{
		"7": {ID: 7, Name: "Parfum Oud", Price: decimal.RequireFromString("500.00")},
		"9": {ID: 9, Name: "Coffret Cadeau", Price: decimal.RequireFromString("1200.00")},
	}
	lookup := func(id string) (*Product, bool) {
		p, ok := catalog[id]
		return p, ok
	}

	cart := Cart{"7": 2, "9": 1}
	summary := cart.Summarize(lookup)

	require.Len(t, summary.Lines, 2)
	require.Empty(t, summary.Stale)
	require.True(t, summary.Total.Equal(decimal.RequireFromString("2200.00")),
		"expected 2200.00, got %s", summary.Total)

	// Lines follow ProductIDs order: "7" then "9".
	require.Equal(t, uint(7), summary.Lines[0].Product.ID)
	require.True(t, summary.Lines[0].Subtotal.Equal(decimal.RequireFromString("1000.00")))
	require.True(t, summary.Lines[1].Subtotal.Equal(decimal.RequireFromString("1200.00")))
}

func TestCartSummarizeDropsStaleEntries(t *testing.T) {
	lookup := func(id string) (*Product, bool) {
		if id != "7" {
			return nil, false
		}
		return &Product{ID: 7, Price: decimal.RequireFromString("500.00")}, true
	}

	cart := Cart{"7": 1, "404": 3}
	summary := cart.Summarize(lookup)

	require.Len(t, summary.Lines, 1)
	require.Equal(t, []string{"404"}, summary.Stale)
	require.True(t, summary.Total.Equal(decimal.RequireFromString("500.00")))
}

func TestCartSummarizeUsesLivePrice(t *testing.T) {
	price := decimal.RequireFromString("500.00")
	lookup := func(id string) (*Product, bool) {
		return &Product{ID: 7, Price: price}, true
	}

	cart := Cart{"7": 1}
	require.True(t, cart.Summarize(lookup).Total.Equal(decimal.RequireFromString("500.00")))

	// Cart pricing floats with the catalog; only orders freeze prices.
	price = decimal.RequireFromString("650.00")
	require.True(t, cart.Summarize(lookup).Total.Equal(decimal.RequireFromString("650.00")))
}
