package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		ok       bool
	}{
		{OrderStatusPending, OrderStatusCompleted, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusPending, false},
		{OrderStatusCompleted, OrderStatusCancelled, false},
		{OrderStatusCompleted, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusCompleted, false},
		{OrderStatusCancelled, OrderStatusPending, false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.ok, CanTransition(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestValidStatus(t *testing.T) {
	require.True(t, ValidStatus(OrderStatusPending))
	require.True(t, ValidStatus(OrderStatusCompleted))
	require.True(t, ValidStatus(OrderStatusCancelled))
	require.False(t, ValidStatus("shipped"))
	require.False(t, ValidStatus(""))
}

func TestOrderItemSubtotal(t *testing.T) {
	item := OrderItem{
		Quantity: 3,
		Price:    decimal.RequireFromString("199.99"),
	}
	require.True(t, item.Subtotal().Equal(decimal.RequireFromString("599.97")))
}
