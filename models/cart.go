package models

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Cart is the session-scoped cart: product id -> quantity. It lives in the
// session store, never in postgres, and is rebuilt from there on every
// request. A present entry always has quantity >= 1.
type Cart map[string]int

// Add increments the quantity for a product by one, creating the entry at 1.
func (c Cart) Add(productID string) {
	c[productID]++
}

// Decrease decrements by one and deletes the entry when it would hit zero.
func (c Cart) Decrease(productID string) {
	qty, ok := c[productID]
	if !ok {
		return
	}
	if qty > 1 {
		c[productID] = qty - 1
	} else {
		delete(c, productID)
	}
}

// Remove deletes the entry unconditionally.
func (c Cart) Remove(productID string) {
	delete(c, productID)
}

// Clear empties the cart in place.
func (c Cart) Clear() {
	for id := range c {
		delete(c, id)
	}
}

func (c Cart) IsEmpty() bool {
	return len(c) == 0
}

// ProductIDs returns the distinct product ids in stable order.
func (c Cart) ProductIDs() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// CartLine is one rendered cart row priced at the current catalog price.
type CartLine struct {
	Product  Product         `json:"product"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// CartSummary is what the cart and checkout views display. Stale holds the
// ids of entries whose product no longer exists in the catalog; callers
// prune those from the stored cart instead of failing the request.
type CartSummary struct {
	Lines []CartLine      `json:"lines"`
	Total decimal.Decimal `json:"total"`
	Stale []string        `json:"-"`
}

// Summarize prices every entry through lookup. Cart rows always show live
// catalog pricing; only a completed order freezes prices.
func (c Cart) Summarize(lookup func(productID string) (*Product, bool)) CartSummary {
	summary := CartSummary{Total: decimal.Zero}
	for _, id := range c.ProductIDs() {
		product, ok := lookup(id)
		if !ok {
			summary.Stale = append(summary.Stale, id)
			continue
		}
		qty := c[id]
		subtotal := product.Price.Mul(decimal.NewFromInt(int64(qty)))
		summary.Lines = append(summary.Lines, CartLine{
			Product:  *product,
			Quantity: qty,
			Subtotal: subtotal,
		})
		summary.Total = summary.Total.Add(subtotal)
	}
	return summary
}
