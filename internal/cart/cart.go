// Package cart holds the shopping cart line items and their derived totals.
package cart

import "github.com/Veraticus/oud-emporium/internal/model"

// Cart owns an ordered list of line items with at most one line per product.
// It is not safe for concurrent use; the storefront controller is its only writer.
type Cart struct {
	items []model.CartItem
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// AddItem merges quantity into the line for product, appending a new line
// when the product is not yet in the cart. Non-positive quantities are ignored.
func (c *Cart) AddItem(product model.Product, quantity int) {
	if quantity <= 0 {
		return
	}
	if i := c.index(product.ID); i >= 0 {
		c.items[i].Quantity += quantity
		return
	}
	c.items = append(c.items, model.CartItem{Product: product, Quantity: quantity})
}

// UpdateQuantity sets the quantity of the line for productID. A quantity of
// zero or less removes the line.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	if i := c.index(productID); i >= 0 {
		c.items[i].Quantity = quantity
	}
}

// RemoveItem drops the line for productID if present.
func (c *Cart) RemoveItem(productID string) {
	i := c.index(productID)
	if i < 0 {
		return
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
}

// Items returns a copy of the lines in insertion order.
func (c *Cart) Items() []model.CartItem {
	out := make([]model.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.items)
}

// Quantity returns the quantity held for productID, zero when absent.
func (c *Cart) Quantity(productID string) int {
	if i := c.index(productID); i >= 0 {
		return c.items[i].Quantity
	}
	return 0
}

// Subtotal sums price times quantity over every line.
func (c *Cart) Subtotal() float64 {
	var total float64
	for _, item := range c.items {
		total += item.LineTotal()
	}
	return total
}

// ItemCount sums quantities over every line.
func (c *Cart) ItemCount() int {
	var n int
	for _, item := range c.items {
		n += item.Quantity
	}
	return n
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) index(productID string) int {
	for i, item := range c.items {
		if item.Product.ID == productID {
			return i
		}
	}
	return -1
}
