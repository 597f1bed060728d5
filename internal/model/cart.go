package model

// CartItem is one cart line: a product and how many of it.
type CartItem struct {
	Product  Product
	Quantity int
}

// LineTotal returns price times quantity for the line.
func (ci CartItem) LineTotal() float64 {
	return ci.Product.Price * float64(ci.Quantity)
}
