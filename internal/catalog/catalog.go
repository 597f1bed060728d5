// Package catalog holds the immutable product assortment the storefront sells.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/oud-emporium/internal/common"
	"github.com/Veraticus/oud-emporium/internal/model"
)

// Validation errors.
var (
	ErrMissingID       = errors.New("product id is required")
	ErrMissingName     = errors.New("product name is required")
	ErrNegativePrice   = errors.New("product price cannot be negative")
	ErrUnknownCategory = errors.New("unknown product category")
)

// Catalog is a read-only, ordered product list with id lookup.
// It is safe for concurrent readers since nothing mutates it after New.
type Catalog struct {
	index    map[string]int
	products []model.Product
}

// Summary is the slice of a product the recommendation model is allowed to see.
type Summary struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	ScentProfile []string `json:"scentProfile"`
}

// New validates products and builds a catalog preserving their order.
func New(products []model.Product) (*Catalog, error) {
	if len(products) == 0 {
		return nil, common.ErrEmptyCatalog
	}

	c := &Catalog{
		index:    make(map[string]int, len(products)),
		products: make([]model.Product, 0, len(products)),
	}

	for i, p := range products {
		if err := Validate(p); err != nil {
			return nil, fmt.Errorf("product at index %d: %w", i, err)
		}
		if _, dup := c.index[p.ID]; dup {
			return nil, fmt.Errorf("product %q: %w", p.ID, common.ErrDuplicateEntry)
		}
		c.index[p.ID] = len(c.products)
		c.products = append(c.products, clone(p))
	}

	return c, nil
}

// Validate checks a single product for the invariants the catalog relies on.
// An empty category is allowed; such products belong to no listing.
func Validate(p model.Product) error {
	if strings.TrimSpace(p.ID) == "" {
		return ErrMissingID
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: %s", ErrMissingName, p.ID)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: %s", ErrNegativePrice, p.ID)
	}
	if p.Category != "" && !p.Category.IsValid() {
		return fmt.Errorf("%w: %s has %q", ErrUnknownCategory, p.ID, p.Category)
	}
	return nil
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Products returns a copy of every product in catalog order.
func (c *Catalog) Products() []model.Product {
	out := make([]model.Product, len(c.products))
	for i, p := range c.products {
		out[i] = clone(p)
	}
	return out
}

// At returns the product at position i in catalog order.
func (c *Catalog) At(i int) model.Product {
	return clone(c.products[i])
}

// Lookup finds a product by id.
func (c *Catalog) Lookup(id string) (model.Product, bool) {
	i, ok := c.index[id]
	if !ok {
		return model.Product{}, false
	}
	return clone(c.products[i]), true
}

// Contains reports whether id names a catalog product.
func (c *Catalog) Contains(id string) bool {
	_, ok := c.index[id]
	return ok
}

// ByCategory returns the products in category, in catalog order.
func (c *Catalog) ByCategory(category model.Category) []model.Product {
	if category == "" {
		return nil
	}
	var out []model.Product
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, clone(p))
		}
	}
	return out
}

// Summaries projects the catalog down to id, name and scent profile.
// Price and description never leave the process through this path.
func (c *Catalog) Summaries() []Summary {
	out := make([]Summary, len(c.products))
	for i, p := range c.products {
		out[i] = Summary{
			ID:           p.ID,
			Name:         p.Name,
			ScentProfile: append([]string(nil), p.ScentProfile...),
		}
	}
	return out
}

func clone(p model.Product) model.Product {
	p.ScentProfile = append([]string(nil), p.ScentProfile...)
	return p
}
