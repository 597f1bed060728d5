// Package model defines the core domain types of the storefront.
package model

// Category tags a product's place in the assortment.
type Category string

const (
	CategoryPureOud       Category = "pure_oud"
	CategoryPerfume       Category = "perfume"
	CategoryBakhoor       Category = "bakhoor"
	CategoryPowder        Category = "powder"
	CategoryGiftSet       Category = "gift_set"
	CategoryAccessory     Category = "accessory"
	CategoryPremium       Category = "premium"
	CategoryPerfumeOil    Category = "perfume_oil"
	CategoryMist          Category = "mist"
	CategoryBurner        Category = "burner"
	CategoryHomeAccessory Category = "home_accessory"
)

// Categories lists every category in menu order.
var Categories = []Category{
	CategoryPureOud,
	CategoryPerfume,
	CategoryBakhoor,
	CategoryPowder,
	CategoryGiftSet,
	CategoryAccessory,
	CategoryPremium,
	CategoryPerfumeOil,
	CategoryMist,
	CategoryBurner,
	CategoryHomeAccessory,
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Product is an immutable catalog entry.
type Product struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Description  string   `json:"description" yaml:"description"`
	ImageURL     string   `json:"imageUrl" yaml:"image_url"`
	Category     Category `json:"category" yaml:"category"`
	ScentProfile []string `json:"scentProfile" yaml:"scent_profile"`
	Price        float64  `json:"price" yaml:"price"`
}
