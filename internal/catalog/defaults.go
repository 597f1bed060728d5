package catalog

import "github.com/Veraticus/oud-emporium/internal/model"

// Default returns the built-in assortment used when no database is configured.
func Default() *Catalog {
	c, err := New(defaultProducts)
	if err != nil {
		panic("catalog: invalid built-in assortment: " + err.Error())
	}
	return c
}

// DefaultProducts returns a copy of the built-in assortment.
func DefaultProducts() []model.Product {
	return Default().Products()
}

var defaultProducts = []model.Product{
	{
		ID:           "oud-001",
		Name:         "Royal Cambodian Oud",
		Description:  "Aged Cambodian agarwood oil with a honeyed, leathery depth that unfolds for hours.",
		Price:        245.00,
		ImageURL:     "https://picsum.photos/seed/oud001/600/600",
		ScentProfile: []string{"Woody", "Leather", "Sweet"},
		Category:     model.CategoryPureOud,
	},
	{
		ID:           "oud-002",
		Name:         "Hindi Black Oud",
		Description:  "A dark, animalic Assam oud for those who want an unmistakable signature.",
		Price:        310.00,
		ImageURL:     "https://picsum.photos/seed/oud002/600/600",
		ScentProfile: []string{"Woody", "Smoky", "Leather"},
		Category:     model.CategoryPureOud,
	},
	{
		ID:           "oud-003",
		Name:         "Rose Taifi Elixir",
		Description:  "Taif rose petals layered over soft oud and saffron.",
		Price:        128.50,
		ImageURL:     "https://picsum.photos/seed/oud003/600/600",
		ScentProfile: []string{"Floral", "Spicy", "Woody"},
		Category:     model.CategoryPerfume,
	},
	{
		ID:           "oud-004",
		Name:         "Citrus Majlis",
		Description:  "Bergamot and neroli brightened with a whisper of white oud.",
		Price:        96.00,
		ImageURL:     "https://picsum.photos/seed/oud004/600/600",
		ScentProfile: []string{"Citrus", "Fresh", "Woody"},
		Category:     model.CategoryPerfume,
	},
	{
		ID:           "oud-005",
		Name:         "Amber Nights Bakhoor",
		Description:  "Hand-pressed incense chips soaked in amber, musk and sandalwood.",
		Price:        42.00,
		ImageURL:     "https://picsum.photos/seed/oud005/600/600",
		ScentProfile: []string{"Gourmand", "Woody", "Spicy"},
		Category:     model.CategoryBakhoor,
	},
	{
		ID:           "oud-006",
		Name:         "Sandalwood Dust",
		Description:  "Finely milled Mysore sandalwood powder for burning or blending.",
		Price:        35.00,
		ImageURL:     "https://picsum.photos/seed/oud006/600/600",
		ScentProfile: []string{"Woody", "Creamy"},
		Category:     model.CategoryPowder,
	},
	{
		ID:           "oud-007",
		Name:         "Heritage Discovery Set",
		Description:  "Five miniature oils spanning the house's signature accords, boxed for gifting.",
		Price:        150.00,
		ImageURL:     "https://picsum.photos/seed/oud007/600/600",
		ScentProfile: []string{"Woody", "Floral", "Citrus", "Spicy"},
		Category:     model.CategoryGiftSet,
	},
	{
		ID:           "oud-008",
		Name:         "Engraved Crystal Atomiser",
		Description:  "A refillable hand-cut crystal atomiser with a brass collar.",
		Price:        58.00,
		ImageURL:     "https://picsum.photos/seed/oud008/600/600",
		ScentProfile: []string{},
		Category:     model.CategoryAccessory,
	},
	{
		ID:           "oud-009",
		Name:         "Kinam Reserve",
		Description:  "Rare kinam-grade agarwood distilled in a single small batch.",
		Price:        890.00,
		ImageURL:     "https://picsum.photos/seed/oud009/600/600",
		ScentProfile: []string{"Woody", "Sweet", "Balsamic"},
		Category:     model.CategoryPremium,
	},
	{
		ID:           "oud-010",
		Name:         "Musk Tahara Oil",
		Description:  "A clean white musk perfume oil, soft enough for every day.",
		Price:        32.00,
		ImageURL:     "https://picsum.photos/seed/oud010/600/600",
		ScentProfile: []string{"Fresh", "Floral"},
		Category:     model.CategoryPerfumeOil,
	},
	{
		ID:           "oud-011",
		Name:         "Saffron Leather Oil",
		Description:  "Saffron threads and suede over a smoky oud base.",
		Price:        74.00,
		ImageURL:     "https://picsum.photos/seed/oud011/600/600",
		ScentProfile: []string{"Leather", "Spicy", "Woody"},
		Category:     model.CategoryPerfumeOil,
	},
	{
		ID:           "oud-012",
		Name:         "Orange Blossom Hair Mist",
		Description:  "A light alcohol-free mist of orange blossom and vanilla.",
		Price:        28.00,
		ImageURL:     "https://picsum.photos/seed/oud012/600/600",
		ScentProfile: []string{"Floral", "Citrus", "Gourmand"},
		Category:     model.CategoryMist,
	},
	{
		ID:           "oud-013",
		Name:         "Brass Mabkhara Burner",
		Description:  "A traditional incense burner in hammered brass.",
		Price:        65.00,
		ImageURL:     "https://picsum.photos/seed/oud013/600/600",
		ScentProfile: []string{},
		Category:     model.CategoryBurner,
	},
	{
		ID:           "oud-014",
		Name:         "Oud Linen Spray",
		Description:  "Room and linen spray with cedar, oud and a touch of lavender.",
		Price:        39.00,
		ImageURL:     "https://picsum.photos/seed/oud014/600/600",
		ScentProfile: []string{"Woody", "Fresh"},
		Category:     model.CategoryHomeAccessory,
	},
	{
		ID:           "oud-015",
		Name:         "Vanilla Oud Gourmand",
		Description:  "Bourbon vanilla and tonka wrapped around a gentle Malaysian oud.",
		Price:        112.00,
		ImageURL:     "https://picsum.photos/seed/oud015/600/600",
		ScentProfile: []string{"Gourmand", "Woody", "Sweet"},
		Category:     model.CategoryPerfume,
	},
}
