package cli

import (
	"testing"

	"github.com/Veraticus/oud-emporium/internal/catalog"
	"github.com/Veraticus/oud-emporium/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestRenderProductTable(t *testing.T) {
	tests := []struct {
		name     string
		products []model.Product
		want     []string
	}{
		{
			name:     "empty",
			products: nil,
			want:     []string{"No products."},
		},
		{
			name:     "default assortment",
			products: catalog.DefaultProducts()[:2],
			want:     []string{"ID", "SCENT PROFILE", "oud-001", "Royal Cambodian Oud", "$245.00", "Woody, Leather, Sweet", "oud-002"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderProductTable(tt.products)
			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestRenderRecommendation(t *testing.T) {
	product := catalog.DefaultProducts()[0]
	rec := model.Recommendation{
		ProductID:          product.ID,
		Reasoning:          "Smoky",
		OccasionSuggestion: "Dusk",
	}

	out := RenderRecommendation(product, rec, "fallback: no_credential")
	assert.Contains(t, out, "Your recommendation")
	assert.Contains(t, out, product.Name)
	assert.Contains(t, out, "Smoky")
	assert.Contains(t, out, "Dusk")
	assert.Contains(t, out, "no_credential")

	assert.NotContains(t, RenderRecommendation(product, rec, ""), "fallback")
}

func TestFormatHelpers(t *testing.T) {
	assert.Contains(t, FormatSuccess("saved"), "saved")
	assert.Contains(t, FormatError("failed"), ErrorIcon)
	assert.Contains(t, FormatWarning("careful"), "careful")
	assert.Contains(t, FormatInfo("note"), "note")
	assert.Contains(t, FormatTitle("House of Oud"), OudIcon)
}
