package navigation

import (
	"testing"

	"github.com/Veraticus/oud-emporium/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestInitial(t *testing.T) {
	m := NewMachine()
	assert.Equal(t, State{View: model.ViewHome}, m.State())
}

func TestGoTo(t *testing.T) {
	tests := []struct {
		name     string
		view     model.View
		category model.Category
		want     State
	}{
		{
			name:     "category listing keeps category",
			view:     model.ViewCategory,
			category: model.CategoryPerfume,
			want:     State{View: model.ViewCategory, Category: model.CategoryPerfume},
		},
		{
			name:     "cart drops category",
			view:     model.ViewCart,
			category: model.CategoryPerfume,
			want:     State{View: model.ViewCart},
		},
		{
			name: "info view",
			view: model.ViewFAQ,
			want: State{View: model.ViewFAQ},
		},
		{
			name: "recommender",
			view: model.ViewRecommender,
			want: State{View: model.ViewRecommender},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine()
			m.ViewProduct("oud-001")
			assert.Equal(t, tt.want, m.GoTo(tt.view, tt.category))
			assert.Empty(t, m.State().ProductID)
		})
	}
}

func TestViewProductClearsCategory(t *testing.T) {
	m := NewMachine()
	m.GoTo(model.ViewCategory, model.CategoryBakhoor)

	got := m.ViewProduct("oud-005")

	assert.Equal(t, State{View: model.ViewProduct, ProductID: "oud-005"}, got)
}

func TestBack(t *testing.T) {
	tests := []struct {
		name    string
		product model.Product
		want    State
	}{
		{
			name:    "categorised product returns to its listing",
			product: model.Product{ID: "oud-003", Category: model.CategoryPerfume},
			want:    State{View: model.ViewCategory, Category: model.CategoryPerfume},
		},
		{
			name:    "uncategorised product returns home",
			product: model.Product{ID: "loose"},
			want:    State{View: model.ViewHome},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine()
			m.ViewProduct(tt.product.ID)
			assert.Equal(t, tt.want, m.Back(tt.product))
			assert.Equal(t, tt.want, m.State())
		})
	}
}

func TestBackIgnoresHistory(t *testing.T) {
	m := NewMachine()
	m.GoTo(model.ViewCategory, model.CategoryBakhoor)
	m.ViewProduct("oud-003")

	got := m.Back(model.Product{ID: "oud-003", Category: model.CategoryPerfume})

	assert.Equal(t, model.CategoryPerfume, got.Category)
}

func TestBackOutsideProductGoesHome(t *testing.T) {
	m := NewMachine()
	m.GoTo(model.ViewCart, "")
	assert.Equal(t, Initial(), m.Back(model.Product{Category: model.CategoryMist}))
}

func TestHome(t *testing.T) {
	m := NewMachine()
	m.ViewProduct("oud-001")
	assert.Equal(t, Initial(), m.Home())
}
