// Package navigation tracks which storefront screen is visible and the
// context it was opened with.
package navigation

import "github.com/Veraticus/oud-emporium/internal/model"

// State is one snapshot of the navigation machine. Category is set only on
// the category view and ProductID only on the product view.
type State struct {
	View      model.View
	Category  model.Category
	ProductID string
}

// Initial is the state a session starts in.
func Initial() State {
	return State{View: model.ViewHome}
}

// GoTo moves to view. The category is kept only when view is the category
// listing; the selected product is always cleared.
func GoTo(view model.View, category model.Category) State {
	if view != model.ViewCategory {
		category = ""
	}
	return State{View: view, Category: category}
}

// ViewProduct opens the detail screen for productID.
func ViewProduct(productID string) State {
	return State{View: model.ViewProduct, ProductID: productID}
}

// BackFromProduct returns the screen that product detail leads back to: the
// listing of origin when it is set, home otherwise.
func BackFromProduct(origin model.Category) State {
	if origin == "" {
		return Initial()
	}
	return GoTo(model.ViewCategory, origin)
}

// Machine owns the current State and replaces it wholesale on each transition.
type Machine struct {
	state State
}

// NewMachine returns a machine at the initial state.
func NewMachine() *Machine {
	return &Machine{state: Initial()}
}

// State returns the current snapshot.
func (m *Machine) State() State {
	return m.state
}

// GoTo moves to view with an optional category.
func (m *Machine) GoTo(view model.View, category model.Category) State {
	m.state = GoTo(view, category)
	return m.state
}

// ViewProduct opens the product detail screen.
func (m *Machine) ViewProduct(productID string) State {
	m.state = ViewProduct(productID)
	return m.state
}

// Back leaves product detail for the category product belongs to, or home.
// Outside product detail it returns home.
func (m *Machine) Back(product model.Product) State {
	if m.state.View != model.ViewProduct {
		m.state = Initial()
		return m.state
	}
	m.state = BackFromProduct(product.Category)
	return m.state
}

// Home resets to the initial state.
func (m *Machine) Home() State {
	m.state = Initial()
	return m.state
}
