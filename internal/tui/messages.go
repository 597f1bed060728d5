package tui

import (
	"github.com/Veraticus/oud-emporium/internal/model"
	"github.com/Veraticus/oud-emporium/internal/recommend"
)

// recommendationMsg carries a finished request back to the UI loop.
type recommendationMsg struct {
	ticket recommend.Ticket
	result recommend.Result
}

// formRow is a focusable row of the recommendation form.
type formRow int

const (
	rowOccasion formRow = iota
	rowMood
	rowScents
	rowSubmit
)

// menuEntry is one selectable line on the home screen.
type menuEntry struct {
	labelKey string
	view     model.View
	category model.Category
}
