package tui

import (
	"github.com/Veraticus/oud-emporium/internal/recommend"
	tea "github.com/charmbracelet/bubbletea"
)

// requestRecommendation resolves ticket off the UI loop. The client bounds
// the model call with its own timeout and always returns a result.
func (m Model) requestRecommendation(ticket recommend.Ticket) tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		result := session.Resolve(ctx, ticket)
		return recommendationMsg{ticket: ticket, result: result}
	}
}
