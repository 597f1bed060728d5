package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/oud-emporium/internal/common"
	"github.com/Veraticus/oud-emporium/internal/i18n"
	"github.com/Veraticus/oud-emporium/internal/model"
	"github.com/Veraticus/oud-emporium/internal/navigation"
	"github.com/Veraticus/oud-emporium/internal/recommend"
	"github.com/charmbracelet/lipgloss"
)

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	state := m.nav.State()
	var body string
	switch {
	case state.View == model.ViewHome:
		body = m.renderHome()
	case state.View == model.ViewCategory:
		body = m.renderCategory(state.Category)
	case state.View == model.ViewProduct:
		body = m.renderProduct(state)
	case state.View == model.ViewCart:
		body = m.renderCart()
	case state.View == model.ViewRecommender:
		body = m.renderRecommender()
	case state.View.IsInfo():
		body = m.renderInfo(state.View)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		"",
		body,
		"",
		m.help.View(m.keymap),
	)
}

func (m Model) t(key string) string {
	return m.translator.Translate(key)
}

// renderHeader shows the shop title, the cart badge and the language toggle.
func (m Model) renderHeader() string {
	title := m.theme.Title.Render(m.t("appTitle"))
	badge := m.theme.Badge.Render(fmt.Sprintf("%s %d", m.t("navCart"), m.cart.ItemCount()))
	lang := m.theme.Tag.Render(fmt.Sprintf("%s: %s", m.t("navLanguage"), strings.ToUpper(m.translator.Language())))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", badge, " ", lang)
}

func (m Model) renderHome() string {
	var b strings.Builder
	b.WriteString(m.theme.Subtitle.Render(m.t("tagline")))
	b.WriteString("\n\n")

	for i, entry := range m.menu {
		switch {
		case i == 0:
			b.WriteString(m.theme.Bold.Render(m.t("categories")) + "\n")
		case entry.view == model.ViewRecommender:
			b.WriteString("\n" + m.theme.Bold.Render(m.t("featured")) + "\n")
		case entry.view.IsInfo() && m.menu[i-1].view == model.ViewRecommender:
			b.WriteString("\n" + m.theme.Bold.Render(m.t("discover")) + "\n")
		}
		b.WriteString(m.renderItem(i == m.cursor, m.t(entry.labelKey)) + "\n")
	}
	return b.String()
}

func (m Model) renderItem(selected bool, label string) string {
	if selected {
		return m.theme.Selected.Render("> " + label)
	}
	return m.theme.Normal.Render("  " + label)
}

func (m Model) renderCategory(category model.Category) string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(m.t(i18n.CategoryKey(category))))
	b.WriteString("\n\n")

	products := m.catalog.ByCategory(category)
	if len(products) == 0 {
		b.WriteString(m.theme.Italic.Render(m.t("noProducts")))
		return b.String()
	}

	for i, p := range products {
		line := fmt.Sprintf("%-28s %s  %s", p.Name, m.theme.Price.Render(formatPrice(p.Price)), m.renderTags(p.ScentProfile))
		b.WriteString(m.renderItem(i == m.cursor, line) + "\n")
	}
	return b.String()
}

func (m Model) renderTags(tags []string) string {
	rendered := make([]string, 0, len(tags))
	for _, tag := range tags {
		rendered = append(rendered, m.theme.Tag.Render(tag))
	}
	return strings.Join(rendered, " ")
}

func (m Model) renderProduct(state navigation.State) string {
	p, ok := m.catalog.Lookup(state.ProductID)
	if !ok {
		return m.theme.StatusError.Render(m.t("noProducts"))
	}

	back := m.t("backToHome")
	if p.Category != "" {
		back = m.t("backToCollection")
	}

	var b strings.Builder
	b.WriteString(m.theme.Italic.Render("← " + back))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Title.Render(p.Name))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render(m.t(i18n.CategoryKey(p.Category))))
	b.WriteString("\n")
	b.WriteString(m.theme.Price.Render(formatPrice(p.Price)))
	b.WriteString("\n\n")
	b.WriteString(m.markdown(p.Description))
	b.WriteString("\n")
	b.WriteString(m.theme.Bold.Render(m.t("scentProfile")) + "  " + m.renderTags(p.ScentProfile))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s  [-] %d [+]", m.t("quantity"), m.quantity))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Highlighted.Render(m.t("addToCart")))
	return b.String()
}

func (m Model) renderCart() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(m.t("shoppingCart")))
	b.WriteString("\n\n")

	items := m.cart.Items()
	if len(items) == 0 {
		b.WriteString(m.theme.Italic.Render(m.t("cartEmpty")))
		b.WriteString("\n\n")
		b.WriteString(m.theme.Highlighted.Render(m.t("continueShopping")))
		return b.String()
	}

	for i, item := range items {
		line := fmt.Sprintf("%-28s %3d × %s = %s",
			item.Product.Name,
			item.Quantity,
			formatPrice(item.Product.Price),
			m.theme.Price.Render(formatPrice(item.LineTotal())))
		b.WriteString(m.renderItem(i == m.cursor, line) + "\n")
	}

	subtotal := m.cart.Subtotal()
	summary := strings.Join([]string{
		m.theme.Bold.Render(m.t("orderSummary")),
		fmt.Sprintf("%-12s %s", m.t("subtotal"), formatPrice(subtotal)),
		fmt.Sprintf("%-12s %s", m.t("shipping"), m.t("free")),
		fmt.Sprintf("%-12s %s", m.t("total"), m.theme.Price.Render(formatPrice(subtotal))),
	}, "\n")

	b.WriteString("\n")
	b.WriteString(m.theme.RoundedBox.Render(summary))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Highlighted.Render(m.t("proceedToCheckout")))
	b.WriteString("  ")
	b.WriteString(m.theme.Italic.Render(m.t("continueShopping")))
	return b.String()
}

func (m Model) renderRecommender() string {
	snap := m.session.Snapshot()

	var b strings.Builder
	b.WriteString(m.theme.Title.Render(m.t("aiScentConcierge")))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render(m.t("conciergeSubtitle")))
	b.WriteString("\n\n")

	b.WriteString(m.renderRow(rowOccasion, m.t("whatsTheOccasion"),
		"‹ "+m.t(recommend.OccasionKey(snap.Draft.Occasion))+" ›"))
	b.WriteString(m.renderRow(rowMood, m.t("whatMood"),
		"‹ "+m.t(recommend.MoodKey(snap.Draft.Mood))+" ›"))

	scents := make([]string, 0, len(recommend.ScentFamilies))
	for i, scent := range recommend.ScentFamilies {
		mark := "[ ]"
		if m.session.IsSelected(scent) {
			mark = "[x]"
		}
		label := mark + " " + scent
		if m.row == rowScents && i == m.scentCursor {
			label = m.theme.Selected.Render(label)
		}
		scents = append(scents, label)
	}
	b.WriteString(m.renderRow(rowScents, m.t("whichScentFamilies"), strings.Join(scents, "  ")))

	button := m.t("findMyScent")
	if snap.State == recommend.StateLoading {
		button = m.spinner.View() + " " + m.t("analyzing")
	}
	b.WriteString("\n")
	if m.row == rowSubmit {
		b.WriteString(m.theme.Highlighted.Render(button))
	} else {
		b.WriteString(m.theme.Bold.Render(button))
	}
	b.WriteString("\n\n")

	switch snap.State {
	case recommend.StateFailed:
		b.WriteString(m.theme.StatusError.Render(common.UserMessage(snap.Err)))
	case recommend.StateSucceeded:
		b.WriteString(m.renderRecommendation(snap.Result))
	}
	return b.String()
}

func (m Model) renderRow(row formRow, label, value string) string {
	heading := m.theme.Bold.Render(label)
	if m.row == row {
		heading = m.theme.Selected.Render(label)
	}
	return heading + "\n  " + value + "\n\n"
}

func (m Model) renderRecommendation(result *recommend.Result) string {
	if result == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.theme.Subtitle.Render(m.t("yourRecommendation")))
	b.WriteString("\n")
	if p, ok := m.catalog.Lookup(result.ProductID); ok {
		b.WriteString(m.theme.Title.Render(p.Name) + "  " + m.theme.Price.Render(formatPrice(p.Price)))
		b.WriteString("\n")
	}
	b.WriteString(m.markdown(result.Reasoning))
	b.WriteString(m.theme.Bold.Render(m.t("suggestedOccasion")) + " " + result.OccasionSuggestion)
	b.WriteString("\n\n")
	b.WriteString(m.theme.Highlighted.Render(m.t("viewProduct")))
	return m.theme.Box.Render(b.String())
}

func (m Model) renderInfo(view model.View) string {
	titleKey, messageKey := i18n.InfoKeys(view)
	md := fmt.Sprintf("# %s\n\n%s\n", m.t(titleKey), m.t(messageKey))
	return m.markdown(md) + "\n" + m.theme.Italic.Render("← "+m.t("backToHome"))
}

// markdown renders long-form text, returning it unchanged if rendering fails.
func (m Model) markdown(md string) string {
	if m.renderer == nil {
		return md + "\n"
	}
	out, err := m.renderer.Render(md)
	if err != nil {
		m.logger.Debug("markdown render failed", "error", err)
		return md + "\n"
	}
	return out
}

func formatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}
