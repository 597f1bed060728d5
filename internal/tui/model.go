package tui

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Veraticus/oud-emporium/internal/cart"
	"github.com/Veraticus/oud-emporium/internal/catalog"
	"github.com/Veraticus/oud-emporium/internal/i18n"
	"github.com/Veraticus/oud-emporium/internal/model"
	"github.com/Veraticus/oud-emporium/internal/navigation"
	"github.com/Veraticus/oud-emporium/internal/recommend"
	"github.com/Veraticus/oud-emporium/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Model is the storefront controller. It composes the navigation machine,
// the cart and the recommendation session, and is the only caller of each.
type Model struct {
	ctx         context.Context
	theme       themes.Theme
	logger      *slog.Logger
	catalog     *catalog.Catalog
	translator  *i18n.Translator
	nav         *navigation.Machine
	cart        *cart.Cart
	session     *recommend.Session
	renderer    *glamour.TermRenderer
	config      Config
	keymap      KeyMap
	help        help.Model
	spinner     spinner.Model
	menu        []menuEntry
	width       int
	height      int
	cursor      int
	quantity    int
	scentCursor int
	row         formRow
	quitting    bool
}

// New creates the storefront model.
func New(opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newModel(cfg)
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	if cfg.Context == nil {
		cfg.Context = context.Background()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Catalog == nil {
		cfg.Catalog = catalog.Default()
	}
	if cfg.Translator == nil {
		cfg.Translator, _ = i18n.New(i18n.English)
	}
	if cfg.Recommender == nil {
		cfg.Recommender = recommend.NewClient(cfg.Catalog, recommend.WithLogger(cfg.Logger))
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(cfg.Theme.Primary)

	m := Model{
		ctx:        cfg.Context,
		theme:      cfg.Theme,
		logger:     cfg.Logger,
		catalog:    cfg.Catalog,
		translator: cfg.Translator,
		nav:        navigation.NewMachine(),
		cart:       cart.New(),
		session:    recommend.NewSession(cfg.Recommender, cfg.Translator),
		config:     cfg,
		keymap:     DefaultKeyMap(),
		help:       help.New(),
		spinner:    sp,
		menu:       buildMenu(),
		width:      cfg.Width,
		height:     cfg.Height,
		quantity:   1,
	}
	m.help.Width = cfg.Width
	m.renderer = newRenderer(cfg.MarkdownStyle, cfg.Width)
	return m
}

func newRenderer(style string, width int) *glamour.TermRenderer {
	wrap := width - 8
	if wrap < 40 {
		wrap = 40
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return nil
	}
	return r
}

func buildMenu() []menuEntry {
	entries := make([]menuEntry, 0, len(model.Categories)+len(model.InfoViews)+1)
	for _, c := range model.Categories {
		entries = append(entries, menuEntry{labelKey: i18n.CategoryKey(c), view: model.ViewCategory, category: c})
	}
	entries = append(entries, menuEntry{labelKey: "aiScentConcierge", view: model.ViewRecommender})
	for _, v := range model.InfoViews {
		title, _ := i18n.InfoKeys(v)
		entries = append(entries, menuEntry{labelKey: title, view: v})
	}
	return entries
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.renderer = newRenderer(m.config.MarkdownStyle, msg.Width)
		return m, nil

	case spinner.TickMsg:
		if m.session.State() != recommend.StateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case recommendationMsg:
		m.logger.Debug("recommendation delivered",
			"request_id", msg.result.RequestID,
			"product_id", msg.result.ProductID,
			"source", string(msg.result.Source))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes a key press to the global bindings, then the active view.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.ForceQuit), key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keymap.Language):
		if err := m.translator.SetLanguage(m.translator.Next()); err != nil {
			m.logger.Warn("language switch failed", "error", err)
		}
		return m, nil
	case key.Matches(msg, m.keymap.Cart):
		m.goTo(model.ViewCart, "")
		return m, nil
	case key.Matches(msg, m.keymap.Concierge):
		m.goTo(model.ViewRecommender, "")
		return m, nil
	case key.Matches(msg, m.keymap.Home):
		m.goTo(model.ViewHome, "")
		return m, nil
	}

	state := m.nav.State()
	switch {
	case state.View == model.ViewHome:
		m.updateHome(msg)
	case state.View == model.ViewCategory:
		m.updateCategory(msg, state.Category)
	case state.View == model.ViewProduct:
		m.updateProduct(msg, state.ProductID)
	case state.View == model.ViewCart:
		m.updateCart(msg)
	case state.View == model.ViewRecommender:
		return m, m.updateRecommender(msg)
	case state.View.IsInfo():
		if key.Matches(msg, m.keymap.Back) {
			m.goTo(model.ViewHome, "")
		}
	}
	return m, nil
}

// goTo changes screen and resets per-screen cursors. Entering the
// concierge starts a fresh form unless a request is still loading.
func (m *Model) goTo(view model.View, category model.Category) {
	m.nav.GoTo(view, category)
	m.cursor = 0
	if view == model.ViewRecommender && m.session.State() != recommend.StateLoading {
		m.session.Reset()
		m.row = rowOccasion
	}
}

func (m *Model) viewProduct(id string) {
	m.nav.ViewProduct(id)
	m.quantity = 1
}

func (m *Model) updateHome(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keymap.Up):
		m.cursor = clamp(m.cursor-1, len(m.menu))
	case key.Matches(msg, m.keymap.Down):
		m.cursor = clamp(m.cursor+1, len(m.menu))
	case key.Matches(msg, m.keymap.Select):
		entry := m.menu[m.cursor]
		m.goTo(entry.view, entry.category)
	}
}

func (m *Model) updateCategory(msg tea.KeyMsg, category model.Category) {
	products := m.catalog.ByCategory(category)
	switch {
	case key.Matches(msg, m.keymap.Up):
		m.cursor = clamp(m.cursor-1, len(products))
	case key.Matches(msg, m.keymap.Down):
		m.cursor = clamp(m.cursor+1, len(products))
	case key.Matches(msg, m.keymap.Select):
		if len(products) > 0 {
			m.viewProduct(products[m.cursor].ID)
		}
	case key.Matches(msg, m.keymap.Back):
		m.goTo(model.ViewHome, "")
	}
}

func (m *Model) updateProduct(msg tea.KeyMsg, productID string) {
	product, ok := m.catalog.Lookup(productID)
	if !ok {
		m.goTo(model.ViewHome, "")
		return
	}

	switch {
	case key.Matches(msg, m.keymap.Increase):
		m.quantity++
	case key.Matches(msg, m.keymap.Decrease):
		if m.quantity > 1 {
			m.quantity--
		}
	case key.Matches(msg, m.keymap.AddToCart), key.Matches(msg, m.keymap.Select):
		m.cart.AddItem(product, m.quantity)
		m.goTo(model.ViewCart, "")
	case key.Matches(msg, m.keymap.Back):
		state := m.nav.Back(product)
		m.cursor = 0
		for i, p := range m.catalog.ByCategory(state.Category) {
			if state.View == model.ViewCategory && p.ID == product.ID {
				m.cursor = i
			}
		}
	}
}

func (m *Model) updateCart(msg tea.KeyMsg) {
	items := m.cart.Items()
	if len(items) == 0 {
		if key.Matches(msg, m.keymap.Back) || key.Matches(msg, m.keymap.Select) {
			m.goTo(model.ViewHome, "")
		}
		return
	}

	line := items[clamp(m.cursor, len(items))]
	switch {
	case key.Matches(msg, m.keymap.Up):
		m.cursor = clamp(m.cursor-1, len(items))
	case key.Matches(msg, m.keymap.Down):
		m.cursor = clamp(m.cursor+1, len(items))
	case key.Matches(msg, m.keymap.Increase):
		m.cart.UpdateQuantity(line.Product.ID, line.Quantity+1)
	case key.Matches(msg, m.keymap.Decrease):
		m.cart.UpdateQuantity(line.Product.ID, line.Quantity-1)
	case key.Matches(msg, m.keymap.Remove):
		m.cart.RemoveItem(line.Product.ID)
	case key.Matches(msg, m.keymap.Back):
		m.goTo(model.ViewHome, "")
	}
	m.cursor = clamp(m.cursor, m.cart.Len())
}

func (m *Model) updateRecommender(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keymap.Up):
		if m.row > rowOccasion {
			m.row--
		}
	case key.Matches(msg, m.keymap.Down):
		if m.row < rowSubmit {
			m.row++
		}
	case key.Matches(msg, m.keymap.Left):
		m.shiftOption(-1)
	case key.Matches(msg, m.keymap.Right):
		m.shiftOption(1)
	case key.Matches(msg, m.keymap.Toggle):
		if m.row == rowScents {
			m.session.ToggleScent(recommend.ScentFamilies[m.scentCursor])
		}
	case key.Matches(msg, m.keymap.View):
		if snap := m.session.Snapshot(); snap.Result != nil {
			m.viewProduct(snap.Result.ProductID)
		}
	case key.Matches(msg, m.keymap.Select):
		return m.submit()
	case key.Matches(msg, m.keymap.Back):
		m.goTo(model.ViewHome, "")
	}
	return nil
}

// shiftOption moves the selection on the focused form row by delta.
func (m *Model) shiftOption(delta int) {
	draft := m.session.Snapshot().Draft
	switch m.row {
	case rowOccasion:
		m.session.SetOccasion(cycle(recommend.Occasions, draft.Occasion, delta))
	case rowMood:
		m.session.SetMood(cycle(recommend.Moods, draft.Mood, delta))
	case rowScents:
		m.scentCursor = clamp(m.scentCursor+delta, len(recommend.ScentFamilies))
	}
}

// submit starts a request unless validation fails or one is already loading.
func (m *Model) submit() tea.Cmd {
	ticket, err := m.session.Begin()
	switch {
	case errors.Is(err, recommend.ErrSessionBusy):
		return nil
	case err != nil:
		m.logger.Debug("recommendation rejected", "error", err)
		return nil
	}
	return tea.Batch(m.spinner.Tick, m.requestRecommendation(ticket))
}

func clamp(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func cycle(options []string, current string, delta int) string {
	idx := 0
	for i, o := range options {
		if o == current {
			idx = i
			break
		}
	}
	n := len(options)
	return options[((idx+delta)%n+n)%n]
}
