package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the storefront.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Italic        lipgloss.Style
	Selected      lipgloss.Style
	Highlighted   lipgloss.Style
	Price         lipgloss.Style
	Badge         lipgloss.Style
	Tag           lipgloss.Style
	Box           lipgloss.Style
	RoundedBox    lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusPending lipgloss.Style
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Error         lipgloss.Color
}

// Default is the amber-on-charcoal house theme.
var Default = Theme{
	// Colors
	Primary:   lipgloss.Color("#d4a24c"),
	Secondary: lipgloss.Color("#8c5a2b"),
	Muted:     lipgloss.Color("#8a8178"),
	Border:    lipgloss.Color("#4a3f35"),
	Error:     lipgloss.Color("#e06c5a"),

	// Text styles
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#d4a24c")).
		MarginBottom(1),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#b5a999")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f3ece2")),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#f3ece2")),
	Italic: lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color("#d9cfc1")),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#8c5a2b")).
		Foreground(lipgloss.Color("#fffaf2")).
		Bold(true),
	Highlighted: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#d4a24c")).
		Bold(true),
	Price: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#d4a24c")),
	Badge: lipgloss.NewStyle().
		Background(lipgloss.Color("#d4a24c")).
		Foreground(lipgloss.Color("#1c1712")).
		Padding(0, 1),
	Tag: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#1c1712")).
		Background(lipgloss.Color("#b5a999")).
		Padding(0, 1),

	// Component styles
	Box: lipgloss.NewStyle().
		Padding(1, 2),
	RoundedBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#4a3f35")).
		Padding(1, 2),

	// Status styles
	StatusSuccess: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#9ccc65")).
		Bold(true),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#e06c5a")).
		Bold(true),
	StatusInfo: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7fb2d9")),
	StatusPending: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#8a8178")).
		Italic(true),
}

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = Theme{
	// Colors
	Primary:   lipgloss.Color("#cba6f7"),
	Secondary: lipgloss.Color("#f5c2e7"),
	Muted:     lipgloss.Color("#6c7086"),
	Border:    lipgloss.Color("#45475a"),
	Error:     lipgloss.Color("#f38ba8"),

	// Text styles
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#cba6f7")).
		MarginBottom(1),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#bac2de")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#cdd6f4")),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#cdd6f4")),
	Italic: lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color("#cdd6f4")),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#cba6f7")).
		Foreground(lipgloss.Color("#1e1e2e")).
		Bold(true),
	Highlighted: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f5c2e7")).
		Bold(true),
	Price: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a6e3a1")),
	Badge: lipgloss.NewStyle().
		Background(lipgloss.Color("#f5c2e7")).
		Foreground(lipgloss.Color("#1e1e2e")).
		Padding(0, 1),
	Tag: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#1e1e2e")).
		Background(lipgloss.Color("#89dceb")).
		Padding(0, 1),

	// Component styles
	Box: lipgloss.NewStyle().
		Padding(1, 2),
	RoundedBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#45475a")).
		Padding(1, 2),

	// Status styles
	StatusSuccess: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a6e3a1")).
		Bold(true),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f38ba8")).
		Bold(true),
	StatusInfo: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#89dceb")),
	StatusPending: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6c7086")).
		Italic(true),
}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}
