package tui

import (
	"context"
	"log/slog"

	"github.com/Veraticus/oud-emporium/internal/catalog"
	"github.com/Veraticus/oud-emporium/internal/i18n"
	"github.com/Veraticus/oud-emporium/internal/recommend"
	"github.com/Veraticus/oud-emporium/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Context       context.Context
	Theme         themes.Theme
	Catalog       *catalog.Catalog
	Recommender   recommend.Recommender
	Translator    *i18n.Translator
	Logger        *slog.Logger
	MarkdownStyle string
	Width         int
	Height        int
	AltScreen     bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Context:       context.Background(),
		Theme:         themes.Default,
		MarkdownStyle: "dark",
		Width:         100,
		Height:        30,
		AltScreen:     true,
	}
}

// WithCatalog sets the product catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(cfg *Config) {
		cfg.Catalog = c
	}
}

// WithRecommender sets the recommendation client.
func WithRecommender(r recommend.Recommender) Option {
	return func(cfg *Config) {
		cfg.Recommender = r
	}
}

// WithTranslator sets the label translator.
func WithTranslator(t *i18n.Translator) Option {
	return func(cfg *Config) {
		cfg.Translator = t
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(cfg *Config) {
		cfg.Theme = theme
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = l
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(cfg *Config) {
		cfg.Width = width
		cfg.Height = height
	}
}

// WithMarkdownStyle sets the glamour style used for long-form text.
func WithMarkdownStyle(style string) Option {
	return func(cfg *Config) {
		cfg.MarkdownStyle = style
	}
}

// WithAltScreen toggles the alternate screen buffer.
func WithAltScreen(enabled bool) Option {
	return func(cfg *Config) {
		cfg.AltScreen = enabled
	}
}

// WithContext sets the context recommendation requests run under.
func WithContext(ctx context.Context) Option {
	return func(cfg *Config) {
		cfg.Context = ctx
	}
}
