package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/Veraticus/oud-emporium/internal/i18n"
	"github.com/Veraticus/oud-emporium/internal/tui"
	"github.com/Veraticus/oud-emporium/internal/tui/themes"
	"github.com/spf13/cobra"
)

func shopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Open the interactive storefront",
		Long: `Open the interactive storefront. Browse collections, manage the cart
and ask the scent concierge for a recommendation.`,
		RunE: runShop,
	}

	cmd.Flags().String("theme", "default", "color theme (default, catppuccin-mocha)")
	cmd.Flags().Bool("no-alt-screen", false, "render inline instead of using the alternate screen")

	return cmd
}

func runShop(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to a file or nowhere
	logWriter := io.Discard
	if cfg.Logging.File != "" {
		f, fileErr := openLogFile(cfg.Logging.File)
		if fileErr != nil {
			return fileErr
		}
		defer f.Close()
		logWriter = f
	}
	if err := setupLogging(logWriter); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	logger := slog.Default()

	cat, err := loadCatalog(ctx, cfg, logger)
	if err != nil {
		return err
	}

	translator, err := i18n.New(cfg.Language)
	if err != nil {
		return fmt.Errorf("invalid language: %w", err)
	}

	recommender, closeModel, err := newRecommender(ctx, cfg, cat, logger)
	if err != nil {
		return err
	}
	defer closeModel()

	themeName, _ := cmd.Flags().GetString("theme")
	noAltScreen, _ := cmd.Flags().GetBool("no-alt-screen")

	return tui.Run(ctx,
		tui.WithCatalog(cat),
		tui.WithRecommender(recommender),
		tui.WithTranslator(translator),
		tui.WithTheme(themes.GetTheme(themeName)),
		tui.WithLogger(logger),
		tui.WithAltScreen(!noAltScreen),
	)
}
