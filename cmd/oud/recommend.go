package main

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/oud-emporium/internal/cli"
	"github.com/Veraticus/oud-emporium/internal/common"
	"github.com/Veraticus/oud-emporium/internal/i18n"
	"github.com/Veraticus/oud-emporium/internal/recommend"
	"github.com/spf13/cobra"
)

func recommendCmd() *cobra.Command {
	var (
		occasion string
		mood     string
		scents   []string
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Ask the scent concierge for a single recommendation",
		Long: `Ask the scent concierge for a single recommendation.

Occasion and mood accept the option keys shown by the storefront
(for example eveningGala, warmCozy) or free text.`,
		Example: `  oud recommend --occasion eveningGala --mood confidentPowerful --scent Woody --scent Spicy`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
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

			session := recommend.NewSession(recommender, translator)
			if occasion != "" {
				session.SetOccasion(occasion)
			}
			if mood != "" {
				session.SetMood(mood)
			}
			for _, scent := range scents {
				session.ToggleScent(scent)
			}

			result, err := session.Submit(ctx)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatError(common.UserMessage(err)))
				return err
			}

			product, _ := cat.Lookup(result.ProductID)
			var note string
			if result.Source == recommend.SourceFallback {
				note = fmt.Sprintf("fallback: %s", result.Reason)
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderRecommendation(product, result.Recommendation, note))
			return nil
		},
	}

	cmd.Flags().StringVar(&occasion, "occasion", "", "occasion key or free text (default: eveningGala)")
	cmd.Flags().StringVar(&mood, "mood", "", "mood key or free text (default: confidentPowerful)")
	cmd.Flags().StringArrayVar(&scents, "scent", nil, "preferred scent family, repeatable (Woody, Floral, Spicy, Citrus, Gourmand, Leather, Fresh)")

	return cmd
}
