package main

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/oud-emporium/internal/catalog"
	"github.com/Veraticus/oud-emporium/internal/cli"
	"github.com/Veraticus/oud-emporium/internal/common"
	"github.com/Veraticus/oud-emporium/internal/model"
	"github.com/spf13/cobra"
)

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the product catalog",
		Long:  `List the products on sale, import products from a YAML file, or seed the database with the built-in assortment.`,
	}

	cmd.AddCommand(catalogListCmd())
	cmd.AddCommand(catalogImportCmd())
	cmd.AddCommand(catalogSeedCmd())

	return cmd
}

func catalogListCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			cat, err := loadCatalog(cmd.Context(), cfg, slog.Default())
			if err != nil {
				return err
			}

			products := cat.Products()
			if category != "" {
				c := model.Category(category)
				if !c.IsValid() {
					return fmt.Errorf("%w: unknown category %q", common.ErrInvalidConfig, category)
				}
				products = cat.ByCategory(c)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatTitle("House of Oud catalog"))
			fmt.Fprint(cmd.OutOrStdout(), cli.RenderProductTable(products))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only list products in this category")

	return cmd
}

func catalogImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Import products from a YAML file",
		Long: `Import products from a YAML file into the catalog database.
Existing products with the same id are updated in place.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := catalog.LoadFile(args[0])
			if err != nil {
				return err
			}
			return saveProducts(cmd, products, "Importing products...")
		},
	}
}

func catalogSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Write the built-in assortment to the catalog database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return saveProducts(cmd, catalog.DefaultProducts(), "Seeding catalog...")
		},
	}
}

// saveProducts writes products to the configured database in one
// transaction, reporting progress per row. Nothing is kept if any row fails.
func saveProducts(cmd *cobra.Command, products []model.Product, description string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Catalog.Database == "" {
		return fmt.Errorf("%w: catalog.database (set --database or OUD_CATALOG_DATABASE)", common.ErrMissingConfig)
	}

	store, err := initStorage(ctx, cfg.Catalog.Database)
	if err != nil {
		return fmt.Errorf("failed to open catalog database: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Warn("failed to close catalog database", "error", closeErr)
		}
	}()

	bar := cli.NewProgressBar(cmd.ErrOrStderr(), len(products), description)
	err = store.SaveProductsWithProgress(ctx, products, func(model.Product) error {
		if barErr := bar.Add(1); barErr != nil {
			slog.Warn("Failed to update progress bar", "error", barErr)
		}
		return ctx.Err()
	})
	if err != nil {
		return fmt.Errorf("failed to save products: %w", err)
	}

	count, err := store.CountProducts(ctx)
	if err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Saved %d products (%d in catalog)", len(products), count)))
	return nil
}
