package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Veraticus/oud-emporium/internal/service"
)

// Load reads the catalog out of store once. An empty store is seeded with
// the built-in assortment first so a fresh database is immediately usable.
func Load(ctx context.Context, store service.CatalogStorage, logger *slog.Logger) (*Catalog, error) {
	if logger == nil {
		logger = slog.Default()
	}

	count, err := store.CountProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	if count == 0 {
		logger.Info("catalog database is empty, seeding built-in assortment",
			"products", len(defaultProducts))
		if err := store.SaveProducts(ctx, defaultProducts); err != nil {
			return nil, fmt.Errorf("failed to seed catalog: %w", err)
		}
	}

	products, err := store.GetProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	c, err := New(products)
	if err != nil {
		return nil, fmt.Errorf("stored catalog is invalid: %w", err)
	}

	logger.Debug("catalog loaded", "products", c.Len())
	return c, nil
}
