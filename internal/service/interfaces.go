// Package service defines the interfaces shared between application layers.
package service

import (
	"context"
	"time"

	"github.com/Veraticus/oud-emporium/internal/model"
)

// CatalogStorage is the persistence contract for the product catalog.
// It is read once at startup; the running storefront never writes to it.
type CatalogStorage interface {
	// Product operations
	SaveProducts(ctx context.Context, products []model.Product) error
	GetProducts(ctx context.Context) ([]model.Product, error)
	GetProductByID(ctx context.Context, id string) (*model.Product, error)
	CountProducts(ctx context.Context) (int, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// Translator resolves human-readable labels for the active language.
type Translator interface {
	Translate(key string) string
	Language() string
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
