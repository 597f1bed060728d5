package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/oud-emporium/internal/catalog"
	"github.com/Veraticus/oud-emporium/internal/model"
)

// Validation errors.
var (
	ErrNilContext   = errors.New("context cannot be nil")
	ErrEmptyString  = errors.New("string parameter cannot be empty")
	ErrEmptySlice   = errors.New("slice cannot be empty")
	ErrInvalidInput = errors.New("invalid product")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateProducts validates a batch before it touches the database.
func validateProducts(products []model.Product) error {
	if len(products) == 0 {
		return fmt.Errorf("%w: products", ErrEmptySlice)
	}

	seen := make(map[string]struct{}, len(products))
	for i, p := range products {
		if err := catalog.Validate(p); err != nil {
			return fmt.Errorf("%w at index %d: %w", ErrInvalidInput, i, err)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w at index %d: duplicate id %q", ErrInvalidInput, i, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}
