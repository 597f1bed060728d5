package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Veraticus/oud-emporium/internal/common"
	"github.com/Veraticus/oud-emporium/internal/model"
)

// SaveProducts upserts products. New rows are appended after the existing
// catalog order; updated rows keep their position.
func (s *SQLiteStorage) SaveProducts(ctx context.Context, products []model.Product) error {
	return s.SaveProductsWithProgress(ctx, products, nil)
}

// SaveProductsWithProgress upserts products in a single transaction, calling
// onSaved after each row is written. An error from onSaved rolls the whole
// batch back.
func (s *SQLiteStorage) SaveProductsWithProgress(ctx context.Context, products []model.Product, onSaved func(model.Product) error) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateProducts(products); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO products (id, name, description, price, image_url, category, scent_profile, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(position), -1) + 1 FROM products))
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			price = excluded.price,
			image_url = excluded.image_url,
			category = excluded.category,
			scent_profile = excluded.scent_profile,
			updated_at = CURRENT_TIMESTAMP
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, p := range products {
		profile, marshalErr := json.Marshal(scentProfileOrEmpty(p.ScentProfile))
		if marshalErr != nil {
			return fmt.Errorf("failed to marshal scent profile for %s: %w", p.ID, marshalErr)
		}

		if _, execErr := stmt.ExecContext(ctx,
			p.ID, p.Name, p.Description, p.Price, p.ImageURL, string(p.Category), string(profile),
		); execErr != nil {
			return fmt.Errorf("failed to save product %s: %w", p.ID, execErr)
		}

		if onSaved != nil {
			if err := onSaved(p); err != nil {
				return fmt.Errorf("import aborted after %s: %w", p.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit products: %w", err)
	}
	return nil
}

// GetProducts returns every product in catalog order.
func (s *SQLiteStorage) GetProducts(ctx context.Context) ([]model.Product, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, description, price, image_url, category, scent_profile
		FROM products
		ORDER BY position, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var products []model.Product
	for rows.Next() {
		p, scanErr := scanProduct(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}

// GetProductByID returns a single product or common.ErrNotFound.
func (s *SQLiteStorage) GetProductByID(ctx context.Context, id string) (*model.Product, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, description, price, image_url, category, scent_profile
		FROM products
		WHERE id = ?
	`, id)

	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("product %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CountProducts returns the number of stored products.
func (s *SQLiteStorage) CountProducts(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM products").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(row scanner) (model.Product, error) {
	var (
		p        model.Product
		category string
		profile  string
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &category, &profile); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Product{}, err
		}
		return model.Product{}, fmt.Errorf("failed to scan product: %w", err)
	}

	p.Category = model.Category(category)
	if err := json.Unmarshal([]byte(profile), &p.ScentProfile); err != nil {
		return model.Product{}, fmt.Errorf("failed to decode scent profile for %s: %w", p.ID, err)
	}
	return p, nil
}

func scentProfileOrEmpty(profile []string) []string {
	if profile == nil {
		return []string{}
	}
	return profile
}
