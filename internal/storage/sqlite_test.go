package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/Veraticus/oud-emporium/internal/catalog"
	"github.com/Veraticus/oud-emporium/internal/common"
	"github.com/Veraticus/oud-emporium/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestMigrate_IsIdempotent(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, store.Migrate(ctx))

	version, err := store.schemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)
}

func TestNewSQLiteStorage_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "catalog.db")

	store, err := NewSQLiteStorage(path)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	assert.Equal(t, path, store.Path())
	require.NoError(t, store.Migrate(context.Background()))
}

func TestNewSQLiteStorage_RejectsEmptyPath(t *testing.T) {
	_, err := NewSQLiteStorage("  ")
	assert.ErrorIs(t, err, ErrEmptyString)
}

func TestSaveAndGetProducts(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	seed := catalog.DefaultProducts()
	require.NoError(t, store.SaveProducts(ctx, seed))

	got, err := store.GetProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, seed, got, "products should round-trip in catalog order")

	count, err := store.CountProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(seed), count)
}

func TestSaveProducts_UpsertKeepsPosition(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, store.SaveProducts(ctx, []model.Product{
		{ID: "a", Name: "Alpha", Price: 10},
		{ID: "b", Name: "Beta", Price: 20},
	}))

	require.NoError(t, store.SaveProducts(ctx, []model.Product{
		{ID: "c", Name: "Gamma", Price: 30},
		{ID: "a", Name: "Alpha Prime", Price: 11, ScentProfile: []string{"Woody"}},
	}))

	got, err := store.GetProducts(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "Alpha Prime", got[0].Name)
	assert.Equal(t, []string{"Woody"}, got[0].ScentProfile)
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, "c", got[2].ID)
	assert.Equal(t, []string{}, got[1].ScentProfile)
}

func TestSaveProducts_Validation(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	tests := []struct {
		wantErr  error
		name     string
		products []model.Product
	}{
		{name: "empty batch", products: nil, wantErr: ErrEmptySlice},
		{name: "negative price", products: []model.Product{{ID: "x", Name: "X", Price: -5}}, wantErr: ErrInvalidInput},
		{name: "duplicate ids", products: []model.Product{{ID: "x", Name: "X"}, {ID: "x", Name: "Y"}}, wantErr: ErrInvalidInput},
		{name: "bad category", products: []model.Product{{ID: "x", Name: "X", Category: "socks"}}, wantErr: catalog.ErrUnknownCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.SaveProducts(ctx, tt.products)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	count, err := store.CountProducts(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "rejected batches must not write anything")
}

func TestSaveProductsWithProgress(t *testing.T) {
	seed := catalog.DefaultProducts()
	errStop := errors.New("stop")

	tests := []struct {
		name      string
		failAfter int
		wantErr   error
		wantCount int
		wantCalls int
	}{
		{name: "reports every row", failAfter: -1, wantCount: len(seed), wantCalls: len(seed)},
		{name: "failure midway rolls back the batch", failAfter: 3, wantErr: errStop, wantCount: 0, wantCalls: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := setupTestDB(t)
			ctx := context.Background()

			var saved []string
			err := store.SaveProductsWithProgress(ctx, seed, func(p model.Product) error {
				saved = append(saved, p.ID)
				if len(saved) == tt.failAfter {
					return errStop
				}
				return nil
			})

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Len(t, saved, tt.wantCalls)
			assert.Equal(t, seed[0].ID, saved[0])

			count, err := store.CountProducts(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}

func TestGetProductByID(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, store.SaveProducts(ctx, catalog.DefaultProducts()))

	p, err := store.GetProductByID(ctx, "oud-005")
	require.NoError(t, err)
	assert.Equal(t, model.CategoryBakhoor, p.Category)

	_, err = store.GetProductByID(ctx, "oud-404")
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = store.GetProductByID(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyString)
}

func TestNilContext(t *testing.T) {
	store := setupTestDB(t)

	//nolint:staticcheck // exercising the nil guard
	_, err := store.GetProducts(nil)
	assert.ErrorIs(t, err, ErrNilContext)
}
