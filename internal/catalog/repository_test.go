package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/viniciusmachado/adega-backend/pkg/enums"
	pkgerrors "github.com/viniciusmachado/adega-backend/pkg/errors"
)

func setupCatalogTestDB(t *testing.T) *Repository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	repo := NewRepository(db)
	require.NoError(t, repo.AutoMigrate())
	return repo
}

func TestRepositoryProductsKeepDisplayOrder(t *testing.T) {
	repo := setupCatalogTestDB(t)
	ctx := context.Background()

	rows := []Product{
		{ID: uuid.New(), Name: "Gelo 2kg", ProductType: enums.ProductTypeGelo, SalePrice: decimal.RequireFromString("4.00"), Stock: 30, IsActive: true, Position: 3},
		{ID: uuid.New(), Name: "Vodka X", ProductType: enums.ProductTypeDestilado, SalePrice: decimal.RequireFromString("50.00"), Stock: 3, IsActive: true, Position: 1},
		{ID: uuid.New(), Name: "Red Bull 2L", ProductType: enums.ProductTypeEnergetico, SalePrice: decimal.RequireFromString("12.00"), Stock: 2, IsActive: true, Position: 2},
	}
	require.NoError(t, repo.db.WithContext(ctx).Create(&rows).Error)

	products, err := repo.Products(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "Vodka X", products[0].Name)
	assert.Equal(t, "Red Bull 2L", products[1].Name)
	assert.Equal(t, "Gelo 2kg", products[2].Name)
}

func TestRepositoryProductsByType(t *testing.T) {
	repo := setupCatalogTestDB(t)
	ctx := context.Background()

	rows := []Product{
		{ID: uuid.New(), Name: "Vodka X", ProductType: enums.ProductTypeDestilado, SalePrice: decimal.RequireFromString("50.00"), Stock: 3, IsActive: true, Position: 1},
		{ID: uuid.New(), Name: "Gelo 2kg", ProductType: enums.ProductTypeGelo, SalePrice: decimal.RequireFromString("4.00"), Stock: 30, IsActive: true, Position: 2},
	}
	require.NoError(t, repo.db.WithContext(ctx).Create(&rows).Error)

	gelos, err := repo.ProductsByType(ctx, enums.ProductTypeGelo)
	require.NoError(t, err)
	require.Len(t, gelos, 1)
	assert.Equal(t, "Gelo 2kg", gelos[0].Name)
}

func TestRepositoryProductByIDNotFound(t *testing.T) {
	repo := setupCatalogTestDB(t)

	_, err := repo.ProductByID(context.Background(), uuid.New())
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestRepositorySeedDevIsIdempotent(t *testing.T) {
	repo := setupCatalogTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.SeedDev(ctx))
	first, err := repo.Products(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	require.NoError(t, repo.SeedDev(ctx))
	second, err := repo.Products(ctx)
	require.NoError(t, err)
	assert.Len(t, second, len(first))
}
