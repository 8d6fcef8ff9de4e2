package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/viniciusmachado/adega-backend/pkg/enums"
	pkgerrors "github.com/viniciusmachado/adega-backend/pkg/errors"
)

// SeedDev loads a starter catalog when the table is empty. Dev bootstrap only.
func (r *Repository) SeedDev(ctx context.Context) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&Product{}).Count(&count).Error; err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count products")
	}
	if count > 0 {
		return nil
	}

	seed := []Product{
		{Name: "Vodka Smirnoff 998ml", ProductType: enums.ProductTypeDestilado, SalePrice: decimal.RequireFromString("49.90"), Stock: 12, Position: 1},
		{Name: "Gin Tanqueray 750ml", ProductType: enums.ProductTypeDestilado, SalePrice: decimal.RequireFromString("129.90"), Stock: 6, Position: 2},
		{Name: "Whisky Red Label 1L", ProductType: enums.ProductTypeDestilado, SalePrice: decimal.RequireFromString("119.90"), Stock: 4, Position: 3},
		{Name: "Red Bull 2L", ProductType: enums.ProductTypeEnergetico, SalePrice: decimal.RequireFromString("29.90"), Stock: 8, Position: 4},
		{Name: "Monster Garrafa 2l", ProductType: enums.ProductTypeEnergetico, SalePrice: decimal.RequireFromString("24.90"), Stock: 5, Position: 5},
		{Name: "Red Bull Lata 250ml", ProductType: enums.ProductTypeEnergetico, SalePrice: decimal.RequireFromString("9.90"), Stock: 60, Position: 6},
		{Name: "Monster Lata 473ml", ProductType: enums.ProductTypeEnergetico, SalePrice: decimal.RequireFromString("11.50"), Stock: 40, Position: 7},
		{Name: "Gelo 2kg", ProductType: enums.ProductTypeGelo, SalePrice: decimal.RequireFromString("4.00"), Stock: 30, Position: 8},
		{Name: "Gelo de Coco 2kg", ProductType: enums.ProductTypeGelo, SalePrice: decimal.RequireFromString("8.00"), Stock: 20, Position: 9},
		{Name: "Heineken Long Neck 330ml", ProductType: enums.ProductTypeCerveja, SalePrice: decimal.RequireFromString("7.50"), Stock: 120, Position: 10},
		{Name: "Coca-Cola 2L", ProductType: enums.ProductTypeRefrigerante, SalePrice: decimal.RequireFromString("10.00"), Stock: 48, Position: 11},
	}
	for i := range seed {
		seed[i].ID = uuid.New()
		seed[i].IsActive = true
	}

	if err := r.db.WithContext(ctx).Create(&seed).Error; err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "seed products")
	}
	return nil
}
