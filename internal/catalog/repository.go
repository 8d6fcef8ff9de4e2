package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/viniciusmachado/adega-backend/pkg/enums"
	pkgerrors "github.com/viniciusmachado/adega-backend/pkg/errors"
)

// Repository reads the catalog from the storefront database.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Products lists the whole catalog in display order.
func (r *Repository) Products(ctx context.Context) ([]Product, error) {
	var products []Product
	err := r.db.WithContext(ctx).
		Order("position ASC, created_at ASC").
		Find(&products).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}
	return products, nil
}

// ProductsByType lists catalog entries of one type, preserving display order.
func (r *Repository) ProductsByType(ctx context.Context, productType enums.ProductType) ([]Product, error) {
	var products []Product
	err := r.db.WithContext(ctx).
		Where("product_type = ?", productType).
		Order("position ASC, created_at ASC").
		Find(&products).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products by type")
	}
	return products, nil
}

// ProductByID loads a single listing.
func (r *Repository) ProductByID(ctx context.Context, id uuid.UUID) (*Product, error) {
	var product Product
	err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return &product, nil
}

// AutoMigrate creates the catalog schema. Dev bootstrap only.
func (r *Repository) AutoMigrate() error {
	return r.db.AutoMigrate(&Product{})
}
