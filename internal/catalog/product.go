package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/viniciusmachado/adega-backend/pkg/enums"
)

// Product represents one catalog listing. The cart treats products as
// immutable snapshots; only the catalog owner mutates stock or price.
type Product struct {
	ID          uuid.UUID         `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name        string            `gorm:"column:name;not null" json:"name"`
	Description *string           `gorm:"column:description" json:"description,omitempty"`
	ProductType enums.ProductType `gorm:"column:product_type;not null" json:"productType"`
	SalePrice   decimal.Decimal   `gorm:"column:sale_price;type:numeric(10,2);not null" json:"salePrice"`
	Stock       int               `gorm:"column:stock;not null;default:0" json:"stock"`
	IsActive    bool              `gorm:"column:is_active;not null;default:true" json:"isActive"`
	ImageURL    *string           `gorm:"column:image_url" json:"imageUrl,omitempty"`
	Position    int               `gorm:"column:position;not null;default:0" json:"-"`
	CreatedAt   time.Time         `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt   time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

// TableName pins the catalog table.
func (Product) TableName() string {
	return "products"
}

// FindProduct returns the product with the given id from the list, or nil.
func FindProduct(products []Product, id uuid.UUID) *Product {
	for i := range products {
		if products[i].ID == id {
			return &products[i]
		}
	}
	return nil
}
