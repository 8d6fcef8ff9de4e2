package enums

import "fmt"

// ProductType represents the canonical beverage categories carried by the catalog.
type ProductType string

const (
	ProductTypeDestilado    ProductType = "destilado"
	ProductTypeEnergetico   ProductType = "energetico"
	ProductTypeGelo         ProductType = "gelo"
	ProductTypeCerveja      ProductType = "cerveja"
	ProductTypeVinho        ProductType = "vinho"
	ProductTypeRefrigerante ProductType = "refrigerante"
	ProductTypeOutros       ProductType = "outros"
)

var validProductTypes = []ProductType{
	ProductTypeDestilado,
	ProductTypeEnergetico,
	ProductTypeGelo,
	ProductTypeCerveja,
	ProductTypeVinho,
	ProductTypeRefrigerante,
	ProductTypeOutros,
}

// String implements fmt.Stringer.
func (p ProductType) String() string {
	return string(p)
}

// IsValid reports whether the value is a known ProductType.
func (p ProductType) IsValid() bool {
	for _, candidate := range validProductTypes {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseProductType converts raw input into a ProductType.
func ParseProductType(value string) (ProductType, error) {
	for _, candidate := range validProductTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product type %q", value)
}
