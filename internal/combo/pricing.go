package combo

import (
	"github.com/shopspring/decimal"

	"github.com/viniciusmachado/adega-backend/internal/catalog"
	"github.com/viniciusmachado/adega-backend/pkg/enums"
)

// DiscountPercent is the fixed discount applied to every combo bundle.
const DiscountPercent = 15

// GeloQuantity is the fixed number of gelo units in a combo.
const GeloQuantity = 5

var (
	hundred        = decimal.NewFromInt(100)
	discountFactor = decimal.NewFromInt(100 - DiscountPercent).Div(hundred)
)

// Quote holds the snapshot totals for a slot triple.
type Quote struct {
	Original   decimal.Decimal `json:"original"`
	Discounted decimal.Decimal `json:"discounted"`
}

// Savings returns the amount taken off by the discount.
func (q Quote) Savings() decimal.Decimal {
	return q.Original.Sub(q.Discounted)
}

// IsZero reports whether the quote is the empty intermediate state.
func (q Quote) IsZero() bool {
	return q.Original.IsZero() && q.Discounted.IsZero()
}

// PriceCombo computes the original and discounted totals for the selected
// triple. Any unselected slot yields a zero quote; that is the valid
// intermediate state while the customer is still picking, not an error.
func PriceCombo(destilado, energetico, gelo *catalog.Product, mode enums.EnergeticoMode) Quote {
	if destilado == nil || energetico == nil || gelo == nil {
		return Quote{Original: decimal.Zero, Discounted: decimal.Zero}
	}

	energeticoQty := decimal.NewFromInt(int64(mode.Quantity()))
	geloQty := decimal.NewFromInt(GeloQuantity)

	original := destilado.SalePrice.
		Add(energetico.SalePrice.Mul(energeticoQty)).
		Add(gelo.SalePrice.Mul(geloQty))

	return Quote{
		Original:   original,
		Discounted: original.Mul(discountFactor),
	}
}
