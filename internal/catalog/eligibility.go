package catalog

import (
	"strings"

	"github.com/viniciusmachado/adega-backend/pkg/enums"
)

// Stock floors for multi-unit slots.
const (
	cansMinStock = 5
	geloMinStock = 5
)

const bottleMarker = "2l"

// IsTwoLiterBottle reports whether the listing name indicates a 2-liter
// bottle. Match is by substring, case-insensitive.
func IsTwoLiterBottle(name string) bool {
	return strings.Contains(strings.ToLower(name), bottleMarker)
}

// EligibleDestilados returns the destilado candidates for a combo, in
// catalog order.
func EligibleDestilados(products []Product) []Product {
	eligible := make([]Product, 0, len(products))
	for _, p := range products {
		if p.ProductType == enums.ProductTypeDestilado && p.IsActive && p.Stock > 0 {
			eligible = append(eligible, p)
		}
	}
	return eligible
}

// EligibleEnergeticos returns the energetico candidates for the given mode,
// in catalog order. Bottle mode wants a single 2-liter bottle in stock; cans
// mode wants at least five cans of a non-bottle listing.
func EligibleEnergeticos(products []Product, mode enums.EnergeticoMode) []Product {
	eligible := make([]Product, 0, len(products))
	for _, p := range products {
		if p.ProductType != enums.ProductTypeEnergetico || !p.IsActive {
			continue
		}
		switch mode {
		case enums.EnergeticoModeBottle2L:
			if p.Stock > 0 && IsTwoLiterBottle(p.Name) {
				eligible = append(eligible, p)
			}
		case enums.EnergeticoModeCans:
			if p.Stock >= cansMinStock && !IsTwoLiterBottle(p.Name) {
				eligible = append(eligible, p)
			}
		}
	}
	return eligible
}

// EligibleGelos returns the gelo candidates, in catalog order. The combo
// always takes five units, so five must be in stock.
func EligibleGelos(products []Product) []Product {
	eligible := make([]Product, 0, len(products))
	for _, p := range products {
		if p.ProductType == enums.ProductTypeGelo && p.IsActive && p.Stock >= geloMinStock {
			eligible = append(eligible, p)
		}
	}
	return eligible
}

// EligibleForSlot dispatches to the slot's predicate. The mode only matters
// for the energetico slot.
func EligibleForSlot(products []Product, slot enums.ComboSlot, mode enums.EnergeticoMode) []Product {
	switch slot {
	case enums.ComboSlotDestilado:
		return EligibleDestilados(products)
	case enums.ComboSlotEnergetico:
		return EligibleEnergeticos(products, mode)
	case enums.ComboSlotGelo:
		return EligibleGelos(products)
	}
	return nil
}
