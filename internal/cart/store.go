package cart

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/viniciusmachado/adega-backend/internal/catalog"
	"github.com/viniciusmachado/adega-backend/pkg/enums"
	pkgerrors "github.com/viniciusmachado/adega-backend/pkg/errors"
)

// LineItem is a single-product cart entry. At most one line exists per
// product id; adding the same product again merges into the quantity.
type LineItem struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Subtotal returns unit price times quantity.
func (l LineItem) Subtotal() decimal.Decimal {
	return l.Product.SalePrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// ComboBundle is a fixed-discount cart entity composed of one product per
// slot. Totals are snapshotted when the bundle is confirmed; later catalog
// price changes do not reprice it.
type ComboBundle struct {
	ID              uuid.UUID       `json:"id"`
	Destilado       catalog.Product `json:"destilado"`
	Energetico      catalog.Product `json:"energetico"`
	EnergeticoQty   int             `json:"energeticoQuantity"`
	Gelo            catalog.Product `json:"gelo"`
	GeloQty         int             `json:"geloQuantity"`
	DiscountPercent int             `json:"discountPercent"`
	OriginalTotal   decimal.Decimal `json:"originalTotal"`
	DiscountedTotal decimal.Decimal `json:"discountedTotal"`
}

// Entry is one display row: exactly one of Item or Combo is set.
type Entry struct {
	Item  *LineItem    `json:"item,omitempty"`
	Combo *ComboBundle `json:"combo,omitempty"`
}

// Store holds one session's cart: an ordered mix of product lines and combo
// bundles. All mutations go through the methods below; derived reads always
// reflect the latest mutation.
type Store struct {
	mu      sync.Mutex
	policy  enums.DecrementPolicy
	entries []Entry
}

// NewStore builds an empty cart with the given decrement policy.
func NewStore(policy enums.DecrementPolicy) (*Store, error) {
	if !policy.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid decrement policy")
	}
	return &Store{policy: policy}, nil
}

// AddItem merges quantity into an existing line for the product or appends a
// new line. Non-positive quantities are rejected.
func (s *Store) AddItem(product catalog.Product, quantity int) error {
	if product.ID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if quantity <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if item := s.entries[i].Item; item != nil && item.Product.ID == product.ID {
			item.Quantity += quantity
			return nil
		}
	}
	s.entries = append(s.entries, Entry{Item: &LineItem{Product: product, Quantity: quantity}})
	return nil
}

// UpdateQuantity sets the line's quantity. Below one, the configured policy
// applies: remove deletes the line, clamp pins it at one. Unknown product
// ids are a no-op.
func (s *Store) UpdateQuantity(productID uuid.UUID, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		item := s.entries[i].Item
		if item == nil || item.Product.ID != productID {
			continue
		}
		if quantity >= 1 {
			item.Quantity = quantity
			return
		}
		switch s.policy {
		case enums.DecrementPolicyClamp:
			item.Quantity = 1
		default:
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
		}
		return
	}
}

// RemoveItem deletes the line if present; no-op otherwise.
func (s *Store) RemoveItem(productID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if item := s.entries[i].Item; item != nil && item.Product.ID == productID {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

// AddCombo appends the bundle as a new cart entity. Bundles are never merged
// with each other; every confirm produces a distinct row.
func (s *Store) AddCombo(bundle ComboBundle) error {
	if bundle.ID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "combo id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := bundle
	s.entries = append(s.entries, Entry{Combo: &stored})
	return nil
}

// RemoveCombo deletes the bundle if present; no-op otherwise.
func (s *Store) RemoveCombo(comboID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if combo := s.entries[i].Combo; combo != nil && combo.ID == comboID {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

// Clear empties all lines and bundles unconditionally.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}

// Entries returns the cart rows in insertion order.
func (s *Store) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if e.Item != nil {
			item := *e.Item
			out = append(out, Entry{Item: &item})
		}
		if e.Combo != nil {
			combo := *e.Combo
			out = append(out, Entry{Combo: &combo})
		}
	}
	return out
}

// Items returns only the product lines, in insertion order.
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []LineItem
	for _, e := range s.entries {
		if e.Item != nil {
			items = append(items, *e.Item)
		}
	}
	return items
}

// Combos returns only the bundles, in insertion order.
func (s *Store) Combos() []ComboBundle {
	s.mu.Lock()
	defer s.mu.Unlock()

	var combos []ComboBundle
	for _, e := range s.entries {
		if e.Combo != nil {
			combos = append(combos, *e.Combo)
		}
	}
	return combos
}

// Subtotal sums line subtotals and bundle discounted totals.
func (s *Store) Subtotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, e := range s.entries {
		if e.Item != nil {
			total = total.Add(e.Item.Subtotal())
		}
		if e.Combo != nil {
			total = total.Add(e.Combo.DiscountedTotal)
		}
	}
	return total
}

// ItemCount sums line quantities; each bundle counts as one unit.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, e := range s.entries {
		if e.Item != nil {
			count += e.Item.Quantity
		}
		if e.Combo != nil {
			count++
		}
	}
	return count
}

// IsEmpty reports whether the cart holds no lines and no bundles.
func (s *Store) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries) == 0
}
