package combo

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/viniciusmachado/adega-backend/internal/cart"
	"github.com/viniciusmachado/adega-backend/internal/catalog"
	"github.com/viniciusmachado/adega-backend/internal/notifications"
	"github.com/viniciusmachado/adega-backend/pkg/enums"
	pkgerrors "github.com/viniciusmachado/adega-backend/pkg/errors"
)

// Selection is the composer's transient state: one optional product per slot
// plus the energetico mode. It lives only until confirm or cancel.
type Selection struct {
	Destilado  *catalog.Product     `json:"destilado,omitempty"`
	Energetico *catalog.Product     `json:"energetico,omitempty"`
	Gelo       *catalog.Product     `json:"gelo,omitempty"`
	Mode       enums.EnergeticoMode `json:"mode"`
}

// MissingSlots lists the slots still unfilled, in display order.
func (s Selection) MissingSlots() []enums.ComboSlot {
	var missing []enums.ComboSlot
	if s.Destilado == nil {
		missing = append(missing, enums.ComboSlotDestilado)
	}
	if s.Energetico == nil {
		missing = append(missing, enums.ComboSlotEnergetico)
	}
	if s.Gelo == nil {
		missing = append(missing, enums.ComboSlotGelo)
	}
	return missing
}

// IsComplete reports whether all three slots are filled.
func (s Selection) IsComplete() bool {
	return s.Destilado != nil && s.Energetico != nil && s.Gelo != nil
}

// Quote prices the current selection. Zero until all slots are filled.
func (s Selection) Quote() Quote {
	return PriceCombo(s.Destilado, s.Energetico, s.Gelo, s.Mode)
}

func emptySelection() Selection {
	return Selection{Mode: enums.EnergeticoModeBottle2L}
}

// Composer orchestrates combo slot selection for one session. On confirm it
// snapshots the quote into a ComboBundle, hands it to the cart store and
// resets; cancel resets identically so a reopened composer never shows stale
// picks.
type Composer struct {
	mu        sync.Mutex
	catalog   catalog.Source
	store     *cart.Store
	notifier  notifications.Notifier
	selection Selection
}

// NewComposer wires the composer dependencies.
func NewComposer(source catalog.Source, store *cart.Store, notifier notifications.Notifier) (*Composer, error) {
	if source == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "catalog source required")
	}
	if store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "cart store required")
	}
	if notifier == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "notifier required")
	}
	return &Composer{
		catalog:   source,
		store:     store,
		notifier:  notifier,
		selection: emptySelection(),
	}, nil
}

// Selection returns a snapshot of the current state.
func (c *Composer) Selection() Selection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copySelection(c.selection)
}

// Quote prices the current selection.
func (c *Composer) Quote() Quote {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection.Quote()
}

// SetMode switches the energetico sub-mode. Changing mode clears any prior
// energetico pick: the eligible set differs between modes, so the old pick
// may no longer qualify.
func (c *Composer) SetMode(mode enums.EnergeticoMode) error {
	if !mode.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid energetico mode")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.selection.Mode != mode {
		c.selection.Mode = mode
		c.selection.Energetico = nil
	}
	return nil
}

// Select fills one slot with the identified product, validating it against
// the slot's eligible set under the current mode. A failed catalog load
// surfaces as an empty eligible set.
func (c *Composer) Select(ctx context.Context, slot enums.ComboSlot, productID uuid.UUID) error {
	if !slot.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid combo slot")
	}
	if productID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	products, err := c.catalog.Products(ctx)
	if err != nil {
		products = nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	eligible := catalog.EligibleForSlot(products, slot, c.selection.Mode)
	product := catalog.FindProduct(eligible, productID)
	if product == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "product is not eligible for this slot").
			WithDetails(map[string]any{"slot": slot.String()})
	}

	selected := *product
	switch slot {
	case enums.ComboSlotDestilado:
		c.selection.Destilado = &selected
	case enums.ComboSlotEnergetico:
		c.selection.Energetico = &selected
	case enums.ComboSlotGelo:
		c.selection.Gelo = &selected
	}
	return nil
}

// Confirm validates completeness, snapshots the quote into a bundle, adds it
// to the cart and resets the selection. An incomplete selection is rejected
// with a customer-visible notification naming the missing slots; the cart is
// left untouched.
func (c *Composer) Confirm(ctx context.Context) (*cart.ComboBundle, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if missing := c.selection.MissingSlots(); len(missing) > 0 {
		c.notifier.Notify(ctx, notifications.Notification{
			Title:       "Selecione todos os itens",
			Description: "Escolha um destilado, um energetico e o gelo para montar seu combo.",
			Severity:    enums.NotificationSeverityDestructive,
		})

		var err error
		names := make([]string, 0, len(missing))
		for _, slot := range missing {
			names = append(names, slot.String())
			err = multierr.Append(err, fmt.Errorf("slot %s not selected", slot))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "combo selection incomplete").
			WithDetails(map[string]any{"missing": names})
	}

	quote := c.selection.Quote()
	bundle := cart.ComboBundle{
		ID:              uuid.New(),
		Destilado:       *c.selection.Destilado,
		Energetico:      *c.selection.Energetico,
		EnergeticoQty:   c.selection.Mode.Quantity(),
		Gelo:            *c.selection.Gelo,
		GeloQty:         GeloQuantity,
		DiscountPercent: DiscountPercent,
		OriginalTotal:   quote.Original,
		DiscountedTotal: quote.Discounted,
	}

	if err := c.store.AddCombo(bundle); err != nil {
		return nil, err
	}

	c.notifier.Notify(ctx, notifications.Notification{
		Title:       "Combo adicionado!",
		Description: "Combo com 15% de desconto foi adicionado ao carrinho.",
		Severity:    enums.NotificationSeveritySuccess,
	})

	c.selection = emptySelection()
	return &bundle, nil
}

// Reset clears all selection state, identical to the reset a successful
// confirm performs. Cancel/close paths call this.
func (c *Composer) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selection = emptySelection()
}

// Eligible returns the candidates for the given slot under the current mode.
// Catalog failures surface as an empty list alongside the error so callers
// can render the unavailable state and still log the cause.
func (c *Composer) Eligible(ctx context.Context, slot enums.ComboSlot) ([]catalog.Product, error) {
	if !slot.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid combo slot")
	}

	products, err := c.catalog.Products(ctx)

	c.mu.Lock()
	mode := c.selection.Mode
	c.mu.Unlock()

	eligible := catalog.EligibleForSlot(products, slot, mode)
	if err != nil {
		return eligible, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load catalog")
	}
	return eligible, nil
}

func copySelection(s Selection) Selection {
	out := Selection{Mode: s.Mode}
	if s.Destilado != nil {
		destilado := *s.Destilado
		out.Destilado = &destilado
	}
	if s.Energetico != nil {
		energetico := *s.Energetico
		out.Energetico = &energetico
	}
	if s.Gelo != nil {
		gelo := *s.Gelo
		out.Gelo = &gelo
	}
	return out
}
