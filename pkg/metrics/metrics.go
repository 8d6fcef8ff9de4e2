package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CartMetrics records counters for cart and combo activity.
type CartMetrics struct {
	itemsAdded      prometheus.Counter
	itemsRemoved    prometheus.Counter
	quantityUpdates prometheus.Counter
	cartsCleared    prometheus.Counter
	combosConfirmed prometheus.Counter
	combosRejected  prometheus.Counter
}

// NewCartMetrics registers the cart metrics on the provided registerer.
func NewCartMetrics(reg prometheus.Registerer) *CartMetrics {
	if reg == nil {
		return &CartMetrics{}
	}
	itemsAdded := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cart_items_added_total",
		Help: "Product lines added or incremented in carts.",
	})
	itemsRemoved := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cart_items_removed_total",
		Help: "Product lines removed from carts.",
	})
	quantityUpdates := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cart_quantity_updates_total",
		Help: "Quantity updates applied to cart lines.",
	})
	cartsCleared := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "carts_cleared_total",
		Help: "Carts emptied by the clear operation.",
	})
	combosConfirmed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "combos_confirmed_total",
		Help: "Combo bundles confirmed into carts.",
	})
	combosRejected := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "combos_rejected_total",
		Help: "Combo confirms rejected for incomplete selections.",
	})
	reg.MustRegister(itemsAdded, itemsRemoved, quantityUpdates, cartsCleared, combosConfirmed, combosRejected)
	return &CartMetrics{
		itemsAdded:      itemsAdded,
		itemsRemoved:    itemsRemoved,
		quantityUpdates: quantityUpdates,
		cartsCleared:    cartsCleared,
		combosConfirmed: combosConfirmed,
		combosRejected:  combosRejected,
	}
}

// IncItemAdded increments the added-lines counter.
func (c *CartMetrics) IncItemAdded() {
	if c == nil || c.itemsAdded == nil {
		return
	}
	c.itemsAdded.Inc()
}

// IncItemRemoved increments the removed-lines counter.
func (c *CartMetrics) IncItemRemoved() {
	if c == nil || c.itemsRemoved == nil {
		return
	}
	c.itemsRemoved.Inc()
}

// IncQuantityUpdate increments the quantity-update counter.
func (c *CartMetrics) IncQuantityUpdate() {
	if c == nil || c.quantityUpdates == nil {
		return
	}
	c.quantityUpdates.Inc()
}

// IncCartCleared increments the cleared-carts counter.
func (c *CartMetrics) IncCartCleared() {
	if c == nil || c.cartsCleared == nil {
		return
	}
	c.cartsCleared.Inc()
}

// IncComboConfirmed increments the confirmed-combos counter.
func (c *CartMetrics) IncComboConfirmed() {
	if c == nil || c.combosConfirmed == nil {
		return
	}
	c.combosConfirmed.Inc()
}

// IncComboRejected increments the rejected-combos counter.
func (c *CartMetrics) IncComboRejected() {
	if c == nil || c.combosRejected == nil {
		return
	}
	c.combosRejected.Inc()
}
