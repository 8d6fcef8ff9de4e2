package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viniciusmachado/adega-backend/internal/catalog"
	"github.com/viniciusmachado/adega-backend/pkg/enums"
)

func listing(name, price string) catalog.Product {
	return catalog.Product{
		ID:          uuid.New(),
		Name:        name,
		ProductType: enums.ProductTypeCerveja,
		SalePrice:   decimal.RequireFromString(price),
		Stock:       10,
		IsActive:    true,
	}
}

func bundle(discounted string) ComboBundle {
	return ComboBundle{
		ID:              uuid.New(),
		Destilado:       listing("Vodka X", "50.00"),
		Energetico:      listing("Red Bull 2L", "12.00"),
		EnergeticoQty:   1,
		Gelo:            listing("Gelo 2kg", "4.00"),
		GeloQty:         5,
		DiscountPercent: 15,
		OriginalTotal:   decimal.RequireFromString("82.00"),
		DiscountedTotal: decimal.RequireFromString(discounted),
	}
}

func newRemoveStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(enums.DecrementPolicyRemove)
	require.NoError(t, err)
	return store
}

func TestNewStoreRejectsInvalidPolicy(t *testing.T) {
	t.Parallel()

	_, err := NewStore("explode")
	require.Error(t, err)
}

func TestAddItemMergesSameProduct(t *testing.T) {
	t.Parallel()

	store := newRemoveStore(t)
	beer := listing("Heineken", "7.50")

	require.NoError(t, store.AddItem(beer, 1))
	require.NoError(t, store.AddItem(beer, 1))

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, store.Subtotal().Equal(decimal.RequireFromString("15.00")))
	assert.Equal(t, 2, store.ItemCount())
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	t.Parallel()

	store := newRemoveStore(t)
	beer := listing("Heineken", "7.50")

	require.Error(t, store.AddItem(beer, 0))
	require.Error(t, store.AddItem(beer, -3))
	assert.True(t, store.IsEmpty())
}

func TestUpdateQuantitySetsValue(t *testing.T) {
	t.Parallel()

	store := newRemoveStore(t)
	soda := listing("Coca-Cola 2L", "10.00")
	require.NoError(t, store.AddItem(soda, 2))

	store.UpdateQuantity(soda.ID, 5)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.True(t, store.Subtotal().Equal(decimal.RequireFromString("50.00")))
}

func TestUpdateQuantityBelowOneRemovePolicy(t *testing.T) {
	t.Parallel()

	store := newRemoveStore(t)
	soda := listing("Coca-Cola 2L", "10.00")
	require.NoError(t, store.AddItem(soda, 2))

	store.UpdateQuantity(soda.ID, 0)

	assert.Empty(t, store.Items())
	assert.True(t, store.Subtotal().IsZero())
}

func TestUpdateQuantityBelowOneClampPolicy(t *testing.T) {
	t.Parallel()

	store, err := NewStore(enums.DecrementPolicyClamp)
	require.NoError(t, err)
	soda := listing("Coca-Cola 2L", "10.00")
	require.NoError(t, store.AddItem(soda, 2))

	store.UpdateQuantity(soda.ID, 0)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
	assert.True(t, store.Subtotal().Equal(decimal.RequireFromString("10.00")))
}

func TestUpdateQuantityUnknownProductIsNoop(t *testing.T) {
	t.Parallel()

	store := newRemoveStore(t)
	require.NoError(t, store.AddItem(listing("Heineken", "7.50"), 1))

	store.UpdateQuantity(uuid.New(), 4)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	t.Parallel()

	store := newRemoveStore(t)
	beer := listing("Heineken", "7.50")
	require.NoError(t, store.AddItem(beer, 1))

	store.RemoveItem(beer.ID)
	store.RemoveItem(beer.ID)
	store.RemoveItem(uuid.New())

	assert.True(t, store.IsEmpty())
}

func TestAddComboNeverMerges(t *testing.T) {
	t.Parallel()

	store := newRemoveStore(t)
	first := bundle("69.70")
	second := first
	second.ID = uuid.New()

	require.NoError(t, store.AddCombo(first))
	require.NoError(t, store.AddCombo(second))

	combos := store.Combos()
	require.Len(t, combos, 2)
	assert.NotEqual(t, combos[0].ID, combos[1].ID)
	assert.True(t, store.Subtotal().Equal(decimal.RequireFromString("139.40")))
	assert.Equal(t, 2, store.ItemCount())
}

func TestAddComboRequiresID(t *testing.T) {
	t.Parallel()

	store := newRemoveStore(t)
	invalid := bundle("69.70")
	invalid.ID = uuid.Nil

	require.Error(t, store.AddCombo(invalid))
	assert.True(t, store.IsEmpty())
}

func TestRemoveCombo(t *testing.T) {
	t.Parallel()

	store := newRemoveStore(t)
	b := bundle("69.70")
	require.NoError(t, store.AddCombo(b))

	store.RemoveCombo(b.ID)
	store.RemoveCombo(b.ID)

	assert.True(t, store.IsEmpty())
}

func TestClearIsIdempotent(t *testing.T) {
	t.Parallel()

	store := newRemoveStore(t)
	require.NoError(t, store.AddItem(listing("Heineken", "7.50"), 3))
	require.NoError(t, store.AddCombo(bundle("69.70")))

	store.Clear()
	assert.True(t, store.IsEmpty())
	assert.True(t, store.Subtotal().IsZero())
	assert.Equal(t, 0, store.ItemCount())

	store.Clear()
	assert.True(t, store.IsEmpty())
}

func TestEntriesPreserveInsertionOrder(t *testing.T) {
	t.Parallel()

	store := newRemoveStore(t)
	beer := listing("Heineken", "7.50")
	require.NoError(t, store.AddItem(beer, 1))
	require.NoError(t, store.AddCombo(bundle("69.70")))
	require.NoError(t, store.AddItem(listing("Coca-Cola 2L", "10.00"), 1))

	entries := store.Entries()
	require.Len(t, entries, 3)
	assert.NotNil(t, entries[0].Item)
	assert.NotNil(t, entries[1].Combo)
	assert.NotNil(t, entries[2].Item)
	assert.Equal(t, "Heineken", entries[0].Item.Product.Name)
}

func TestSubtotalMixesLinesAndBundles(t *testing.T) {
	t.Parallel()

	store := newRemoveStore(t)
	require.NoError(t, store.AddItem(listing("Heineken", "7.50"), 2))
	require.NoError(t, store.AddCombo(bundle("69.70")))

	// 7.50*2 + 69.70
	assert.True(t, store.Subtotal().Equal(decimal.RequireFromString("84.70")))
	// 2 bottles + 1 bundle
	assert.Equal(t, 3, store.ItemCount())
}

func TestEntriesReturnsCopies(t *testing.T) {
	t.Parallel()

	store := newRemoveStore(t)
	beer := listing("Heineken", "7.50")
	require.NoError(t, store.AddItem(beer, 1))

	entries := store.Entries()
	entries[0].Item.Quantity = 99

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}
