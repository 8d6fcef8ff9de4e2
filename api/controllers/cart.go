package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/viniciusmachado/adega-backend/api/middleware"
	"github.com/viniciusmachado/adega-backend/api/responses"
	"github.com/viniciusmachado/adega-backend/api/validators"
	"github.com/viniciusmachado/adega-backend/internal/cart"
	"github.com/viniciusmachado/adega-backend/internal/catalog"
	"github.com/viniciusmachado/adega-backend/internal/sessions"
	pkgerrors "github.com/viniciusmachado/adega-backend/pkg/errors"
	"github.com/viniciusmachado/adega-backend/pkg/logger"
	"github.com/viniciusmachado/adega-backend/pkg/metrics"
)

type cartView struct {
	Entries   []cart.Entry `json:"entries"`
	Subtotal  string       `json:"subtotal"`
	ItemCount int          `json:"itemCount"`
}

func newCartView(store *cart.Store) cartView {
	return cartView{
		Entries:   store.Entries(),
		Subtotal:  store.Subtotal().StringFixed(2),
		ItemCount: store.ItemCount(),
	}
}

func sessionCart(r *http.Request) (*sessions.Session, *cart.Store, error) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok || session == nil || session.Cart == nil {
		return nil, nil, pkgerrors.New(pkgerrors.CodeInternal, "session context missing")
	}
	return session, session.Cart, nil
}

// GetCart returns the session's cart with derived totals.
func GetCart(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, store, err := sessionCart(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartView(store))
	}
}

type addItemRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

// AddCartItem adds a catalog product to the session's cart. Adding the same
// product again merges into the existing line.
func AddCartItem(source catalog.Source, cartMetrics *metrics.CartMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if source == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		_, store, err := sessionCart(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		products, err := source.Products(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product := catalog.FindProduct(products, payload.ProductID)
		if product == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}
		if !product.IsActive {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeConflict, "product is not available"))
			return
		}

		if err := store.AddItem(*product, payload.Quantity); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cartMetrics.IncItemAdded()
		ctx := logg.WithProductID(r.Context(), product.ID.String())
		logg.Info(ctx, "cart item added")

		responses.WriteSuccessStatus(w, http.StatusCreated, newCartView(store))
	}
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateCartItem sets the quantity on an existing line. Values below one are
// resolved by the store's decrement policy.
func UpdateCartItem(cartMetrics *metrics.CartMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, store, err := sessionCart(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		productID, err := uuid.Parse(chi.URLParam(r, "productID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		var payload updateQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.UpdateQuantity(productID, payload.Quantity)
		cartMetrics.IncQuantityUpdate()

		responses.WriteSuccess(w, newCartView(store))
	}
}

// RemoveCartItem drops a product line. Removing an absent line is a no-op.
func RemoveCartItem(cartMetrics *metrics.CartMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, store, err := sessionCart(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		productID, err := uuid.Parse(chi.URLParam(r, "productID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		store.RemoveItem(productID)
		cartMetrics.IncItemRemoved()

		responses.WriteSuccess(w, newCartView(store))
	}
}

// RemoveCartCombo drops a confirmed combo bundle from the cart.
func RemoveCartCombo(cartMetrics *metrics.CartMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, store, err := sessionCart(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		comboID, err := uuid.Parse(chi.URLParam(r, "comboID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid combo id"))
			return
		}

		store.RemoveCombo(comboID)
		cartMetrics.IncItemRemoved()

		responses.WriteSuccess(w, newCartView(store))
	}
}

// ClearCart empties the session's cart.
func ClearCart(cartMetrics *metrics.CartMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, store, err := sessionCart(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.Clear()
		cartMetrics.IncCartCleared()
		logg.Info(r.Context(), "cart cleared")

		responses.WriteSuccess(w, newCartView(store))
	}
}
