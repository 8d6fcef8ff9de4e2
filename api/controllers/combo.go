package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/viniciusmachado/adega-backend/api/middleware"
	"github.com/viniciusmachado/adega-backend/api/responses"
	"github.com/viniciusmachado/adega-backend/api/validators"
	"github.com/viniciusmachado/adega-backend/internal/catalog"
	"github.com/viniciusmachado/adega-backend/internal/combo"
	"github.com/viniciusmachado/adega-backend/pkg/enums"
	pkgerrors "github.com/viniciusmachado/adega-backend/pkg/errors"
	"github.com/viniciusmachado/adega-backend/pkg/logger"
	"github.com/viniciusmachado/adega-backend/pkg/metrics"
)

type selectionView struct {
	Destilado    *catalog.Product     `json:"destilado"`
	Energetico   *catalog.Product     `json:"energetico"`
	Gelo         *catalog.Product     `json:"gelo"`
	Mode         enums.EnergeticoMode `json:"energeticoMode"`
	MissingSlots []enums.ComboSlot    `json:"missingSlots"`
	Quote        quoteView            `json:"quote"`
}

type quoteView struct {
	Original   string `json:"original"`
	Discounted string `json:"discounted"`
	Savings    string `json:"savings"`
}

func newSelectionView(selection combo.Selection) selectionView {
	quote := selection.Quote()
	return selectionView{
		Destilado:    selection.Destilado,
		Energetico:   selection.Energetico,
		Gelo:         selection.Gelo,
		Mode:         selection.Mode,
		MissingSlots: selection.MissingSlots(),
		Quote: quoteView{
			Original:   quote.Original.StringFixed(2),
			Discounted: quote.Discounted.StringFixed(2),
			Savings:    quote.Savings().StringFixed(2),
		},
	}
}

func sessionComposer(r *http.Request) (*combo.Composer, error) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok || session == nil || session.Composer == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "session context missing")
	}
	return session.Composer, nil
}

// GetComboSelection returns the in-progress selection with its running quote.
func GetComboSelection(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		composer, err := sessionComposer(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newSelectionView(composer.Selection()))
	}
}

type selectComboProductRequest struct {
	Slot      string    `json:"slot" validate:"required,oneof=destilado energetico gelo"`
	ProductID uuid.UUID `json:"productId" validate:"required"`
}

// SelectComboProduct places a catalog product into one combo slot.
func SelectComboProduct(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		composer, err := sessionComposer(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload selectComboProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		slot, err := enums.ParseComboSlot(payload.Slot)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid combo slot"))
			return
		}

		if err := composer.Select(r.Context(), slot, payload.ProductID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newSelectionView(composer.Selection()))
	}
}

type setComboModeRequest struct {
	Mode string `json:"mode" validate:"required,oneof=2l 5cans"`
}

// SetComboMode switches the energetico slot between the bottle and cans modes.
// Switching modes discards the current energetico pick.
func SetComboMode(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		composer, err := sessionComposer(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload setComboModeRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		mode, err := enums.ParseEnergeticoMode(payload.Mode)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid energetico mode"))
			return
		}

		if err := composer.SetMode(mode); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newSelectionView(composer.Selection()))
	}
}

// ConfirmCombo snapshots the selection into a cart bundle and resets the
// composer. An incomplete selection is rejected and the cart stays untouched.
func ConfirmCombo(cartMetrics *metrics.CartMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		composer, err := sessionComposer(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		bundle, err := composer.Confirm(r.Context())
		if err != nil {
			cartMetrics.IncComboRejected()
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cartMetrics.IncComboConfirmed()
		ctx := logg.WithComboID(r.Context(), bundle.ID.String())
		logg.Info(ctx, "combo confirmed")

		responses.WriteSuccessStatus(w, http.StatusCreated, bundle)
	}
}

// ResetCombo discards the in-progress selection. Nothing already in the cart
// is affected.
func ResetCombo(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		composer, err := sessionComposer(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		composer.Reset()
		responses.WriteSuccess(w, newSelectionView(composer.Selection()))
	}
}

// EligibleComboProducts lists the catalog products that can fill a slot given
// the current energetico mode.
func EligibleComboProducts(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		composer, err := sessionComposer(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		slot, err := enums.ParseComboSlot(r.URL.Query().Get("slot"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid combo slot"))
			return
		}

		products, err := composer.Eligible(r.Context(), slot)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"products": products})
	}
}
