package controllers

import (
	"net/http"

	"github.com/viniciusmachado/adega-backend/api/responses"
	"github.com/viniciusmachado/adega-backend/internal/catalog"
	"github.com/viniciusmachado/adega-backend/pkg/enums"
	pkgerrors "github.com/viniciusmachado/adega-backend/pkg/errors"
	"github.com/viniciusmachado/adega-backend/pkg/logger"
)

// ListProducts returns the catalog in display order. An optional ?type=
// query narrows the listing to one product type.
func ListProducts(source catalog.Source, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if source == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		products, err := source.Products(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if raw := r.URL.Query().Get("type"); raw != "" {
			productType, err := enums.ParseProductType(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product type"))
				return
			}
			filtered := make([]catalog.Product, 0, len(products))
			for _, product := range products {
				if product.ProductType == productType {
					filtered = append(filtered, product)
				}
			}
			products = filtered
		}

		responses.WriteSuccess(w, map[string]any{"products": products})
	}
}
