package controllers

import (
	"net/http"

	"github.com/viniciusmachado/adega-backend/api/middleware"
	"github.com/viniciusmachado/adega-backend/api/responses"
	"github.com/viniciusmachado/adega-backend/internal/sessions"
	pkgerrors "github.com/viniciusmachado/adega-backend/pkg/errors"
	"github.com/viniciusmachado/adega-backend/pkg/logger"
)

// EndSession drops the session's cart and composer state. The next request
// presenting the same id starts fresh.
func EndSession(manager *sessions.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if manager == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session manager unavailable"))
			return
		}

		session, ok := middleware.SessionFromContext(r.Context())
		if !ok || session == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session context missing"))
			return
		}

		manager.End(session.ID)
		logg.Info(r.Context(), "session ended")

		responses.WriteSuccess(w, map[string]string{"status": "ended"})
	}
}
