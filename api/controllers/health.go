package controllers

import (
	"context"
	"net/http"

	"github.com/viniciusmachado/adega-backend/api/responses"
	"github.com/viniciusmachado/adega-backend/pkg/config"
	pkgerrors "github.com/viniciusmachado/adega-backend/pkg/errors"
	"github.com/viniciusmachado/adega-backend/pkg/logger"
	"github.com/viniciusmachado/adega-backend/pkg/redis"
)

type dbPinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Adega-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings the catalog database and, when configured, redis. The
// redis client may be nil.
func HealthReady(cfg *config.Config, logg *logger.Logger, db dbPinger, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Adega-Env", cfg.App.Env)

		checks := map[string]string{"catalog_db": "ok"}

		if db == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeDependency, "catalog database not configured"))
			return
		}
		if err := db.Ping(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "catalog database unreachable"))
			return
		}

		if redisClient != nil {
			if err := redisClient.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unreachable"))
				return
			}
			checks["redis"] = "ok"
		}

		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}
