package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/viniciusmachado/adega-backend/api/controllers"
	"github.com/viniciusmachado/adega-backend/api/middleware"
	"github.com/viniciusmachado/adega-backend/internal/catalog"
	"github.com/viniciusmachado/adega-backend/internal/sessions"
	"github.com/viniciusmachado/adega-backend/pkg/config"
	"github.com/viniciusmachado/adega-backend/pkg/db"
	"github.com/viniciusmachado/adega-backend/pkg/logger"
	"github.com/viniciusmachado/adega-backend/pkg/metrics"
	"github.com/viniciusmachado/adega-backend/pkg/redis"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	DB          db.Pinger
	Redis       *redis.Client
	Catalog     catalog.Source
	Sessions    *sessions.Manager
	CartMetrics *metrics.CartMetrics
	Registry    *prometheus.Registry
}

func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(deps.Logger),
		middleware.RequestID(deps.Logger),
		middleware.Logging(deps.Logger),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(deps.Config))
		r.Get("/ready", controllers.HealthReady(deps.Config, deps.Logger, deps.DB, deps.Redis))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Session(deps.Sessions, deps.Logger))

		r.Get("/products", controllers.ListProducts(deps.Catalog, deps.Logger))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.GetCart(deps.Logger))
			r.Delete("/", controllers.ClearCart(deps.CartMetrics, deps.Logger))
			r.Post("/items", controllers.AddCartItem(deps.Catalog, deps.CartMetrics, deps.Logger))
			r.Patch("/items/{productID}", controllers.UpdateCartItem(deps.CartMetrics, deps.Logger))
			r.Delete("/items/{productID}", controllers.RemoveCartItem(deps.CartMetrics, deps.Logger))
			r.Delete("/combos/{comboID}", controllers.RemoveCartCombo(deps.CartMetrics, deps.Logger))
		})

		r.Route("/combo", func(r chi.Router) {
			r.Get("/selection", controllers.GetComboSelection(deps.Logger))
			r.Post("/selection", controllers.SelectComboProduct(deps.Logger))
			r.Delete("/selection", controllers.ResetCombo(deps.Logger))
			r.Post("/mode", controllers.SetComboMode(deps.Logger))
			r.Post("/confirm", controllers.ConfirmCombo(deps.CartMetrics, deps.Logger))
			r.Get("/eligible", controllers.EligibleComboProducts(deps.Logger))
		})

		r.Delete("/session", controllers.EndSession(deps.Sessions, deps.Logger))
	})

	return r
}
