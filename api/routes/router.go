package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/arifmahmud/trendora-backend/api/controllers"
	"github.com/arifmahmud/trendora-backend/api/middleware"
	"github.com/arifmahmud/trendora-backend/internal/collection"
	"github.com/arifmahmud/trendora-backend/pkg/config"
	"github.com/arifmahmud/trendora-backend/pkg/db"
	"github.com/arifmahmud/trendora-backend/pkg/logger"
	"github.com/arifmahmud/trendora-backend/pkg/metrics"
)

// NewRouter wires the HTTP surface. Paths are pinned by the storefront and
// keep their historical spelling.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	httpMetrics *metrics.HTTPMetrics,
	catalogRepo controllers.ProductLister,
	cartService collection.Service,
	wishlistService collection.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	r.Get("/", controllers.Root())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP))
	})

	r.Get("/products", controllers.ProductList(catalogRepo, logg))

	r.Post("/add-product", controllers.CartAddItem(cartService, logg))
	r.Route("/added-items", func(r chi.Router) {
		r.Get("/", controllers.CartList(cartService, logg))
		r.Get("/{userEmail}", controllers.CartListByUser(cartService, logg))
		r.Delete("/{id}", controllers.CartDeleteItem(cartService, logg))
	})

	r.Route("/wishlist", func(r chi.Router) {
		r.Post("/", controllers.WishlistAddItem(wishlistService, logg))
		r.Get("/", controllers.WishlistList(wishlistService, logg))
		r.Get("/{userEmail}", controllers.WishlistListByUser(wishlistService, logg))
		r.Delete("/{id}", controllers.WishlistDeleteItem(wishlistService, logg))
	})

	return r
}
