package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sundrymarket/storefront/api/controllers"
	"github.com/sundrymarket/storefront/api/middleware"
	cartsvc "github.com/sundrymarket/storefront/internal/cart"
	catalogsvc "github.com/sundrymarket/storefront/internal/catalog"
	contentsvc "github.com/sundrymarket/storefront/internal/content"
	prefssvc "github.com/sundrymarket/storefront/internal/prefs"
	"github.com/sundrymarket/storefront/pkg/config"
	"github.com/sundrymarket/storefront/pkg/logger"
	"github.com/sundrymarket/storefront/pkg/storage"
)

type RouterParams struct {
	Config   *config.Config
	Logger   *logger.Logger
	Store    storage.Store
	Catalog  catalogsvc.Service
	Carts    *cartsvc.Manager
	Prefs    prefssvc.Service
	Content  contentsvc.Service
	Gatherer prometheus.Gatherer
}

func NewRouter(params RouterParams) http.Handler {
	cfg := params.Config
	logg := params.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, params.Store, logg))
	})

	if params.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(params.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/products", controllers.BrowseProducts(params.Catalog, logg))
		r.Get("/products/feed", controllers.ProductFeed(params.Catalog, logg))
		r.Get("/categories", controllers.ListCategories(params.Catalog, logg))
	})

	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Use(middleware.Session(logg))
		r.Get("/", controllers.GetCart(params.Carts, logg))
		r.Delete("/", controllers.ClearCart(params.Carts, logg))
		r.Post("/items", controllers.AddCartItem(params.Carts, params.Catalog, logg))
		r.Patch("/items/{productID}", controllers.UpdateCartItem(params.Carts, logg))
		r.Delete("/items/{productID}", controllers.RemoveCartItem(params.Carts, logg))
	})

	r.Route("/api/v1/prefs", func(r chi.Router) {
		r.Get("/", controllers.GetPrefs(params.Prefs, logg))
		r.Put("/language", controllers.SetLanguage(params.Prefs, logg))
		r.Put("/order-phone", controllers.SetOrderPhone(params.Prefs, logg))
	})

	r.Get("/api/v1/content/blocks", controllers.ContentBlocks(params.Content, logg))

	return r
}
