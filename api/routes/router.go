package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Saksham10-11/GSD/api/controllers"
	"github.com/Saksham10-11/GSD/api/middleware"
	"github.com/Saksham10-11/GSD/internal/auth"
	"github.com/Saksham10-11/GSD/internal/cart"
	checkoutsvc "github.com/Saksham10-11/GSD/internal/checkout"
	"github.com/Saksham10-11/GSD/internal/orders"
	products "github.com/Saksham10-11/GSD/internal/products"
	"github.com/Saksham10-11/GSD/pkg/config"
	"github.com/Saksham10-11/GSD/pkg/db"
	"github.com/Saksham10-11/GSD/pkg/logger"
	"github.com/Saksham10-11/GSD/pkg/metrics"
	pkgredis "github.com/Saksham10-11/GSD/pkg/redis"
)

// Deps carries everything the router mounts. Optional fields degrade
// gracefully when nil.
type Deps struct {
	Config  *config.Config
	Logger  *logger.Logger
	DB      db.Pinger
	Redis   *pkgredis.Client
	Session middleware.SessionChecker

	// Idempotency overrides the checkout replay store; defaults to Redis.
	Idempotency pkgredis.IdempotencyStore

	AuthService     auth.Service
	ProductService  products.Service
	CartService     cart.Service
	CheckoutService checkoutsvc.Service
	OrdersService   orders.Service

	HTTPMetrics *metrics.HTTPMetrics
	Gatherer    prometheus.Gatherer
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	var cache pkgredis.Pinger
	if deps.Redis != nil {
		cache = deps.Redis
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DB, cache))
	})

	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(registerPolicy, deps.Redis, logg)).Post("/register", controllers.AuthRegister(deps.AuthService, logg))
		r.With(middleware.AuthRateLimit(loginPolicy, deps.Redis, logg)).Post("/login", controllers.AuthLogin(deps.AuthService, logg))
		r.Post("/refresh", controllers.AuthRefresh(deps.AuthService, logg))
		r.Post("/logout", controllers.AuthLogout(deps.AuthService, logg))
	})

	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", controllers.ProductList(deps.ProductService, logg))
		r.Get("/{productId}", controllers.ProductDetail(deps.ProductService, logg))
		r.Get("/{productId}/image", controllers.ProductImage(deps.ProductService, logg))
		if cfg.FeatureFlags.AllowSeed {
			r.Post("/seed", controllers.ProductSeed(deps.ProductService, logg))
		}
	})

	idemStore := deps.Idempotency
	if idemStore == nil && deps.Redis != nil {
		idemStore = deps.Redis
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.Session, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(deps.CartService, logg))
			r.Post("/items", controllers.CartAddItem(deps.CartService, logg))
			r.Patch("/items/{productId}", controllers.CartUpdateItem(deps.CartService, logg))
			r.Delete("/items/{productId}", controllers.CartRemoveItem(deps.CartService, logg))
			r.Put("/options", controllers.CartOptions(deps.CartService, logg))
			r.Get("/summary", controllers.CartSummary(deps.CartService, logg))
		})

		r.With(middleware.Idempotency(idemStore, cfg.Idempotency.CheckoutTTL, logg)).
			Post("/checkout", controllers.Checkout(deps.CheckoutService, logg))

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.OrderList(deps.OrdersService, logg))
			r.Get("/{orderId}", controllers.OrderDetail(deps.OrdersService, logg))
		})

		r.Get("/green-metrics", controllers.GreenMetrics(deps.OrdersService, logg))
	})

	return r
}
