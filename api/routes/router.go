package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/brasadourada/brasa-backend/api/controllers"
	"github.com/brasadourada/brasa-backend/api/middleware"
	adminsvc "github.com/brasadourada/brasa-backend/internal/admin"
	authsvc "github.com/brasadourada/brasa-backend/internal/auth"
	cartsvc "github.com/brasadourada/brasa-backend/internal/cart"
	checkoutsvc "github.com/brasadourada/brasa-backend/internal/checkout"
	menusvc "github.com/brasadourada/brasa-backend/internal/menu"
	ordersvc "github.com/brasadourada/brasa-backend/internal/orders"
	reservationsvc "github.com/brasadourada/brasa-backend/internal/reservations"
	"github.com/brasadourada/brasa-backend/pkg/auth/session"
	"github.com/brasadourada/brasa-backend/pkg/config"
	"github.com/brasadourada/brasa-backend/pkg/enums"
	"github.com/brasadourada/brasa-backend/pkg/logger"
	"github.com/brasadourada/brasa-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	deps map[string]controllers.Pinger,
	sessions session.AccessSessionChecker,
	httpMetrics *metrics.HTTPMetrics,
	gatherer prometheus.Gatherer,
	menuService menusvc.Service,
	cartService cartsvc.Service,
	checkoutService checkoutsvc.Service,
	orderService ordersvc.Service,
	reservationService reservationsvc.Service,
	authService authsvc.Service,
	adminService adminsvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/menu", controllers.MenuList(menuService, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Post("/open", controllers.CartOpen(cartService, logg))
			r.Get("/", controllers.CartGet(cartService, logg))
			r.Delete("/", controllers.CartClear(cartService, logg))
			r.Patch("/", controllers.CartSetOpen(cartService, logg))
			r.Post("/items", controllers.CartAddItem(cartService, logg))
			r.Patch("/items/{dishID}", controllers.CartUpdateItem(cartService, logg))
			r.Delete("/items/{dishID}", controllers.CartRemoveItem(cartService, logg))
		})

		r.With(middleware.OptionalAuth(cfg.JWT, sessions, logg)).
			Post("/checkout", controllers.Checkout(checkoutService, logg))
		r.Get("/orders/{orderID}", controllers.OrderGet(orderService, logg))
		r.With(middleware.OptionalAuth(cfg.JWT, sessions, logg)).
			Post("/reservations", controllers.ReservationCreate(reservationService, logg))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", controllers.AuthRegister(authService, logg))
			r.Post("/login", controllers.AuthLogin(authService, logg))
			r.Post("/refresh", controllers.AuthRefresh(authService, logg))
			r.Post("/logout", controllers.AuthLogout(authService, cfg.JWT, logg))
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(
			middleware.Auth(cfg.JWT, sessions, logg),
			middleware.RequireRole(string(enums.AppRoleAdmin), logg),
		)

		r.Get("/stats", controllers.AdminStats(adminService, logg))

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.AdminOrdersList(orderService, logg))
			r.Get("/{orderID}", controllers.OrderGet(orderService, logg))
			r.Post("/{orderID}/status", controllers.AdminOrderStatus(orderService, logg))
		})

		r.Route("/reservations", func(r chi.Router) {
			r.Get("/", controllers.AdminReservationsList(reservationService, logg))
			r.Post("/{reservationID}/status", controllers.AdminReservationStatus(reservationService, logg))
		})

		r.Route("/menu", func(r chi.Router) {
			r.Get("/", controllers.AdminMenuList(menuService, logg))
			r.Post("/", controllers.AdminMenuCreate(menuService, logg))
			r.Patch("/{dishID}", controllers.AdminMenuUpdate(menuService, logg))
			r.Delete("/{dishID}", controllers.AdminMenuDeactivate(menuService, logg))
		})
	})

	return r
}
