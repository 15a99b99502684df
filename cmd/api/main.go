package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/brasadourada/brasa-backend/api/controllers"
	"github.com/brasadourada/brasa-backend/api/routes"
	"github.com/brasadourada/brasa-backend/internal/admin"
	"github.com/brasadourada/brasa-backend/internal/auth"
	"github.com/brasadourada/brasa-backend/internal/cart"
	"github.com/brasadourada/brasa-backend/internal/checkout"
	"github.com/brasadourada/brasa-backend/internal/menu"
	"github.com/brasadourada/brasa-backend/internal/orders"
	"github.com/brasadourada/brasa-backend/internal/reservations"
	"github.com/brasadourada/brasa-backend/internal/users"
	"github.com/brasadourada/brasa-backend/pkg/auth/session"
	"github.com/brasadourada/brasa-backend/pkg/config"
	"github.com/brasadourada/brasa-backend/pkg/db"
	"github.com/brasadourada/brasa-backend/pkg/env"
	"github.com/brasadourada/brasa-backend/pkg/logger"
	"github.com/brasadourada/brasa-backend/pkg/metrics"
	"github.com/brasadourada/brasa-backend/pkg/migrate"
	"github.com/brasadourada/brasa-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	menuRepo := menu.NewRepository(dbClient.DB())
	orderRepo := orders.NewRepository(dbClient.DB())
	reservationRepo := reservations.NewRepository(dbClient.DB())

	menuService, err := menu.NewService(menuRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create menu service", err)
		os.Exit(1)
	}

	cartStore, err := cart.NewStore(redisClient, redisClient, cfg.Cart.TTL)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart store", err)
		os.Exit(1)
	}

	cartService, err := cart.NewService(cartStore, menuRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	deliveryFee, err := cfg.Checkout.DeliveryFeeAmount()
	if err != nil {
		logg.Error(context.Background(), "invalid delivery fee configuration", err)
		os.Exit(1)
	}

	checkoutService, err := checkout.NewService(cartService, orderRepo, dbClient, deliveryFee, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	orderService, err := orders.NewService(orderRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create order service", err)
		os.Exit(1)
	}

	reservationService, err := reservations.NewService(reservationRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create reservation service", err)
		os.Exit(1)
	}

	authService, err := auth.NewService(users.NewRepository(dbClient.DB()), sessionManager, cfg.JWT, cfg.Password)
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	adminService, err := admin.NewService(orderRepo, reservationRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create admin service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	addr := ":" + env.Get("PORT", cfg.App.Port)
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			map[string]controllers.Pinger{"db": dbClient, "redis": redisClient},
			sessionManager,
			httpMetrics,
			registry,
			menuService,
			cartService,
			checkoutService,
			orderService,
			reservationService,
			authService,
			adminService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
