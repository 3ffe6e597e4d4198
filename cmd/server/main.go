package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/d60-Lab/penta-book/config"
	"github.com/d60-Lab/penta-book/internal/api"
	"github.com/d60-Lab/penta-book/internal/api/handler"
	"github.com/d60-Lab/penta-book/internal/gateway"
	"github.com/d60-Lab/penta-book/internal/repository"
	"github.com/d60-Lab/penta-book/internal/service"
	"github.com/d60-Lab/penta-book/pkg/database"
	"github.com/d60-Lab/penta-book/pkg/logger"
	"github.com/d60-Lab/penta-book/pkg/tracing"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func main() {
	cfg := must(config.Load())
	if err := logger.Init(cfg.Log.Level); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
			logger.Warn("sentry init failed", zap.Error(err))
		}
		defer sentry.Flush(2 * time.Second)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer := must(tracing.Init(ctx, cfg, "penta-book"))
	defer func() { _ = shutdownTracer(context.Background()) }()

	db := must(database.InitDB(cfg))
	if err := database.Migrate(db); err != nil {
		logger.Error("migrate failed", zap.Error(err))
		return
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		// 缓存不可用时降级为直查
		logger.Warn("redis unavailable, cache disabled", zap.Error(err))
		rdb = nil
	}

	// repositories
	bookRepo := repository.NewBookRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	buyerRepo := repository.NewBuyerRepository(db)
	shopRepo := repository.NewShopRepository(db)
	shipRepo := repository.NewShipmentRepository(db)

	// gateways
	paymentGW := gateway.NewPaymentClient(cfg.Gateway.PaymentURL, cfg.GatewayTimeout())
	shipmentGW := gateway.NewShipmentClient(cfg.Gateway.ShipmentURL, cfg.GatewayTimeout())

	// services
	locks := service.NewBuyerLocks()
	dispatcher := service.NewShipmentDispatcher(shipRepo, shipmentGW, "standard", cfg.GatewayTimeout(), 1024)
	stopDispatcher := dispatcher.Start(2)
	defer func() { _ = stopDispatcher(context.Background()) }()

	authSvc := service.NewAuthService(buyerRepo, shopRepo, cfg.JWT.Secret, time.Duration(cfg.JWT.ExpireHours)*time.Hour)
	catalogSvc := service.NewCatalogService(bookRepo, rdb, cfg.CacheTTL())
	cartSvc := service.NewCartService(cartRepo, bookRepo, locks)
	checkoutSvc := service.NewCheckoutService(db, cartRepo, locks)
	orderSvc := service.NewOrderService(orderRepo)
	paymentSvc := service.NewPaymentService(db, orderRepo, paymentRepo, paymentGW, cfg.GatewayTimeout(), dispatcher)
	shipmentSvc := service.NewShipmentService(shipRepo, shipmentGW)

	h := handler.NewHandler(authSvc, catalogSvc, cartSvc, checkoutSvc, orderSvc, paymentSvc, shipmentSvc)
	router := api.NewRouter(cfg, h, authSvc)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}
	go func() {
		logger.Info("server started", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
