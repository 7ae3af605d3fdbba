package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/strideworks/stride-backend/api/routes"
	authsvc "github.com/strideworks/stride-backend/internal/auth"
	cartsvc "github.com/strideworks/stride-backend/internal/cart"
	cataloguesvc "github.com/strideworks/stride-backend/internal/catalogues"
	mdsvc "github.com/strideworks/stride-backend/internal/masterdata"
	orderssvc "github.com/strideworks/stride-backend/internal/orders"
	posvc "github.com/strideworks/stride-backend/internal/purchaseorders"
	userssvc "github.com/strideworks/stride-backend/internal/users"
	vendorsvc "github.com/strideworks/stride-backend/internal/vendors"
	"github.com/strideworks/stride-backend/pkg/auth/session"
	"github.com/strideworks/stride-backend/pkg/config"
	"github.com/strideworks/stride-backend/pkg/db"
	"github.com/strideworks/stride-backend/pkg/logger"
	"github.com/strideworks/stride-backend/pkg/metrics"
	"github.com/strideworks/stride-backend/pkg/migrate"
	"github.com/strideworks/stride-backend/pkg/redis"
)

const shutdownGrace = 20 * time.Second

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

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	svcs, err := buildServices(cfg, dbClient, sessionManager, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to wire services", err)
		os.Exit(1)
	}

	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(promRegistry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, redisClient, redisClient,
			sessionManager, httpMetrics, promRegistry, svcs),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logCtx := logg.WithFields(ctx, map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(logCtx, "starting api server")

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		logg.Info(logCtx, "shutdown signal received")
	case err := <-errCh:
		if err != nil {
			logg.Error(logCtx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	closeErr := server.Shutdown(shutdownCtx)
	closeErr = multierr.Append(closeErr, redisClient.Close())
	closeErr = multierr.Append(closeErr, dbClient.Close())
	if closeErr != nil {
		logg.Error(logCtx, "shutdown finished with errors", closeErr)
		os.Exit(1)
	}
	logg.Info(logCtx, "shutdown complete")
}

func buildServices(cfg *config.Config, dbClient *db.Client, sessionManager *session.Manager, logg *logger.Logger) (routes.Services, error) {
	gdb := dbClient.DB()

	usersRepo := userssvc.NewRepository(gdb)
	vendorsRepo := vendorsvc.NewRepository(gdb)
	cataloguesRepo := cataloguesvc.NewRepository(gdb)
	poRepo := posvc.NewRepository(gdb)
	mdRepo := mdsvc.NewRepository(gdb)
	cartRepo := cartsvc.NewRepository(gdb)
	ordersRepo := orderssvc.NewRepository(gdb)

	authService, err := authsvc.NewService(usersRepo, sessionManager, cfg.JWT, cfg.Password)
	if err != nil {
		return routes.Services{}, err
	}
	usersService, err := userssvc.NewService(usersRepo)
	if err != nil {
		return routes.Services{}, err
	}
	vendorsService, err := vendorsvc.NewService(vendorsRepo)
	if err != nil {
		return routes.Services{}, err
	}
	cataloguesService, err := cataloguesvc.NewService(cataloguesRepo, dbClient)
	if err != nil {
		return routes.Services{}, err
	}
	poService, err := posvc.NewService(poRepo, vendorsRepo, dbClient)
	if err != nil {
		return routes.Services{}, err
	}
	mdService, err := mdsvc.NewService(mdRepo)
	if err != nil {
		return routes.Services{}, err
	}
	cartService, err := cartsvc.NewService(cartRepo)
	if err != nil {
		return routes.Services{}, err
	}
	ordersService, err := orderssvc.NewService(ordersRepo, cartService, logg)
	if err != nil {
		return routes.Services{}, err
	}

	return routes.Services{
		Auth:           authService,
		Users:          usersService,
		Catalogues:     cataloguesService,
		Vendors:        vendorsService,
		PurchaseOrders: poService,
		Masterdata:     mdService,
		Cart:           cartService,
		Orders:         ordersService,
	}, nil
}
