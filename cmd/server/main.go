package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"infinite-experiment/airport-lookup/internal/api"
	"infinite-experiment/airport-lookup/internal/config"
	"infinite-experiment/airport-lookup/internal/constants"
	"infinite-experiment/airport-lookup/internal/db"
	"infinite-experiment/airport-lookup/internal/logging"
	"infinite-experiment/airport-lookup/internal/metrics"
	"infinite-experiment/airport-lookup/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}

	err = run(cfg)
	if err != nil {
		logging.Error("Server stopped with error", "error", err.Error())
	} else {
		logging.Info("Server stopped")
	}

	// run has returned, so its deferred cleanup is done.
	_ = logging.Close()
	if err != nil {
		os.Exit(1)
	}
}

// run owns every resource that needs closing on the way out.
func run(cfg *config.Config) error {
	logging.Info("Airport lookup starting up",
		"environment", cfg.AppEnv,
		"backend", cfg.Backend,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sqlDB, err := db.Connect(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("unable to connect to the database: %w", err)
	}
	defer sqlDB.Close()
	logging.Info("Database connection established", "host", cfg.Database.Host, "db", cfg.Database.DB)

	gormDB, err := db.OpenORM(db.PostgresDialector(sqlDB.DB))
	if err != nil {
		return fmt.Errorf("failed to open GORM on the shared pool: %w", err)
	}

	// Schema sync never blocks startup.
	db.SyncSchemaAsync(ctx, gormDB)

	metricsReg := metrics.NewMetricsRegistry(prometheus.DefaultRegisterer)
	if err := prometheus.Register(collectors.NewDBStatsCollector(sqlDB.DB, cfg.Database.DB)); err != nil {
		return fmt.Errorf("register db stats collector: %w", err)
	}

	deps, err := api.InitDependencies(sqlDB, gormDB, constants.LookupBackend(cfg.Backend), metricsReg)
	if err != nil {
		return err
	}

	router := routes.RegisterRoutes(cfg, deps, metricsReg, time.Now())

	// Setup metrics endpoint outside of Chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logging.Info("Server is running", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logging.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
