/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the HR dashboard API server.
  Handles configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Parse command-line flags, load config (viper)
  2. Build the zap logger
  3. Open the store (memory or in-memory sqlite) and load the seed scenario
  4. Create API handler and router
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -config  Path to a YAML config file (default: ./config/config.yaml, ./config.yaml)
  -port    HTTP server port, overrides server.port when set

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (server.shutdown_timeout)
  3. Close the store
  4. Exit

ENVIRONMENT:
  Every config key can be set as HRMS_<SECTION>_<KEY>, for example
  HRMS_SERVER_PORT=3000 or HRMS_STORE_DRIVER=sqlite.

SEE ALSO:
  - config/config.go: Keys and defaults
  - api/server.go: Router configuration
  - seed/seed.go: Startup scenarios
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/NikitaKarmakarP/rolewise-zenith/api"
	"github.com/NikitaKarmakarP/rolewise-zenith/config"
	"github.com/NikitaKarmakarP/rolewise-zenith/hrms"
	"github.com/NikitaKarmakarP/rolewise-zenith/logger"
	"github.com/NikitaKarmakarP/rolewise-zenith/seed"
	"github.com/NikitaKarmakarP/rolewise-zenith/store/memory"
	"github.com/NikitaKarmakarP/rolewise-zenith/store/sqlite"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	port := flag.Int("port", 0, "HTTP server port (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *port > 0 {
		cfg.Server.Port = *port
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	scenario, err := seed.Lookup(cfg.Store.Seed)
	if err != nil {
		log.Fatal("unknown seed scenario", zap.String("seed", cfg.Store.Seed), zap.Error(err))
	}

	store, closeStore, err := openStore(cfg.Store, scenario.Build())
	if err != nil {
		log.Fatal("failed to initialize store", zap.String("driver", cfg.Store.Driver), zap.Error(err))
	}
	defer closeStore()

	handler := api.NewHandler(store, log, cfg.Auth)
	handler.SetCurrentScenario(scenario.ID)

	router := api.NewRouter(handler, cfg.Server.CORS.AllowOrigins)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("server starting",
			zap.String("addr", server.Addr),
			zap.String("store", cfg.Store.Driver),
			zap.String("scenario", scenario.ID),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
		return
	}
	log.Info("server stopped")
}

// openStore builds the configured store holding initial.
func openStore(cfg config.StoreConfig, initial hrms.Snapshot) (hrms.Store, func() error, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		store, err := sqlite.New()
		if err != nil {
			return nil, nil, err
		}
		if err := store.Reset(context.Background(), initial); err != nil {
			store.Close()
			return nil, nil, fmt.Errorf("failed to seed store: %w", err)
		}
		return store, store.Close, nil
	default:
		if err := initial.Validate(); err != nil {
			return nil, nil, fmt.Errorf("invalid seed: %w", err)
		}
		return memory.New(initial), func() error { return nil }, nil
	}
}
