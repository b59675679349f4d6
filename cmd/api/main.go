package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ArowuTest/alc-results-api/api/routes"
	"github.com/ArowuTest/alc-results-api/internal/config"
	"github.com/ArowuTest/alc-results-api/internal/handlers"
	"github.com/ArowuTest/alc-results-api/internal/logging"
	"github.com/ArowuTest/alc-results-api/internal/metrics"
	"github.com/ArowuTest/alc-results-api/internal/services"
	"github.com/ArowuTest/alc-results-api/pkg/alcapi"
	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	configDir := pflag.StringP("config", "c", config.GetEnv("ALC_CONFIG_DIR", "."), "directory holding config.yaml and .env")
	pflag.Parse()

	// Load configuration
	cfg, err := config.Load(*configDir)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Server.Mode)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	gin.SetMode(cfg.Server.Mode)

	m := metrics.New()

	// Upstream client, service and handlers
	client := alcapi.NewClient(cfg.Upstream.BaseURL,
		alcapi.WithTimeout(cfg.Upstream.Timeout),
		alcapi.WithLogger(logger.Named("alcapi")),
		alcapi.WithObserver(m),
	)
	drawService := services.NewDrawService(client, logger)
	drawHandler := handlers.NewDrawHandler(drawService)

	router := routes.SetupRouter(cfg, routes.HandlerDependencies{
		DrawHandler: drawHandler,
		Metrics:     m,
		Logger:      logger,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	logger.Info("server starting",
		zap.String("port", cfg.Server.Port),
		zap.String("upstream", cfg.Upstream.BaseURL),
	)

	// Run server in a goroutine so that it doesn't block
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
		return
	}

	logger.Info("server exited")
}
