package routes

import (
	"github.com/ArowuTest/alc-results-api/internal/config"
	"github.com/ArowuTest/alc-results-api/internal/handlers"
	"github.com/ArowuTest/alc-results-api/internal/metrics"
	"github.com/ArowuTest/alc-results-api/internal/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HandlerDependencies holds everything SetupRouter wires into the engine
type HandlerDependencies struct {
	DrawHandler *handlers.DrawHandler
	Metrics     *metrics.Metrics // optional
	Logger      *zap.Logger
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware(logger.Named("http")))
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.CORSMiddleware(cfg.Server.AllowedOrigin))
	if deps.Metrics != nil {
		router.Use(middleware.MetricsMiddleware(deps.Metrics))
	}
	router.Use(middleware.ErrorResponder())

	if deps.Metrics != nil && cfg.Metrics.Enabled {
		router.GET(cfg.Metrics.Path, gin.WrapH(deps.Metrics.Handler()))
	}

	// Draw routes
	draws := deps.DrawHandler
	router.GET("/latest", draws.GetLatest)
	router.GET("/latest/:game", draws.GetLatestForGame)
	router.GET("/draw_dates/:game", draws.GetDrawDates)
	router.GET("/draw/:game/:param", draws.GetDraw)
	router.GET("/draws/:game/:count", draws.GetDraws)

	router.NoRoute(middleware.InvalidEndpoint)

	return router
}
