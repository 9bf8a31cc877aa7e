// Package http wires the gin router and the HTTP server lifecycle.
package http

import (
	"github.com/gin-gonic/gin"

	"github.com/molcraft/molcraft/internal/application/builder"
	"github.com/molcraft/molcraft/internal/infrastructure/monitoring/logging"
	"github.com/molcraft/molcraft/internal/infrastructure/monitoring/prometheus"
	"github.com/molcraft/molcraft/internal/interfaces/http/handlers"
	"github.com/molcraft/molcraft/internal/interfaces/http/middleware"
)

// RouterDeps carries everything the router needs.  Metrics and Checkers are
// optional.
type RouterDeps struct {
	Service  *builder.Service
	Logger   logging.Logger
	Metrics  *prometheus.Metrics
	Checkers map[string]handlers.HealthChecker
	Mode     string
}

// NewRouter assembles the full route table.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Mode != "" {
		gin.SetMode(deps.Mode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())
	r.Use(middleware.RequestLogging(deps.Logger.Named("http"), "/health", "/ready", "/metrics"))
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	handlers.NewHealthHandler(deps.Checkers).Register(r)

	api := r.Group("/api/v1")
	handlers.NewStructureHandler(deps.Service).Register(api)
	handlers.NewPresetHandler(deps.Service).Register(api)

	return r
}
