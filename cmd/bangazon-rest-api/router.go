package main

import (
	"context"
	"net/http"
	"time"

	"github.com/bangazon/bangazon-api/api/openapi"
	v1 "github.com/bangazon/bangazon-api/internal/api/rest/v1"
	"github.com/bangazon/bangazon-api/internal/infrastructure/persistence"
	"github.com/bangazon/bangazon-api/internal/pkg/config"
	"github.com/bangazon/bangazon-api/internal/pkg/logger"
	"github.com/bangazon/bangazon-api/internal/pkg/metrics"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Operational endpoints outside the documented API
const (
	OpenAPIPath = "/openapi.yaml"
	SwaggerPath = "/swagger/*any"
)

// newRouter builds the gin engine with middleware, API routes and operational endpoints
func newRouter(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) *gin.Engine {
	r := gin.New()

	zapLogger := logger.ZapFrom(log)
	r.Use(ginzap.Ginzap(zapLogger, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(zapLogger, true))
	r.Use(v1.RequestID())

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", v1.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", v1.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	if cfg.Tracing.Enabled {
		r.Use(otelgin.Middleware(cfg.Tracing.ServiceName))
	}

	if cfg.Metrics.Enabled {
		r.Use(metrics.GinMiddleware())
		r.GET(cfg.Metrics.Path, gin.WrapH(metrics.Handler()))
	}

	// Setup API routes
	v1.SetupRoutes(r,
		deps.services.category,
		deps.services.paymentType,
		deps.services.order,
	)

	v1.SetupHealthRoute(r, func(ctx context.Context) error {
		return persistence.Ping(ctx, deps.db)
	})

	r.GET(OpenAPIPath, func(c *gin.Context) {
		c.Data(http.StatusOK, "application/yaml", openapi.Document)
	})
	r.GET(SwaggerPath, ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL(OpenAPIPath)))

	return r
}
