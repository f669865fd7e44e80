package http

import (
	"html/template"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/portfolio-service/internal/metrics"
	"github.com/guttosm/portfolio-service/internal/middleware"
	"github.com/guttosm/portfolio-service/internal/service"
	"github.com/guttosm/portfolio-service/web"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit       int
	RateWindow      time.Duration
	TokenRateLimit  int
	TokenRateWindow time.Duration
	CORSOrigins     []string
	SwaggerUser     string
	SwaggerPass     string
	LoggingService  service.LoggingService
	ContentService  service.ContentService
	AuthService     service.AuthService
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:       100,
		RateWindow:      time.Minute,
		TokenRateLimit:  5,
		TokenRateWindow: time.Minute,
	}
}

// NewRouter creates and configures the Gin router for the portfolio service.
func NewRouter(healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.SetHTMLTemplate(template.Must(web.Templates()))

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	root := &router.RouterGroup
	var protected *gin.RouterGroup
	if cfg.AuthService != nil {
		protected = router.Group("", middleware.JWTAuth(cfg.AuthService))
	}

	if cfg.ContentService != nil {
		content := NewContentRoutes(cfg.ContentService, cfg.LoggingService)
		content.RegisterPublicRoutes(root)
		NewPageRoutes(cfg.ContentService).RegisterPublicRoutes(root)
		if protected != nil {
			content.RegisterProtectedRoutes(protected)
		}
	}

	if protected != nil && cfg.LoggingService != nil {
		NewAuditRoutes(cfg.LoggingService).RegisterProtectedRoutes(protected)
	}

	if cfg.AuthService != nil {
		var limiter *middleware.RateLimiter
		if cfg.TokenRateLimit > 0 {
			limiter = middleware.NewRateLimiter(cfg.TokenRateLimit, cfg.TokenRateWindow, middleware.WithScope("token"))
		}
		NewAuthRoutes(cfg.AuthService, cfg.LoggingService, limiter).RegisterPublicRoutes(root)
	}

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.CORS(cfg.CORSOrigins),
		middleware.RequestLogger(cfg.LoggingService),
		middleware.ErrorHandler(),
	)

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(limiter.RateLimit())
	}
}

// registerInfrastructureRoutes registers health, metrics, documentation and static routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.StaticFS("/static", web.Static())

	docs := router.Group("/swagger", middleware.BasicAuth(cfg.SwaggerUser, cfg.SwaggerPass))
	docs.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
