// Package app provides router configuration.
package app

import (
	"github.com/guttosm/portfolio-service/config"
	"github.com/guttosm/portfolio-service/internal/http"
	"github.com/guttosm/portfolio-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter builds the health handler and router configuration.
// db and audit may be nil; their checks are then left out of readiness.
func InitializeRouter(
	cfg config.Config,
	services *ServiceComponents,
	db *DatabaseComponents,
	audit *AuditComponents,
) *RouterComponents {
	healthHandler := http.NewHealthHandler()

	if db != nil {
		if db.Postgres != nil {
			healthHandler.RegisterChecker("postgres", db.Postgres)
		}
		if db.ContentCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("postgres_content", db.ContentCircuitBreaker)
		}
		if db.TranslationCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("postgres_translations", db.TranslationCircuitBreaker)
		}
	}

	var loggingService service.LoggingService
	if audit != nil {
		loggingService = audit.LoggingService
		if audit.Mongo != nil {
			healthHandler.RegisterChecker("mongodb", audit.Mongo, http.Optional())
		}
		if audit.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", audit.LogsCircuitBreaker, http.Optional())
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:       cfg.Server.RateLimit,
		RateWindow:      cfg.Server.RateWindow,
		TokenRateLimit:  cfg.Server.TokenRateLimit,
		TokenRateWindow: cfg.Server.TokenRateWindow,
		CORSOrigins:     cfg.Server.CORSOrigins,
		SwaggerUser:     cfg.Server.SwaggerUser,
		SwaggerPass:     cfg.Server.SwaggerPass,
		LoggingService:  loggingService,
	}
	if services != nil {
		routerCfg.ContentService = services.Content
		routerCfg.AuthService = services.Auth
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
