// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/portfolio-service/config"
	"github.com/guttosm/portfolio-service/internal/http"
	"github.com/guttosm/portfolio-service/internal/middleware"
)

const auditCloseTimeout = 5 * time.Second

// InitializeApp creates and wires all application dependencies. The returned
// cleanup flushes the audit writer and closes the database connections.
func InitializeApp(ctx context.Context, cfg config.Config) (*gin.Engine, func(), error) {
	db, err := InitializeDatabase(ctx, cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	services, err := InitializeServices(cfg, db.ContentRepo, db.TranslationRepo)
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	audit := InitializeAudit(ctx, cfg.Audit, cfg.Database)
	if audit != nil {
		middleware.InitAsyncLogger(audit.LoggingService, middleware.DefaultAsyncLoggerConfig())
	}

	components := InitializeRouter(cfg, services, db, audit)
	router := http.NewRouter(components.HealthHandler, components.Config)

	cleanup := func() {
		middleware.StopAsyncLogger()
		closeCtx, cancel := context.WithTimeout(context.Background(), auditCloseTimeout)
		defer cancel()
		audit.Close(closeCtx)
		db.Close()
	}
	return router, cleanup, nil
}
