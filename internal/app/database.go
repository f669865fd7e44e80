// Package app provides database initialization and setup.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/portfolio-service/config"
	"github.com/guttosm/portfolio-service/internal/circuitbreaker"
	"github.com/guttosm/portfolio-service/internal/metrics"
	"github.com/guttosm/portfolio-service/internal/repository"
	"github.com/guttosm/portfolio-service/internal/service"
)

// DatabaseComponents holds the PostgreSQL content store.
type DatabaseComponents struct {
	Postgres                  *repository.Postgres
	ContentRepo               repository.ContentRepositoryInterface
	TranslationRepo           repository.TranslationRepositoryInterface
	ContentCircuitBreaker     *circuitbreaker.CircuitBreaker
	TranslationCircuitBreaker *circuitbreaker.CircuitBreaker
}

// AuditComponents holds the optional MongoDB audit sink.
type AuditComponents struct {
	Mongo              *repository.MongoDB
	LoggingService     service.LoggingService
	LogsCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to PostgreSQL, applies the schema when enabled
// and wraps the repositories in circuit breakers. The service cannot run
// without it, so any failure is returned.
func InitializeDatabase(ctx context.Context, cfg config.DatabaseConfig) (*DatabaseComponents, error) {
	db, err := repository.NewPostgres(ctx, repository.PostgresConfig{
		DSN:                cfg.DSN,
		MaxOpenConns:       cfg.MaxOpenConns,
		MaxIdleConns:       cfg.MaxIdleConns,
		ConnMaxLifetime:    cfg.ConnMaxLifetime,
		SlowQueryThreshold: cfg.SlowQueryThreshold,
	})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	log.Info().Msg("Connected to PostgreSQL")

	if cfg.AutoMigrate {
		if err := db.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate postgres: %w", err)
		}
		log.Info().Msg("PostgreSQL schema is up to date")
	}

	contentCB := newCircuitBreaker("postgres-content", cfg)
	translationCB := newCircuitBreaker("postgres-translations", cfg)

	return &DatabaseComponents{
		Postgres:                  db,
		ContentRepo:               repository.NewContentRepositoryWithCircuitBreaker(repository.NewContentRepository(db), contentCB),
		TranslationRepo:           repository.NewTranslationRepositoryWithCircuitBreaker(repository.NewTranslationRepository(db), translationCB),
		ContentCircuitBreaker:     contentCB,
		TranslationCircuitBreaker: translationCB,
	}, nil
}

// Close releases the connection pool.
func (d *DatabaseComponents) Close() {
	if d == nil || d.Postgres == nil {
		return
	}
	if err := d.Postgres.Close(); err != nil {
		log.Warn().Err(err).Msg("Failed to close PostgreSQL pool")
	}
}

// InitializeAudit connects to MongoDB and starts the async audit writer.
// Returns nil if auditing is disabled or the connection fails; the API keeps
// serving without an audit trail in that case.
func InitializeAudit(ctx context.Context, cfg config.AuditConfig, dbCfg config.DatabaseConfig) *AuditComponents {
	if !cfg.Enabled {
		return nil
	}

	mongoCfg := repository.DefaultMongoConfig(cfg.URI, cfg.DatabaseName)
	mongoCfg.MaxPoolSize = cfg.MaxPoolSize
	mongoCfg.ConnectTimeout = cfg.ConnectTimeout
	db, err := repository.NewMongoDB(ctx, mongoCfg)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without audit log")
		return nil
	}
	log.Info().Msg("Connected to MongoDB")

	if err := db.SetLogsTTL(ctx, cfg.LogsTTL); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	logsCB := newCircuitBreaker("mongodb-logs", dbCfg)
	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)

	return &AuditComponents{
		Mongo:              db,
		LoggingService:     service.NewLoggingService(logsRepo),
		LogsCircuitBreaker: logsCB,
	}
}

// Close disconnects from MongoDB.
func (a *AuditComponents) Close(ctx context.Context) {
	if a == nil || a.Mongo == nil {
		return
	}
	if err := a.Mongo.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to disconnect from MongoDB")
	}
}

func newCircuitBreaker(name string, cfg config.DatabaseConfig) *circuitbreaker.CircuitBreaker {
	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
		IsExpected:       repository.IsExpected,
		OnStateChange: func(name string, _, to circuitbreaker.State) {
			metrics.RecordCircuitTransition(name, int(to), to.String())
		},
	})
	metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(circuitbreaker.StateClosed))
	return cb
}
