package repository

import (
	"context"
	"errors"

	"github.com/guttosm/portfolio-service/internal/circuitbreaker"
	"github.com/guttosm/portfolio-service/internal/domain/model"
)

// ContentRepositoryWithCircuitBreaker wraps a content repository with circuit breaker protection.
// ErrCircuitOpen is returned to the caller while the circuit is open.
type ContentRepositoryWithCircuitBreaker struct {
	repo           ContentRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewContentRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewContentRepositoryWithCircuitBreaker(repo ContentRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *ContentRepositoryWithCircuitBreaker {
	return &ContentRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// FindByID returns one entity with circuit breaker protection.
func (r *ContentRepositoryWithCircuitBreaker) FindByID(ctx context.Context, kind model.Kind, id int64) (model.Content, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() (model.Content, error) {
		return r.repo.FindByID(ctx, kind, id)
	})
}

// FindAll returns all entities of kind with circuit breaker protection.
func (r *ContentRepositoryWithCircuitBreaker) FindAll(ctx context.Context, kind model.Kind) ([]model.Content, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() ([]model.Content, error) {
		return r.repo.FindAll(ctx, kind)
	})
}

// FindAllByTag returns tagged entities with circuit breaker protection.
func (r *ContentRepositoryWithCircuitBreaker) FindAllByTag(ctx context.Context, kind model.Kind, tag string) ([]model.Content, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() ([]model.Content, error) {
		return r.repo.FindAllByTag(ctx, kind, tag)
	})
}

// Upsert stores content with circuit breaker protection.
func (r *ContentRepositoryWithCircuitBreaker) Upsert(ctx context.Context, content model.Content) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Upsert(ctx, content)
	})
}

// Delete removes an entity with circuit breaker protection.
func (r *ContentRepositoryWithCircuitBreaker) Delete(ctx context.Context, kind model.Kind, id int64) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Delete(ctx, kind, id)
	})
}

// Exists checks for an entity with circuit breaker protection.
func (r *ContentRepositoryWithCircuitBreaker) Exists(ctx context.Context, kind model.Kind, id int64) (bool, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() (bool, error) {
		return r.repo.Exists(ctx, kind, id)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *ContentRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// TranslationRepositoryWithCircuitBreaker wraps a translation repository with circuit breaker protection.
type TranslationRepositoryWithCircuitBreaker struct {
	repo           TranslationRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewTranslationRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
// Content and translations share one database, so they normally share one breaker.
func NewTranslationRepositoryWithCircuitBreaker(repo TranslationRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *TranslationRepositoryWithCircuitBreaker {
	return &TranslationRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Upsert stores a translation with circuit breaker protection.
func (r *TranslationRepositoryWithCircuitBreaker) Upsert(ctx context.Context, translation *model.Translation) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Upsert(ctx, translation)
	})
}

// LogsRepositoryWithCircuitBreaker wraps a logs repository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           LogsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores doc. Audit logging is best effort, so an open circuit
// drops the entry without an error.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, doc *LogDocument) error {
	return dropWhenOpen(r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, doc)
	}))
}

// CreateMany stores docs. An open circuit drops the batch.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, docs []*LogDocument) error {
	return dropWhenOpen(r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, docs)
	}))
}

func dropWhenOpen(err error) error {
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogDocument, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() ([]*LogDocument, error) {
		return r.repo.Query(ctx, opts)
	})
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() (int64, error) {
		return r.repo.Count(ctx, opts)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
