// Package repository provides the data access layer: PostgreSQL for content
// and translations, MongoDB for the optional audit log.
package repository

import (
	"context"
	"errors"

	"github.com/guttosm/portfolio-service/internal/domain/model"
)

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a write violates a unique or foreign key constraint.
	ErrConflict = errors.New("record conflicts with existing data")
)

// ContentRepositoryInterface defines the interface for content repository operations.
type ContentRepositoryInterface interface {
	FindByID(ctx context.Context, kind model.Kind, id int64) (model.Content, error)
	FindAll(ctx context.Context, kind model.Kind) ([]model.Content, error)
	FindAllByTag(ctx context.Context, kind model.Kind, tag string) ([]model.Content, error)
	Upsert(ctx context.Context, content model.Content) error
	Delete(ctx context.Context, kind model.Kind, id int64) error
	Exists(ctx context.Context, kind model.Kind, id int64) (bool, error)
}

// TranslationRepositoryInterface defines the interface for translation repository operations.
type TranslationRepositoryInterface interface {
	Upsert(ctx context.Context, translation *model.Translation) error
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogDocument) error
	CreateMany(ctx context.Context, entries []*LogDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}

// IsExpected reports errors that describe the request rather than the backend.
func IsExpected(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict) || errors.Is(err, model.ErrUnknownKind)
}
