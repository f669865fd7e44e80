package repository

import (
	"context"

	"github.com/guttosm/portfolio-service/internal/domain/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TranslationRepository stores Translation rows in PostgreSQL.
type TranslationRepository struct {
	db *gorm.DB
}

// NewTranslationRepository creates a new translation repository.
func NewTranslationRepository(db *Postgres) *TranslationRepository {
	return &TranslationRepository{db: db.DB}
}

// Upsert inserts the translation or overwrites the row with the same id.
// A second translation for the same entity and language is a conflict.
func (r *TranslationRepository) Upsert(ctx context.Context, translation *model.Translation) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				UpdateAll: true,
			}).
			Create(translation).Error
	})
	return translateError(err)
}
