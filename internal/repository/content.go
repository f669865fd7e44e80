package repository

import (
	"context"
	"fmt"

	"github.com/guttosm/portfolio-service/internal/domain/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// contentRow constrains the generic helpers to pointer-to-entity types.
type contentRow[T any] interface {
	*T
	model.Content
}

// kindTable describes how one entity kind is read from its table.
type kindTable struct {
	tagColumn string
	scope     func(db *gorm.DB) *gorm.DB
	findOne   func(db *gorm.DB, id int64) (model.Content, error)
	findMany  func(db *gorm.DB) ([]model.Content, error)
}

func findOne[T any, PT contentRow[T]](db *gorm.DB, id int64) (model.Content, error) {
	var row T
	if err := db.Where("id = ?", id).Take(&row).Error; err != nil {
		return nil, translateError(err)
	}
	return PT(&row), nil
}

func findMany[T any, PT contentRow[T]](db *gorm.DB) ([]model.Content, error) {
	var rows []T
	if err := db.Order("id").Find(&rows).Error; err != nil {
		return nil, translateError(err)
	}
	out := make([]model.Content, len(rows))
	for i := range rows {
		out[i] = PT(&rows[i])
	}
	return out, nil
}

func noScope(db *gorm.DB) *gorm.DB { return db }

func withSubtechnologies(db *gorm.DB) *gorm.DB {
	return db.Preload("Subtechnologies", func(db *gorm.DB) *gorm.DB {
		return db.Order("id")
	})
}

var kindTables = map[model.Kind]kindTable{
	model.KindSoftSkill: {
		tagColumn: "type_soft",
		scope:     noScope,
		findOne:   findOne[model.SoftSkill, *model.SoftSkill],
		findMany:  findMany[model.SoftSkill, *model.SoftSkill],
	},
	model.KindMyProject: {
		scope:    noScope,
		findOne:  findOne[model.MyProject, *model.MyProject],
		findMany: findMany[model.MyProject, *model.MyProject],
	},
	model.KindTechnology: {
		scope:    withSubtechnologies,
		findOne:  findOne[model.Technology, *model.Technology],
		findMany: findMany[model.Technology, *model.Technology],
	},
	model.KindSubtechnology: {
		scope:    noScope,
		findOne:  findOne[model.Subtechnology, *model.Subtechnology],
		findMany: findMany[model.Subtechnology, *model.Subtechnology],
	},
	model.KindExperience: {
		tagColumn: "type_exp",
		scope:     noScope,
		findOne:   findOne[model.Experience, *model.Experience],
		findMany:  findMany[model.Experience, *model.Experience],
	},
}

func tableFor(kind model.Kind) (kindTable, error) {
	t, ok := kindTables[kind]
	if !ok {
		return kindTable{}, model.ErrUnknownKind
	}
	return t, nil
}

// ContentRepository stores portfolio entities in PostgreSQL.
type ContentRepository struct {
	db *gorm.DB
}

// NewContentRepository creates a new content repository.
func NewContentRepository(db *Postgres) *ContentRepository {
	return &ContentRepository{db: db.DB}
}

// FindByID returns one entity with its translations attached.
func (r *ContentRepository) FindByID(ctx context.Context, kind model.Kind, id int64) (model.Content, error) {
	t, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	c, err := t.findOne(t.scope(db), id)
	if err != nil {
		return nil, err
	}
	if err := attachTranslations(db, []model.Content{c}); err != nil {
		return nil, err
	}
	return c, nil
}

// FindAll returns every entity of kind ordered by id.
func (r *ContentRepository) FindAll(ctx context.Context, kind model.Kind) ([]model.Content, error) {
	return r.FindAllByTag(ctx, kind, "")
}

// FindAllByTag returns entities of kind whose category column equals tag.
// An empty tag matches every row.
func (r *ContentRepository) FindAllByTag(ctx context.Context, kind model.Kind, tag string) ([]model.Content, error) {
	t, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	q := t.scope(db)
	if tag != "" {
		if t.tagColumn == "" {
			return nil, fmt.Errorf("%s has no category column", kind)
		}
		q = q.Where(clause.Eq{Column: clause.Column{Name: t.tagColumn}, Value: tag})
	}

	items, err := t.findMany(q)
	if err != nil {
		return nil, err
	}
	if err := attachTranslations(db, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Upsert inserts content or overwrites every column of the row with the same id.
func (r *ContentRepository) Upsert(ctx context.Context, content model.Content) error {
	if _, err := tableFor(content.Kind()); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.
			Omit(clause.Associations).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				UpdateAll: true,
			}).
			Create(content).Error
	})
	return translateError(err)
}

// Delete removes the entity and the translations attached to it.
func (r *ContentRepository) Delete(ctx context.Context, kind model.Kind, id int64) error {
	row, err := model.NewContent(kind)
	if err != nil {
		return err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(row)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.
			Where("object_type = ? AND object_id = ?", kind.ObjectType(), id).
			Delete(&model.Translation{}).Error
	})
	return translateError(err)
}

// Exists reports whether an entity of kind with id is stored.
func (r *ContentRepository) Exists(ctx context.Context, kind model.Kind, id int64) (bool, error) {
	row, err := model.NewContent(kind)
	if err != nil {
		return false, err
	}

	var n int64
	if err := r.db.WithContext(ctx).Model(row).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, translateError(err)
	}
	return n > 0, nil
}

// attachTranslations loads translations for items, and for the
// subtechnologies nested under technologies, with one query per kind.
func attachTranslations(db *gorm.DB, items []model.Content) error {
	if len(items) == 0 {
		return nil
	}

	kind := items[0].Kind()
	ids := make([]int64, len(items))
	for i, c := range items {
		ids[i] = c.GetID()
	}

	byObject, err := translationsByObject(db, kind, ids)
	if err != nil {
		return err
	}
	for _, c := range items {
		c.SetTranslations(byObject[c.GetID()])
	}

	if kind != model.KindTechnology {
		return nil
	}

	var subIDs []int64
	for _, c := range items {
		for _, s := range c.(*model.Technology).Subtechnologies {
			subIDs = append(subIDs, s.ID)
		}
	}
	if len(subIDs) == 0 {
		return nil
	}

	subs, err := translationsByObject(db, model.KindSubtechnology, subIDs)
	if err != nil {
		return err
	}
	for _, c := range items {
		tech := c.(*model.Technology)
		for i := range tech.Subtechnologies {
			tech.Subtechnologies[i].Translations = subs[tech.Subtechnologies[i].ID]
		}
	}
	return nil
}

func translationsByObject(db *gorm.DB, kind model.Kind, ids []int64) (map[int64][]model.Translation, error) {
	var rows []model.Translation
	err := db.
		Where("object_type = ? AND object_id IN ?", kind.ObjectType(), ids).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}

	out := make(map[int64][]model.Translation, len(ids))
	for _, tr := range rows {
		out[tr.ObjectID] = append(out[tr.ObjectID], tr)
	}
	return out, nil
}
