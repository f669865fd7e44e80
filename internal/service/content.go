package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/guttosm/portfolio-service/internal/domain/dto"
	"github.com/guttosm/portfolio-service/internal/domain/model"
	"github.com/guttosm/portfolio-service/internal/localization"
	"github.com/guttosm/portfolio-service/internal/logger"
	"github.com/guttosm/portfolio-service/internal/metrics"
	"github.com/guttosm/portfolio-service/internal/repository"
	"github.com/guttosm/portfolio-service/internal/service/cache"
)

const maxNameLength = 50

// ContentService provides the portfolio content operations.
type ContentService interface {
	// Get returns one entity with its translations.
	Get(ctx context.Context, discriminator string, id int64) (model.Content, error)
	// GetAll returns every entity grouped into the fixed section layout.
	GetAll(ctx context.Context) (model.Sections, error)
	// Put validates the form, then inserts or overwrites the entity with its id.
	Put(ctx context.Context, req dto.PutContentRequest) (model.Content, error)
	// PutText inserts or overwrites a translation of an existing entity.
	PutText(ctx context.Context, req dto.PutTextRequest) (*model.Translation, error)
	// Delete removes an entity and returns a confirmation message.
	Delete(ctx context.Context, discriminator string, id int64) (string, error)
	// Page returns every section localized to lang.
	Page(ctx context.Context, lang localization.Language) (*localization.Page, error)
}

// ContentOption configures a ContentServiceImpl.
type ContentOption func(*ContentServiceImpl)

// WithClock overrides the time source used for ongoing experience ranges.
func WithClock(now func() time.Time) ContentOption {
	return func(s *ContentServiceImpl) {
		s.now = now
	}
}

// WithLocalizer overrides the localizer used by Page.
func WithLocalizer(l *localization.Localizer) ContentOption {
	return func(s *ContentServiceImpl) {
		s.localizer = l
	}
}

// WithPageCache caches localized pages per language. Every successful write
// clears the cache.
func WithPageCache(c cache.Cache[localization.Language, *localization.Page]) ContentOption {
	return func(s *ContentServiceImpl) {
		s.pages = c
	}
}

// ContentServiceImpl implements ContentService on top of the repositories.
type ContentServiceImpl struct {
	contents     repository.ContentRepositoryInterface
	translations repository.TranslationRepositoryInterface
	localizer    *localization.Localizer
	pages        cache.Cache[localization.Language, *localization.Page]
	now          func() time.Time

	// pagesMu guards pagesGen, which every write bumps so that a page
	// rendered from data read before the write is never stored.
	pagesMu  sync.Mutex
	pagesGen uint64
}

// NewContentService creates a new content service.
func NewContentService(
	contents repository.ContentRepositoryInterface,
	translations repository.TranslationRepositoryInterface,
	opts ...ContentOption,
) *ContentServiceImpl {
	s := &ContentServiceImpl{
		contents:     contents,
		translations: translations,
		localizer:    localization.NewLocalizer(),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns one entity with its translations.
func (s *ContentServiceImpl) Get(ctx context.Context, discriminator string, id int64) (model.Content, error) {
	kind, err := model.ParseKind(discriminator)
	if err != nil {
		recordOperation("unknown", "get", err)
		return nil, err
	}

	c, err := s.contents.FindByID(ctx, kind, id)
	recordOperation(kind.String(), "get", err)
	if err != nil {
		return nil, fmt.Errorf("get %s %d: %w", kind, id, err)
	}
	return c, nil
}

// GetAll returns every entity grouped into model.SectionLayout.
func (s *ContentServiceImpl) GetAll(ctx context.Context) (model.Sections, error) {
	sections := make(model.Sections, 0, len(model.SectionLayout))
	for _, def := range model.SectionLayout {
		var (
			items []model.Content
			err   error
		)
		if def.Tag == "" {
			items, err = s.contents.FindAll(ctx, def.Kind)
		} else {
			items, err = s.contents.FindAllByTag(ctx, def.Kind, def.Tag)
		}
		if err != nil {
			recordOperation(def.Kind.String(), "get_all", err)
			return nil, fmt.Errorf("load section %q: %w", def.Key, err)
		}
		sections = append(sections, model.Section{Key: def.Key, Items: items})
	}
	recordOperation("all", "get_all", nil)
	return sections, nil
}

// Put validates the form, then inserts or overwrites the entity with its id.
// The stored entity is returned without translations.
func (s *ContentServiceImpl) Put(ctx context.Context, req dto.PutContentRequest) (model.Content, error) {
	kind, err := model.ParseKind(req.Content)
	if err != nil {
		recordOperation("unknown", "put", err)
		return nil, err
	}

	c, err := s.buildContent(kind, req)
	if err != nil {
		recordOperation(kind.String(), "put", err)
		return nil, err
	}

	err = s.contents.Upsert(ctx, c)
	recordOperation(kind.String(), "put", err)
	if err != nil {
		return nil, fmt.Errorf("put %s %d: %w", kind, c.GetID(), err)
	}
	s.invalidatePages()

	logger.FromContext(ctx).Info().
		Str("kind", kind.String()).
		Int64("id", c.GetID()).
		Msg("content stored")
	return c, nil
}

// PutText inserts or overwrites a translation. The referenced entity must exist.
func (s *ContentServiceImpl) PutText(ctx context.Context, req dto.PutTextRequest) (*model.Translation, error) {
	tr, kind, err := buildTranslation(req)
	if err != nil {
		recordOperation("translation", "put_text", err)
		return nil, err
	}

	ok, err := s.contents.Exists(ctx, kind, tr.ObjectID)
	if err != nil {
		recordOperation(kind.String(), "put_text", err)
		return nil, fmt.Errorf("check %s %d: %w", kind, tr.ObjectID, err)
	}
	if !ok {
		err = fmt.Errorf("translation target %s %d: %w", kind, tr.ObjectID, repository.ErrNotFound)
		recordOperation(kind.String(), "put_text", err)
		return nil, err
	}

	err = s.translations.Upsert(ctx, tr)
	recordOperation(kind.String(), "put_text", err)
	if err != nil {
		return nil, fmt.Errorf("put translation %d: %w", tr.ID, err)
	}
	s.invalidatePages()

	logger.FromContext(ctx).Info().
		Int64("id", tr.ID).
		Str("object_type", tr.ObjectType).
		Int64("object_id", tr.ObjectID).
		Str("language", tr.Language).
		Msg("translation stored")
	return tr, nil
}

// Delete removes an entity together with its translations.
func (s *ContentServiceImpl) Delete(ctx context.Context, discriminator string, id int64) (string, error) {
	kind, err := model.ParseKind(discriminator)
	if err != nil {
		recordOperation("unknown", "delete", err)
		return "", err
	}

	err = s.contents.Delete(ctx, kind, id)
	recordOperation(kind.String(), "delete", err)
	if err != nil {
		return "", fmt.Errorf("delete %s %d: %w", kind, id, err)
	}
	s.invalidatePages()

	logger.FromContext(ctx).Info().
		Str("kind", kind.String()).
		Int64("id", id).
		Msg("content deleted")
	return DeletedMessage(kind, id), nil
}

// Page returns every section localized to lang followed by the Contact placeholder.
// The result is shared with other callers when a page cache is configured and
// must not be modified.
func (s *ContentServiceImpl) Page(ctx context.Context, lang localization.Language) (*localization.Page, error) {
	var gen uint64
	if s.pages != nil {
		if page, ok := s.pages.Get(lang); ok {
			return page, nil
		}
		gen = s.pageGeneration()
	}

	sections, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	page, err := s.localizer.Localize(sections, lang)
	metrics.RecordLocalization(lang.String(), time.Since(start))
	if err != nil {
		return nil, err
	}
	if s.pages != nil {
		s.storePage(lang, page, gen)
	}
	return page, nil
}

func (s *ContentServiceImpl) pageGeneration() uint64 {
	s.pagesMu.Lock()
	defer s.pagesMu.Unlock()
	return s.pagesGen
}

// storePage caches page unless a write completed after gen was read.
func (s *ContentServiceImpl) storePage(lang localization.Language, page *localization.Page, gen uint64) {
	s.pagesMu.Lock()
	defer s.pagesMu.Unlock()
	if s.pagesGen == gen {
		s.pages.Set(lang, page)
	}
}

func (s *ContentServiceImpl) invalidatePages() {
	if s.pages == nil {
		return
	}
	s.pagesMu.Lock()
	defer s.pagesMu.Unlock()
	s.pagesGen++
	s.pages.Clear()
}

// DeletedMessage is the confirmation returned by Delete.
func DeletedMessage(kind model.Kind, id int64) string {
	return fmt.Sprintf("Content from %s with id %d has been deleted", kind, id)
}

func (s *ContentServiceImpl) buildContent(kind model.Kind, req dto.PutContentRequest) (model.Content, error) {
	if req.ID == nil {
		return nil, dto.RequiredField("id")
	}
	id := *req.ID
	if id <= 0 {
		return nil, dto.NewValidationError("id", "must be positive")
	}

	switch kind {
	case model.KindSoftSkill:
		typeSoft := strings.TrimSpace(req.TypeSoft)
		if err := oneOf("type_soft", typeSoft, model.SoftSkillTypes); err != nil {
			return nil, err
		}
		return &model.SoftSkill{ID: id, TypeSoft: typeSoft}, nil

	case model.KindMyProject:
		p := &model.MyProject{
			ID:                  id,
			SubtechnologiesUsed: strings.TrimSpace(req.SubtechnologiesUsed),
			ImagePath:           strings.TrimSpace(req.ImagePath),
			Link:                strings.TrimSpace(req.ProjectLink()),
		}
		if p.SubtechnologiesUsed == "" {
			return nil, dto.RequiredField("subtechnologies_used")
		}
		if p.ImagePath == "" {
			return nil, dto.RequiredField("image_path")
		}
		if p.Link == "" {
			return nil, dto.RequiredField("github_link")
		}
		return p, nil

	case model.KindTechnology:
		name, err := shortName("technology_name", req.TechnologyName)
		if err != nil {
			return nil, err
		}
		return &model.Technology{ID: id, TechnologyName: name}, nil

	case model.KindSubtechnology:
		parent, err := shortName("technology_name", req.TechnologyName)
		if err != nil {
			return nil, err
		}
		name, err := shortName("subtechnology_name", req.SubtechnologyName)
		if err != nil {
			return nil, err
		}
		return &model.Subtechnology{ID: id, TechnologyName: &parent, SubtechnologyName: name}, nil

	case model.KindExperience:
		typeExp := strings.TrimSpace(req.TypeExp)
		if err := oneOf("type_exp", typeExp, model.ExperienceTypes); err != nil {
			return nil, err
		}
		if strings.TrimSpace(req.StartingDate) == "" {
			return nil, dto.RequiredField("starting_date")
		}
		timeRange, err := FormatTimeRange(req.StartingDate, req.EndingDate, s.now())
		if err != nil {
			return nil, err
		}
		return &model.Experience{
			ID:        id,
			TypeExp:   typeExp,
			Location:  strings.TrimSpace(req.Location),
			TimeRange: timeRange,
		}, nil
	}
	return nil, model.ErrUnknownKind
}

func buildTranslation(req dto.PutTextRequest) (*model.Translation, model.Kind, error) {
	if req.ID == nil {
		return nil, "", dto.RequiredField("id")
	}
	if *req.ID <= 0 {
		return nil, "", dto.NewValidationError("id", "must be positive")
	}
	if req.ObjectID == nil {
		return nil, "", dto.RequiredField("object_id")
	}
	if *req.ObjectID <= 0 {
		return nil, "", dto.NewValidationError("object_id", "must be positive")
	}

	kind, err := model.ParseKind(req.ObjectType)
	if err != nil {
		return nil, "", dto.NewValidationError("object_type", "must be one of %s", kindList())
	}
	lang, err := localization.ParseLanguage(req.Language)
	if err != nil {
		return nil, "", dto.NewValidationError("language", "must be en or pl")
	}

	return &model.Translation{
		ID:         *req.ID,
		ObjectID:   *req.ObjectID,
		ObjectType: kind.ObjectType(),
		Language:   lang.String(),
		Title:      req.Title,
		Text:       req.Text,
	}, kind, nil
}

func oneOf(field, value string, allowed []string) error {
	if value == "" {
		return dto.RequiredField(field)
	}
	if !slices.Contains(allowed, value) {
		return dto.NewValidationError(field, "must be one of %s", strings.Join(allowed, ", "))
	}
	return nil
}

func shortName(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", dto.RequiredField(field)
	}
	if utf8.RuneCountInString(v) > maxNameLength {
		return "", dto.NewValidationError(field, "must be at most %d characters", maxNameLength)
	}
	return v, nil
}

func kindList() string {
	names := make([]string, len(model.Kinds))
	for i, k := range model.Kinds {
		names[i] = k.ObjectType()
	}
	return strings.Join(names, ", ")
}

func recordOperation(kind, operation string, err error) {
	metrics.RecordContentOperation(kind, operation, operationStatus(err))
}

func operationStatus(err error) string {
	var verr *dto.ValidationError
	switch {
	case err == nil:
		return metrics.StatusSuccess
	case errors.Is(err, repository.ErrNotFound):
		return metrics.StatusNotFound
	case errors.As(err, &verr), errors.Is(err, model.ErrUnknownKind), errors.Is(err, repository.ErrConflict):
		return metrics.StatusInvalid
	default:
		return metrics.StatusError
	}
}
