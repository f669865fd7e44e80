// Package app provides service initialization.
package app

import (
	"fmt"

	"github.com/guttosm/portfolio-service/config"
	"github.com/guttosm/portfolio-service/internal/localization"
	"github.com/guttosm/portfolio-service/internal/repository"
	"github.com/guttosm/portfolio-service/internal/service"
	"github.com/guttosm/portfolio-service/internal/service/cache"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Content service.ContentService
	Auth    service.AuthService
}

// InitializeServices builds the content and auth services on top of the repositories.
func InitializeServices(
	cfg config.Config,
	contents repository.ContentRepositoryInterface,
	translations repository.TranslationRepositoryInterface,
) (*ServiceComponents, error) {
	var opts []service.ContentOption
	if cfg.Content.FallbackLanguage != "" {
		fallback, err := localization.ParseLanguage(cfg.Content.FallbackLanguage)
		if err != nil {
			return nil, fmt.Errorf("CONTENT_FALLBACK_LANGUAGE: %w", err)
		}
		opts = append(opts, service.WithLocalizer(localization.NewLocalizer(localization.WithFallback(fallback))))
	}

	if cfg.Content.PageCacheTTL > 0 {
		pages := cache.NewTTLCache[localization.Language, *localization.Page]("pages", len(localization.Supported), cfg.Content.PageCacheTTL)
		opts = append(opts, service.WithPageCache(pages))
	}

	auth, err := service.NewAuthService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}

	return &ServiceComponents{
		Content: service.NewContentService(contents, translations, opts...),
		Auth:    auth,
	}, nil
}
