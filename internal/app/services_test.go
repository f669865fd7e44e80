//go:build !integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/portfolio-service/config"
	"github.com/guttosm/portfolio-service/internal/domain/model"
	"github.com/guttosm/portfolio-service/internal/localization"
	"github.com/guttosm/portfolio-service/internal/mocks"
)

func testConfig() config.Config {
	return config.Config{
		Server: config.ServerConfig{
			RateLimit:       100,
			RateWindow:      time.Minute,
			TokenRateLimit:  5,
			TokenRateWindow: time.Minute,
		},
		Auth: config.AuthConfig{
			JWTSecretKey: "test-secret",
			Password:     "s3cret",
			TokenTTL:     time.Hour,
		},
	}
}

// polishOnlyContents returns a repository holding one About me entry that is
// translated to Polish only.
func polishOnlyContents(t *testing.T) *mocks.MockContentRepositoryInterface {
	repo := new(mocks.MockContentRepositoryInterface)
	repo.Test(t)

	about := &model.SoftSkill{
		ID:       1,
		TypeSoft: model.SoftSkillAboutMe,
		Translations: []model.Translation{
			{ID: 1, ObjectID: 1, ObjectType: "SoftSkill", Language: "pl", Title: "O mnie", Text: "Programista Go"},
		},
	}
	repo.On("FindAllByTag", mock.Anything, model.KindSoftSkill, model.SoftSkillAboutMe).Return([]model.Content{about}, nil)
	repo.On("FindAllByTag", mock.Anything, mock.Anything, mock.Anything).Return([]model.Content{}, nil)
	repo.On("FindAll", mock.Anything, mock.Anything).Return([]model.Content{}, nil)
	return repo
}

func TestInitializeServices(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*config.Config)
		wantError  error
		wantAnyErr bool
	}{
		{
			name:   "builds services from plain password",
			mutate: func(*config.Config) {},
		},
		{
			name: "accepts fallback language",
			mutate: func(c *config.Config) {
				c.Content.FallbackLanguage = "pl"
			},
		},
		{
			name: "rejects unsupported fallback language",
			mutate: func(c *config.Config) {
				c.Content.FallbackLanguage = "de"
			},
			wantError: localization.ErrUnsupportedLanguage,
		},
		{
			name: "missing secret",
			mutate: func(c *config.Config) {
				c.Auth.JWTSecretKey = ""
			},
			wantError: config.ErrMissingSecret,
		},
		{
			name: "malformed password hash",
			mutate: func(c *config.Config) {
				c.Auth.Password = ""
				c.Auth.PasswordHash = "plain-text"
			},
			wantAnyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)

			services, err := InitializeServices(cfg, new(mocks.MockContentRepositoryInterface), new(mocks.MockTranslationRepositoryInterface))

			switch {
			case tt.wantError != nil:
				assert.ErrorIs(t, err, tt.wantError)
				assert.Nil(t, services)
			case tt.wantAnyErr:
				assert.Error(t, err)
				assert.Nil(t, services)
			default:
				require.NoError(t, err)
				assert.NotNil(t, services.Content)
				assert.NotNil(t, services.Auth)
			}
		})
	}
}

func TestInitializeServices_FallbackLanguage(t *testing.T) {
	tests := []struct {
		name        string
		fallback    string
		wantMissing bool
		wantTitle   string
	}{
		{name: "no fallback reports missing translation", wantMissing: true},
		{name: "polish fallback fills english page", fallback: "pl", wantTitle: "O mnie"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Content.FallbackLanguage = tt.fallback

			services, err := InitializeServices(cfg, polishOnlyContents(t), new(mocks.MockTranslationRepositoryInterface))
			require.NoError(t, err)

			page, err := services.Content.Page(context.Background(), localization.English)

			if tt.wantMissing {
				var missing *localization.TranslationMissingError
				assert.ErrorAs(t, err, &missing)
				return
			}
			require.NoError(t, err)
			about, ok := page.Section(model.SectionAboutMe)
			require.True(t, ok)
			require.Len(t, about.Items, 1)
			assert.Equal(t, tt.wantTitle, about.Items[0].Title)
			assert.True(t, about.Items[0].FallbackUsed)
			assert.Equal(t, localization.Polish, about.Items[0].Language)
		})
	}
}
