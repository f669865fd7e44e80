//go:build integration

package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/portfolio-service/config"
	"github.com/guttosm/portfolio-service/internal/testutil"
)

func integrationConfig(t *testing.T) config.Config {
	cfg := testConfig()
	cfg.Database = config.DatabaseConfig{
		DSN:                            testutil.GetSharedPostgresDSN(),
		MaxOpenConns:                   5,
		MaxIdleConns:                   2,
		ConnMaxLifetime:                time.Minute,
		SlowQueryThreshold:             time.Second,
		AutoMigrate:                    true,
		CircuitBreakerFailureThreshold: 5,
		CircuitBreakerSuccessThreshold: 2,
		CircuitBreakerTimeout:          30 * time.Second,
	}
	cfg.Audit = config.AuditConfig{
		URI:          testutil.GetSharedContainerURI(),
		DatabaseName: testutil.SanitizeDBName(t.Name()),
		LogsTTL:      24 * time.Hour,
	}
	return cfg
}

func TestInitializeApp_Integration(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		auditEnabled bool
		wantChecks   []string
	}{
		{
			name:       "postgres only",
			wantChecks: []string{"postgres", "postgres_content_circuit", "postgres_translations_circuit"},
		},
		{
			name:         "with mongodb audit log",
			auditEnabled: true,
			wantChecks:   []string{"postgres", "mongodb", "mongodb_logs_circuit"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := integrationConfig(t)
			cfg.Audit.Enabled = tt.auditEnabled

			router, cleanup, err := InitializeApp(context.Background(), cfg)
			require.NoError(t, err)
			t.Cleanup(cleanup)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var body struct {
				Status string            `json:"status"`
				Checks map[string]string `json:"checks"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "ok", body.Status)
			for _, name := range tt.wantChecks {
				assert.Contains(t, body.Checks, name)
			}

			w = httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/get-all/", nil))
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestInitializeApp_InvalidDSN(t *testing.T) {
	cfg := integrationConfig(t)
	cfg.Database.DSN = "host=127.0.0.1 port=1 user=nobody dbname=none sslmode=disable connect_timeout=1"

	router, cleanup, err := InitializeApp(context.Background(), cfg)

	assert.Error(t, err)
	assert.Nil(t, router)
	assert.Nil(t, cleanup)
}

func TestInitializeAudit_UnreachableMongo(t *testing.T) {
	cfg := integrationConfig(t)
	cfg.Audit.Enabled = true
	cfg.Audit.URI = "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=500&connectTimeoutMS=500"

	assert.Nil(t, InitializeAudit(context.Background(), cfg.Audit, cfg.Database))
}
