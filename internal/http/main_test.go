//go:build integration

package http

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/guttosm/portfolio-service/internal/repository"
	"github.com/guttosm/portfolio-service/internal/testutil"
)

// TestMain starts the shared containers for the HTTP integration tests.
func TestMain(m *testing.M) {
	os.Exit(testutil.SetupTestMain(context.Background(), m))
}

// setupPostgres connects to the shared PostgreSQL container with an empty schema.
func setupPostgres(t *testing.T) *repository.Postgres {
	ctx := context.Background()

	db, err := repository.NewPostgres(ctx, repository.DefaultPostgresConfig(testutil.GetSharedPostgresDSN()))
	require.NoError(t, err)
	require.NoError(t, db.Migrate(ctx))
	require.NoError(t, db.DB.Exec(`TRUNCATE "Translations", "Subtechnologies", "Technologies", "Experiences", "Projects", "Softskills" CASCADE`).Error)

	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}
