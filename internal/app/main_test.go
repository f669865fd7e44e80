//go:build integration

package app

import (
	"context"
	"os"
	"testing"

	"github.com/guttosm/portfolio-service/internal/testutil"
)

// TestMain starts the shared PostgreSQL and MongoDB containers for the app integration tests.
func TestMain(m *testing.M) {
	os.Exit(testutil.SetupTestMain(context.Background(), m))
}
