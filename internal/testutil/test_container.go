//go:build integration

package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"
)

var (
	sharedMongo     *MongoDBContainer
	sharedMongoErr  error
	sharedMongoOnce sync.Once

	sharedPostgres     *PostgresContainer
	sharedPostgresErr  error
	sharedPostgresOnce sync.Once

	sharedMu sync.RWMutex
)

// GetSharedMongoDB returns a MongoDB container shared by every test in a package.
func GetSharedMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	sharedMongoOnce.Do(func() {
		sharedMu.Lock()
		defer sharedMu.Unlock()
		sharedMongo, sharedMongoErr = SetupMongoDB(ctx)
	})

	sharedMu.RLock()
	defer sharedMu.RUnlock()
	return sharedMongo, sharedMongoErr
}

// GetSharedPostgres returns a PostgreSQL container shared by every test in a package.
func GetSharedPostgres(ctx context.Context) (*PostgresContainer, error) {
	sharedPostgresOnce.Do(func() {
		sharedMu.Lock()
		defer sharedMu.Unlock()
		sharedPostgres, sharedPostgresErr = SetupPostgres(ctx)
	})

	sharedMu.RLock()
	defer sharedMu.RUnlock()
	return sharedPostgres, sharedPostgresErr
}

// SetupTestMain starts the shared containers, runs the tests and tears the
// containers down. Usage:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMain(context.Background(), m))
//	}
func SetupTestMain(ctx context.Context, m *testing.M) int {
	if _, err := GetSharedPostgres(ctx); err != nil {
		panic(err)
	}
	if _, err := GetSharedMongoDB(ctx); err != nil {
		panic(err)
	}

	code := m.Run()

	sharedMu.Lock()
	defer sharedMu.Unlock()
	if sharedPostgres != nil {
		if err := sharedPostgres.Cleanup(ctx); err != nil {
			_, _ = os.Stderr.WriteString("Warning: failed to cleanup shared PostgreSQL container: " + err.Error() + "\n")
		}
	}
	if sharedMongo != nil {
		if err := sharedMongo.Cleanup(ctx); err != nil {
			_, _ = os.Stderr.WriteString("Warning: failed to cleanup shared MongoDB container: " + err.Error() + "\n")
		}
	}
	return code
}

// GetSharedContainerURI returns the URI of the shared MongoDB container.
// Panics if the container is not initialized.
func GetSharedContainerURI() string {
	sharedMu.RLock()
	defer sharedMu.RUnlock()

	if sharedMongo == nil {
		panic("shared MongoDB container not initialized - call GetSharedMongoDB first")
	}
	return sharedMongo.URI
}

// GetSharedPostgresDSN returns the DSN of the shared PostgreSQL container.
// Panics if the container is not initialized.
func GetSharedPostgresDSN() string {
	sharedMu.RLock()
	defer sharedMu.RUnlock()

	if sharedPostgres == nil {
		panic("shared PostgreSQL container not initialized - call GetSharedPostgres first")
	}
	return sharedPostgres.DSN
}

// SanitizeDBName turns a test name into a unique MongoDB database name.
func SanitizeDBName(testName string) string {
	sanitized := strings.NewReplacer("/", "_", "\\", "_").Replace(testName)
	if len(sanitized) > 50 {
		sanitized = sanitized[:50]
	}
	return sanitized + "_" + fmt.Sprintf("%d", time.Now().UnixNano()%1000000)
}
