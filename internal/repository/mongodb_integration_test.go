//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logsIndexes(t *testing.T, db *MongoDB) map[string]*int32 {
	t.Helper()
	specs, err := db.Logs.Indexes().ListSpecifications(context.Background())
	require.NoError(t, err)

	byName := make(map[string]*int32, len(specs))
	for _, idx := range specs {
		byName[idx.Name] = idx.ExpireAfterSeconds
	}
	return byName
}

func TestMongoDB_AuditStore_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)

	t.Run("creates audit lookup indexes", func(t *testing.T) {
		indexes := logsIndexes(t, db)
		assert.Contains(t, indexes, "request.id_1")
		assert.Contains(t, indexes, "action.type_1_timestamp_-1")
		assert.Contains(t, indexes, "action.content_kind_1_action.content_id_1_timestamp_-1")
		assert.NotContains(t, indexes, "timestamp_1")
	})

	t.Run("retention follows the latest ttl", func(t *testing.T) {
		require.NoError(t, db.SetLogsTTL(ctx, 90*24*time.Hour))
		require.NoError(t, db.SetLogsTTL(ctx, 14*24*time.Hour))

		ttl := logsIndexes(t, db)["timestamp_1"]
		require.NotNil(t, ttl)
		assert.Equal(t, int32(14*24*60*60), *ttl)
	})

	t.Run("health check fails once closed", func(t *testing.T) {
		require.NoError(t, db.HealthCheck(ctx))
		require.NoError(t, db.Close(ctx))

		assert.Error(t, db.HealthCheck(ctx))
	})
}

func TestNewMongoDB_Unreachable_Integration(t *testing.T) {
	cfg := DefaultMongoConfig("mongodb://127.0.0.1:1", "audit")
	cfg.ConnectTimeout = 300 * time.Millisecond

	db, err := NewMongoDB(context.Background(), cfg)

	assert.Error(t, err)
	assert.Nil(t, db)
}
