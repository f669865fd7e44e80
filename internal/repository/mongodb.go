package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	logsCollection = "logs"
	ttlIndexName   = "timestamp_1"
)

// MongoConfig holds the audit store connection settings.
type MongoConfig struct {
	URI      string
	Database string
	// MaxPoolSize caps concurrent connections. The async writer needs few.
	MaxPoolSize    uint64
	ConnectTimeout time.Duration
	// Compression enables zstd, snappy and zlib wire compression.
	Compression bool
}

// DefaultMongoConfig returns settings for a low volume audit sink.
func DefaultMongoConfig(uri, database string) MongoConfig {
	return MongoConfig{
		URI:            uri,
		Database:       database,
		MaxPoolSize:    10,
		ConnectTimeout: 5 * time.Second,
		Compression:    true,
	}
}

func (c MongoConfig) clientOptions() *options.ClientOptions {
	opts := options.Client().
		ApplyURI(c.URI).
		SetMaxPoolSize(c.MaxPoolSize).
		SetConnectTimeout(c.ConnectTimeout).
		SetServerSelectionTimeout(c.ConnectTimeout).
		SetRetryWrites(true)
	if c.Compression {
		opts.SetCompressors([]string{"zstd", "snappy", "zlib"})
	}
	return opts
}

// MongoDB is the audit log store.
type MongoDB struct {
	Client *mongo.Client
	Logs   *mongo.Collection
}

// NewMongoDB connects, pings and makes sure the lookup indexes of the logs
// collection exist. The connection is closed again on any failure.
func NewMongoDB(ctx context.Context, cfg MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, cfg.clientOptions())
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	m := &MongoDB{
		Client: client,
		Logs:   client.Database(cfg.Database).Collection(logsCollection),
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	if err := m.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongodb indexes: %w", err)
	}
	return m, nil
}

// ensureIndexes backs the audit queries: by request, by action and by the
// content an action touched. The TTL index is owned by SetLogsTTL.
func (m *MongoDB) ensureIndexes(ctx context.Context) error {
	_, err := m.Logs.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "request.id", Value: 1}}},
		{Keys: bson.D{{Key: "action.type", Value: 1}, {Key: "timestamp", Value: -1}}},
		{Keys: bson.D{
			{Key: "action.content_kind", Value: 1},
			{Key: "action.content_id", Value: 1},
			{Key: "timestamp", Value: -1},
		}},
	})
	return err
}

// SetLogsTTL makes log entries expire ttl after their timestamp. An existing
// TTL index is replaced, so changing MONGODB_LOGS_TTL takes effect on restart.
func (m *MongoDB) SetLogsTTL(ctx context.Context, ttl time.Duration) error {
	_, err := m.Logs.Indexes().DropOne(ctx, ttlIndexName)
	var cmdErr mongo.CommandError
	if err != nil && !(errors.As(err, &cmdErr) && cmdErr.Name == "IndexNotFound") {
		return fmt.Errorf("drop ttl index: %w", err)
	}

	_, err = m.Logs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "timestamp", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(int32(ttl / time.Second)),
	})
	if err != nil {
		return fmt.Errorf("create ttl index: %w", err)
	}
	return nil
}

// HealthCheck pings the primary.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}

// Close disconnects the client.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
