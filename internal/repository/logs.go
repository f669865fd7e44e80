package repository

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LogDocument is one entry of the logs collection. Request is set for
// entries written per HTTP request. Action is set for audited admin actions
// and token requests.
type LogDocument struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty"`
	Timestamp time.Time              `bson:"timestamp"`
	Level     string                 `bson:"level"`
	Message   string                 `bson:"message"`
	Error     string                 `bson:"error,omitempty"`
	Request   *RequestInfo           `bson:"request,omitempty"`
	Action    *ActionInfo            `bson:"action,omitempty"`
	Fields    map[string]interface{} `bson:"fields,omitempty"`
}

// RequestInfo describes the HTTP request an entry belongs to.
type RequestInfo struct {
	ID         string `bson:"id,omitempty"`
	Method     string `bson:"method,omitempty"`
	Path       string `bson:"path,omitempty"`
	StatusCode int    `bson:"status_code,omitempty"`
	DurationMS int64  `bson:"duration_ms,omitempty"`
	IP         string `bson:"ip,omitempty"`
	UserAgent  string `bson:"user_agent,omitempty"`
}

// ActionInfo describes what an audited action did and to which entity.
type ActionInfo struct {
	Type        string `bson:"type"`
	Subject     string `bson:"subject,omitempty"`
	ContentKind string `bson:"content_kind,omitempty"`
	ContentID   int64  `bson:"content_id,omitempty"`
}

// LogsRepository reads and writes the logs collection.
type LogsRepository struct {
	collection *mongo.Collection
}

// NewLogsRepository creates a LogsRepository over db.Logs.
func NewLogsRepository(db *MongoDB) *LogsRepository {
	return &LogsRepository{collection: db.Logs}
}

// Create inserts doc. A zero ID is filled in by the driver.
func (r *LogsRepository) Create(ctx context.Context, doc *LogDocument) error {
	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = id
	}
	return nil
}

// CreateMany inserts docs in one unordered batch.
func (r *LogsRepository) CreateMany(ctx context.Context, docs []*LogDocument) error {
	if len(docs) == 0 {
		return nil
	}
	batch := make([]interface{}, len(docs))
	for i, doc := range docs {
		batch[i] = doc
	}
	_, err := r.collection.InsertMany(ctx, batch, options.InsertMany().SetOrdered(false))
	return err
}

// LogQueryOptions filters the logs collection. Zero fields match anything.
type LogQueryOptions struct {
	RequestID   string
	ActionType  string
	ContentKind string
	Level       string
	Method      string
	// Path matches case insensitively anywhere in the request path.
	Path      string
	StartTime *time.Time
	EndTime   *time.Time
	Limit     int
	Skip      int
}

func (opts LogQueryOptions) filter() bson.M {
	filter := bson.M{}
	set := func(field, value string) {
		if value != "" {
			filter[field] = value
		}
	}
	set("request.id", opts.RequestID)
	set("request.method", opts.Method)
	set("action.type", opts.ActionType)
	set("action.content_kind", opts.ContentKind)
	set("level", opts.Level)

	if opts.Path != "" {
		filter["request.path"] = bson.M{"$regex": regexp.QuoteMeta(opts.Path), "$options": "i"}
	}

	window := bson.M{}
	if opts.StartTime != nil {
		window["$gte"] = *opts.StartTime
	}
	if opts.EndTime != nil {
		window["$lte"] = *opts.EndTime
	}
	if len(window) > 0 {
		filter["timestamp"] = window
	}
	return filter
}

// Query returns matching entries, newest first.
func (r *LogsRepository) Query(ctx context.Context, opts LogQueryOptions) ([]*LogDocument, error) {
	find := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}})
	if opts.Limit > 0 {
		find.SetLimit(int64(opts.Limit))
	}
	if opts.Skip > 0 {
		find.SetSkip(int64(opts.Skip))
	}

	cursor, err := r.collection.Find(ctx, opts.filter(), find)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []*LogDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Count returns the number of entries matching opts. Limit and Skip are ignored.
func (r *LogsRepository) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	return r.collection.CountDocuments(ctx, opts.filter())
}
