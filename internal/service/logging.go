package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/portfolio-service/internal/domain/model"
	"github.com/guttosm/portfolio-service/internal/repository"
)

// LoggingService writes request and audit entries to the audit store and
// reads them back for the admin.
type LoggingService interface {
	// CreateLog stores a single entry. Missing ID and Timestamp are filled in.
	CreateLog(ctx context.Context, entry *model.LogEntry) error

	// CreateLogs stores entries in one batch.
	CreateLogs(ctx context.Context, entries []*model.LogEntry) error

	// QueryLogs returns matching entries, newest first.
	QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error)

	// CountLogs counts matching entries ignoring Limit and Skip.
	CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error)
}

// LoggingServiceImpl implements LoggingService over a logs repository.
type LoggingServiceImpl struct {
	repo repository.LogsRepositoryInterface
	now  func() time.Time
}

// NewLoggingService creates a LoggingService backed by repo.
func NewLoggingService(repo repository.LogsRepositoryInterface) LoggingService {
	return &LoggingServiceImpl{repo: repo, now: time.Now}
}

func (s *LoggingServiceImpl) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	return s.repo.Create(ctx, s.toDocument(entry))
}

func (s *LoggingServiceImpl) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}
	docs := make([]*repository.LogDocument, len(entries))
	for i, entry := range entries {
		docs[i] = s.toDocument(entry)
	}
	return s.repo.CreateMany(ctx, docs)
}

func (s *LoggingServiceImpl) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	docs, err := s.repo.Query(ctx, repository.LogQueryOptions(opts))
	if err != nil {
		return nil, err
	}
	entries := make([]model.LogEntry, len(docs))
	for i, doc := range docs {
		entries[i] = fromDocument(doc)
	}
	return entries, nil
}

func (s *LoggingServiceImpl) CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	return s.repo.Count(ctx, repository.LogQueryOptions(opts))
}

// toDocument stamps entry with an ID and a UTC timestamp when they are
// missing and splits it into request and action parts.
func (s *LoggingServiceImpl) toDocument(entry *model.LogEntry) *repository.LogDocument {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.now().UTC()
	}

	doc := &repository.LogDocument{
		ID:        entry.ID,
		Timestamp: entry.Timestamp,
		Level:     entry.Level,
		Message:   entry.Message,
		Error:     entry.Error,
		Fields:    entry.Fields,
	}
	if entry.RequestID != "" || entry.Method != "" || entry.Path != "" {
		doc.Request = &repository.RequestInfo{
			ID:         entry.RequestID,
			Method:     entry.Method,
			Path:       entry.Path,
			StatusCode: entry.StatusCode,
			DurationMS: entry.Duration,
			IP:         entry.IP,
			UserAgent:  entry.UserAgent,
		}
	}
	if entry.ActionType != "" {
		doc.Action = &repository.ActionInfo{
			Type:        entry.ActionType,
			Subject:     entry.Subject,
			ContentKind: entry.ContentKind,
			ContentID:   entry.ContentID,
		}
	}
	return doc
}

func fromDocument(doc *repository.LogDocument) model.LogEntry {
	entry := model.LogEntry{
		ID:        doc.ID,
		Timestamp: doc.Timestamp,
		Level:     doc.Level,
		Message:   doc.Message,
		Error:     doc.Error,
		Fields:    doc.Fields,
	}
	if r := doc.Request; r != nil {
		entry.RequestID = r.ID
		entry.Method = r.Method
		entry.Path = r.Path
		entry.StatusCode = r.StatusCode
		entry.Duration = r.DurationMS
		entry.IP = r.IP
		entry.UserAgent = r.UserAgent
	}
	if a := doc.Action; a != nil {
		entry.ActionType = a.Type
		entry.Subject = a.Subject
		entry.ContentKind = a.ContentKind
		entry.ContentID = a.ContentID
	}
	return entry
}
