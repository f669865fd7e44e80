package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LogEntry is a request or audit record of the audit store. Context
// specific data goes into Fields.
type LogEntry struct {
	ID         primitive.ObjectID `json:"id"`
	Timestamp  time.Time          `json:"timestamp"`
	Level      string             `json:"level"`
	Message    string             `json:"message"`
	RequestID  string             `json:"request_id,omitempty"`
	Method     string             `json:"method,omitempty"`
	Path       string             `json:"path,omitempty"`
	StatusCode int                `json:"status_code,omitempty"`
	Duration   int64              `json:"duration_ms,omitempty"`
	IP         string             `json:"ip,omitempty"`
	UserAgent  string             `json:"user_agent,omitempty"`
	Error      string             `json:"error,omitempty"`
	// Audit fields
	Subject     string                 `json:"subject,omitempty"`
	ActionType  string                 `json:"action_type,omitempty"` // e.g. "put_content", "delete_content", "issue_token"
	ContentKind string                 `json:"content_kind,omitempty"`
	ContentID   int64                  `json:"content_id,omitempty"`
	Fields      map[string]interface{} `json:"fields,omitempty"`
}

// WithFields merges fields into Fields, overwriting existing keys.
// Fields stays nil when there is nothing to add.
func (e *LogEntry) WithFields(fields map[string]interface{}) *LogEntry {
	if len(fields) == 0 {
		return e
	}
	if e.Fields == nil {
		e.Fields = make(map[string]interface{}, len(fields))
	}
	for k, v := range fields {
		e.Fields[k] = v
	}
	return e
}

// LogQueryOptions provides options for querying logs.
type LogQueryOptions struct {
	RequestID  string
	ActionType string
	// ContentKind matches the Kind of the entity an action touched.
	ContentKind string
	Level       string
	Method      string
	Path        string
	StartTime   *time.Time
	EndTime     *time.Time
	Limit       int
	Skip        int
}
