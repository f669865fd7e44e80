package dto

import "github.com/guttosm/portfolio-service/internal/domain/model"

// Audit log page size bounds.
const (
	DefaultAuditLimit = 50
	MaxAuditLimit     = 200
)

// AuditLogQuery filters the audit trail. Empty fields match everything.
//
// @Description Audit trail filter
type AuditLogQuery struct {
	RequestID   string `form:"request_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	ActionType  string `form:"action_type" example:"put_text"`
	ContentKind string `form:"content_kind" example:"Experience"`
	Level       string `form:"level" example:"error"`
	Limit       int    `form:"limit" example:"50"`
	Skip        int    `form:"skip" example:"0"`
} // @name AuditLogQuery

// Options validates the paging fields and converts q to query options.
// A zero limit selects DefaultAuditLimit.
func (q *AuditLogQuery) Options() (model.LogQueryOptions, error) {
	limit := q.Limit
	switch {
	case limit == 0:
		limit = DefaultAuditLimit
	case limit < 0 || limit > MaxAuditLimit:
		return model.LogQueryOptions{}, NewValidationError("limit", "must be between 1 and %d", MaxAuditLimit)
	}
	if q.Skip < 0 {
		return model.LogQueryOptions{}, NewValidationError("skip", "must not be negative")
	}

	return model.LogQueryOptions{
		RequestID:   q.RequestID,
		ActionType:  q.ActionType,
		ContentKind: q.ContentKind,
		Level:       q.Level,
		Limit:       limit,
		Skip:        q.Skip,
	}, nil
}

// AuditLogPage is one page of audit entries, newest first.
//
// @Description Page of audit entries
type AuditLogPage struct {
	Items []model.LogEntry `json:"items"`
	Total int64            `json:"total" example:"120"`
	Limit int              `json:"limit" example:"50"`
	Skip  int              `json:"skip" example:"0"`
} // @name AuditLogPage
