package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/portfolio-service/internal/domain/model"
	"github.com/guttosm/portfolio-service/internal/service"
)

// Audit action types.
const (
	ActionPutContent       = "put_content"
	ActionPutText          = "put_text"
	ActionDeleteContent    = "delete_content"
	ActionIssueToken       = "issue_token"
	ActionIssueTokenFailed = "issue_token_failed"
)

// AuditTarget identifies the content an audited action touched.
// Fields carries action specific details such as the translation language.
type AuditTarget struct {
	Kind   string
	ID     int64
	Fields map[string]interface{}
}

// AuditLog records a successful admin action. It is a no-op when
// loggingService is nil.
func AuditLog(loggingService service.LoggingService, c *gin.Context, actionType, message string, target AuditTarget) {
	if loggingService == nil {
		return
	}
	entry := auditEntry(c, "info", actionType, message, target)
	enqueue(loggingService, entry)
}

// AuditLogError records a failed admin action.
func AuditLogError(loggingService service.LoggingService, c *gin.Context, actionType, message string, err error, target AuditTarget) {
	if loggingService == nil {
		return
	}
	entry := auditEntry(c, "error", actionType, message, target)
	if err != nil {
		entry.Error = err.Error()
	}
	enqueue(loggingService, entry)
}

func auditEntry(c *gin.Context, level, actionType, message string, target AuditTarget) *model.LogEntry {
	return (&model.LogEntry{
		Timestamp:   time.Now(),
		Level:       level,
		Message:     message,
		RequestID:   GetRequestID(c),
		Method:      c.Request.Method,
		Path:        c.Request.URL.Path,
		IP:          c.ClientIP(),
		UserAgent:   c.Request.UserAgent(),
		Subject:     GetSubject(c),
		ActionType:  actionType,
		ContentKind: target.Kind,
		ContentID:   target.ID,
	}).WithFields(target.Fields)
}
