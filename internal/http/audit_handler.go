package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/portfolio-service/internal/domain/dto"
	"github.com/guttosm/portfolio-service/internal/domain/model"
	"github.com/guttosm/portfolio-service/internal/i18n"
	"github.com/guttosm/portfolio-service/internal/service"
)

// AuditHandler serves the audit trail to the admin.
type AuditHandler struct {
	logs service.LoggingService
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(logs service.LoggingService) *AuditHandler {
	return &AuditHandler{logs: logs}
}

// List handles GET /audit-logs/ requests.
//
// @Summary      List audit entries
// @Description  Returns audit and request log entries, newest first.
// @Tags         Audit
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        request_id query string false "Request id"
// @Param        action_type query string false "Action" Enums(put_content, put_text, delete_content, issue_token, issue_token_failed)
// @Param        content_kind query string false "Entity kind"
// @Param        level query string false "Level" Enums(info, warn, error)
// @Param        limit query int false "Page size (max 200)" default(50)
// @Param        skip query int false "Entries to skip" default(0)
// @Success      200 {object} dto.SuccessResponse{data=dto.AuditLogPage} "Audit entries"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid paging"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      503 {object} dto.ErrorResponse "Audit store unavailable"
// @Security     BearerAuth
// @Router       /audit-logs/ [get]
func (h *AuditHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	query, err := BuildQuery[dto.AuditLogQuery](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}
	opts, err := query.Options()
	if err != nil {
		builder.ErrorFrom(err)
		return
	}

	ctx := c.Request.Context()
	total, err := h.logs.CountLogs(ctx, opts)
	if err != nil {
		builder.ErrorFrom(err)
		return
	}
	items, err := h.logs.QueryLogs(ctx, opts)
	if err != nil {
		builder.ErrorFrom(err)
		return
	}
	if items == nil {
		items = []model.LogEntry{}
	}

	builder.SuccessOK(dto.AuditLogPage{
		Items: items,
		Total: total,
		Limit: opts.Limit,
		Skip:  opts.Skip,
	})
}
