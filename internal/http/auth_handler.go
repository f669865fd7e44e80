package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/portfolio-service/internal/i18n"
	"github.com/guttosm/portfolio-service/internal/middleware"
	"github.com/guttosm/portfolio-service/internal/service"
)

// BasicRealm is sent with 401 responses of the token endpoint.
const BasicRealm = `Basic realm="Login required!"`

// AuthHandler provides the token endpoint.
type AuthHandler struct {
	authService    service.AuthService
	loggingService service.LoggingService
}

// NewAuthHandler creates a new authentication handler. loggingService may be nil.
func NewAuthHandler(authService service.AuthService, loggingService service.LoggingService) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		loggingService: loggingService,
	}
}

// GetToken handles POST /get-token/ requests.
//
// @Summary      Issue admin token
// @Description  Exchanges the admin credential, sent with HTTP Basic auth, for a bearer token.
// @Tags         Auth
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.TokenResponse} "Token issued"
// @Failure      401 {object} dto.ErrorResponse "Could not verify"
// @Failure      429 {object} dto.ErrorResponse "Too many requests"
// @Security     BasicAuth
// @Router       /get-token/ [post]
func (h *AuthHandler) GetToken(c *gin.Context) {
	builder := NewResponseBuilder(c)

	username, password, ok := c.Request.BasicAuth()
	if !ok {
		c.Header("WWW-Authenticate", BasicRealm)
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyInvalidCredentials, nil)
		return
	}

	token, err := h.authService.IssueToken(c.Request.Context(), username, password)
	if err != nil {
		middleware.AuditLogError(h.loggingService, c, middleware.ActionIssueTokenFailed, "Token request rejected", err, middleware.AuditTarget{})
		if status, _ := StatusFor(err); status == http.StatusUnauthorized {
			c.Header("WWW-Authenticate", BasicRealm)
		}
		builder.ErrorFrom(err)
		return
	}

	c.Set(middleware.SubjectKey, service.AdminSubject)
	middleware.AuditLog(h.loggingService, c, middleware.ActionIssueToken, "Token issued", middleware.AuditTarget{})
	builder.SuccessOK(token)
}
