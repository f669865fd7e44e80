package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/portfolio-service/internal/middleware"
	"github.com/guttosm/portfolio-service/internal/service"
)

// PublicRouteGroup defines routes that don't require authentication.
type PublicRouteGroup interface {
	// RegisterPublicRoutes registers public routes to the given router group.
	RegisterPublicRoutes(rg *gin.RouterGroup)
}

// ProtectedRouteGroup defines routes that require a bearer token.
type ProtectedRouteGroup interface {
	// RegisterProtectedRoutes registers protected routes to the given router group.
	RegisterProtectedRoutes(rg *gin.RouterGroup)
}

// ContentRoutes registers the content CRUD endpoints.
type ContentRoutes struct {
	handler *ContentHandler
}

// NewContentRoutes creates a new ContentRoutes instance.
func NewContentRoutes(contents service.ContentService, loggingService service.LoggingService) *ContentRoutes {
	return &ContentRoutes{handler: NewContentHandler(contents, loggingService)}
}

// RegisterPublicRoutes registers the read endpoints.
func (r *ContentRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/get/", r.handler.Get)
	rg.GET("/get-all/", r.handler.GetAll)
}

// RegisterProtectedRoutes registers the write endpoints.
func (r *ContentRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.PUT("/put/", r.handler.Put)
	rg.PUT("/put-text/", r.handler.PutText)
	rg.DELETE("/delete/", r.handler.Delete)
}

// AuthRoutes registers the token endpoint behind its own rate limiter.
type AuthRoutes struct {
	handler *AuthHandler
	limiter *middleware.RateLimiter
}

// NewAuthRoutes creates a new AuthRoutes instance. limiter may be nil.
func NewAuthRoutes(authService service.AuthService, loggingService service.LoggingService, limiter *middleware.RateLimiter) *AuthRoutes {
	return &AuthRoutes{
		handler: NewAuthHandler(authService, loggingService),
		limiter: limiter,
	}
}

// RegisterPublicRoutes registers POST /get-token/.
func (r *AuthRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	if r.limiter != nil {
		rg.POST("/get-token/", r.limiter.RateLimit(), r.handler.GetToken)
		return
	}
	rg.POST("/get-token/", r.handler.GetToken)
}

// PageRoutes registers the HTML pages.
type PageRoutes struct {
	handler *PageHandler
}

// NewPageRoutes creates a new PageRoutes instance.
func NewPageRoutes(contents service.ContentService) *PageRoutes {
	return &PageRoutes{handler: NewPageHandler(contents)}
}

// RegisterPublicRoutes registers /, /index and /main.
func (r *PageRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/", r.handler.Index)
	rg.GET("/index", r.handler.Index)
	rg.GET("/main", r.handler.Main)
}

// AuditRoutes registers the admin audit trail endpoint.
type AuditRoutes struct {
	handler *AuditHandler
}

// NewAuditRoutes creates a new AuditRoutes instance.
func NewAuditRoutes(logs service.LoggingService) *AuditRoutes {
	return &AuditRoutes{handler: NewAuditHandler(logs)}
}

// RegisterProtectedRoutes registers GET /audit-logs/.
func (r *AuditRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/audit-logs/", r.handler.List)
}
