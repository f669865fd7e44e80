package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/portfolio-service/internal/domain/dto"
	"github.com/guttosm/portfolio-service/internal/i18n"
	"github.com/guttosm/portfolio-service/internal/logger"
	"github.com/guttosm/portfolio-service/internal/service"
)

// SubjectKey is the gin context key holding the authenticated subject.
const SubjectKey = "subject"

const bearerScheme = "bearer"

// JWTAuth admits requests carrying a bearer token accepted by authService
// and aborts everything else with a localized 401.
func JWTAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, missingKey := bearerToken(c.GetHeader("Authorization"))
		if missingKey != "" {
			abortUnauthorized(c, missingKey)
			return
		}

		claims, err := authService.ValidateToken(c.Request.Context(), token)
		if err != nil {
			logger.FromContext(c.Request.Context()).Debug().Err(err).Msg("Bearer token rejected")
			abortUnauthorized(c, i18n.ErrKeyInvalidToken)
			return
		}

		c.Set(SubjectKey, claims.Subject)
		c.Next()
	}
}

// bearerToken extracts the token of an "Authorization: Bearer" header. On
// failure it returns the i18n key describing what is wrong instead.
func bearerToken(header string) (token, errKey string) {
	if header == "" {
		return "", i18n.ErrKeyTokenRequired
	}
	scheme, rest, _ := strings.Cut(header, " ")
	if !strings.EqualFold(scheme, bearerScheme) {
		return "", i18n.ErrKeyInvalidToken
	}
	if token = strings.TrimSpace(rest); token == "" {
		return "", i18n.ErrKeyTokenRequired
	}
	return token, ""
}

// GetSubject returns the authenticated subject, or "" for anonymous requests.
func GetSubject(c *gin.Context) string {
	return c.GetString(SubjectKey)
}

func abortUnauthorized(c *gin.Context, key string) {
	message := i18n.GetTranslator().Translate(key, i18n.GetLocale(c))
	c.Header("WWW-Authenticate", `Bearer realm="portfolio"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewError(dto.ErrCodeUnauthorized, message, GetRequestID(c)))
}
