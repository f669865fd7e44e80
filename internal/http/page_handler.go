package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/portfolio-service/internal/i18n"
	"github.com/guttosm/portfolio-service/internal/localization"
	"github.com/guttosm/portfolio-service/internal/service"
)

// Template names registered on the engine.
const (
	IndexTemplate = "index.html"
	MainTemplate  = "main.html"
	ErrorTemplate = "error.html"
)

// errorPage is the data rendered by ErrorTemplate.
type errorPage struct {
	Status  int
	Message string
}

// PageHandler renders the server side pages.
type PageHandler struct {
	contents service.ContentService
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(contents service.ContentService) *PageHandler {
	return &PageHandler{contents: contents}
}

// Index renders the landing page.
func (h *PageHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, IndexTemplate, nil)
}

// Main renders the portfolio localized to the language query parameter,
// or to the Accept-Language header when the parameter is absent.
func (h *PageHandler) Main(c *gin.Context) {
	lang, err := pageLanguage(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	page, err := h.contents.Page(c.Request.Context(), lang)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.Header("Content-Language", page.Language.Tag().String())
	c.HTML(http.StatusOK, MainTemplate, page)
}

func pageLanguage(c *gin.Context) (localization.Language, error) {
	if q := strings.TrimSpace(c.Query("language")); q != "" {
		return localization.ParseLanguage(q)
	}
	return localization.MatchLanguage(c.GetHeader(i18n.AcceptLanguageHeader)), nil
}

func (h *PageHandler) renderError(c *gin.Context, err error) {
	status, key := StatusFor(err)
	_ = c.Error(err)
	c.HTML(status, ErrorTemplate, errorPage{
		Status:  status,
		Message: i18n.GetTranslator().Translate(key, i18n.GetLocale(c)),
	})
	c.Abort()
}
