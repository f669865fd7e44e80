package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/portfolio-service/internal/domain/dto"
	"github.com/guttosm/portfolio-service/internal/i18n"
	"github.com/guttosm/portfolio-service/internal/middleware"
	"github.com/guttosm/portfolio-service/internal/service"
)

// ContentHandler provides HTTP handlers for the content routes.
type ContentHandler struct {
	contents       service.ContentService
	loggingService service.LoggingService
}

// NewContentHandler creates a new ContentHandler. loggingService may be nil.
func NewContentHandler(contents service.ContentService, loggingService service.LoggingService) *ContentHandler {
	return &ContentHandler{
		contents:       contents,
		loggingService: loggingService,
	}
}

// Get handles GET /get/ requests.
//
// @Summary      Get content
// @Description  Returns one entity of the given kind with all of its translations.
// @Tags         Content
// @Produce      json
// @Param        content query string true "Entity kind" Enums(SoftSkill, MyProject, Technology, Subtechnology, Experience)
// @Param        id query int true "Entity id"
// @Success      200 {object} dto.SuccessResponse "Entity"
// @Failure      400 {object} dto.ErrorResponse "Bad request - unknown content kind or missing parameter"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      503 {object} dto.ErrorResponse "Content store unavailable"
// @Router       /get/ [get]
func (h *ContentHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	query, err := BuildQuery[dto.ContentQuery](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	content, err := h.contents.Get(c.Request.Context(), query.Content, *query.ID)
	if err != nil {
		builder.ErrorFrom(err)
		return
	}
	builder.SuccessOK(content)
}

// GetAll handles GET /get-all/ requests.
//
// @Summary      Get all content
// @Description  Returns every entity grouped by section label. Keys keep the section order.
// @Tags         Content
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Sections"
// @Failure      503 {object} dto.ErrorResponse "Content store unavailable"
// @Router       /get-all/ [get]
func (h *ContentHandler) GetAll(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sections, err := h.contents.GetAll(c.Request.Context())
	if err != nil {
		builder.ErrorFrom(err)
		return
	}
	builder.SuccessOK(sections)
}

// Put handles PUT /put/ requests.
//
// @Summary      Upsert content
// @Description  Creates or overwrites the entity with the given id. Experience time ranges are computed from starting_date and ending_date (MM-YYYY).
// @Tags         Content
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        content formData string true "Entity kind"
// @Param        id formData int true "Entity id"
// @Param        type_soft formData string false "SoftSkill type" Enums(aboutme, language, soft skill, interest)
// @Param        subtechnologies_used formData string false "MyProject technologies, required for MyProject"
// @Param        image_path formData string false "MyProject image path, required for MyProject"
// @Param        github_link formData string false "MyProject link, required for MyProject"
// @Param        technology_name formData string false "Technology name"
// @Param        subtechnology_name formData string false "Subtechnology name"
// @Param        type_exp formData string false "Experience type" Enums(work, education)
// @Param        location formData string false "Experience location"
// @Param        starting_date formData string false "Experience start (MM-YYYY)"
// @Param        ending_date formData string false "Experience end (MM-YYYY)"
// @Success      200 {object} dto.SuccessResponse "Stored entity"
// @Failure      400 {object} dto.ErrorResponse "Bad request - validation failed"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      409 {object} dto.ErrorResponse "Conflict"
// @Failure      503 {object} dto.ErrorResponse "Content store unavailable"
// @Security     BearerAuth
// @Router       /put/ [put]
func (h *ContentHandler) Put(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildForm[dto.PutContentRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	target := middleware.AuditTarget{Kind: req.Content, ID: *req.ID}
	content, err := h.contents.Put(c.Request.Context(), *req)
	if err != nil {
		middleware.AuditLogError(h.loggingService, c, middleware.ActionPutContent, "Content upsert failed", err, target)
		builder.ErrorFrom(err)
		return
	}

	target.Kind = content.Kind().String()
	middleware.AuditLog(h.loggingService, c, middleware.ActionPutContent, "Content stored", target)
	builder.SuccessOK(content)
}

// PutText handles PUT /put-text/ requests.
//
// @Summary      Upsert translation
// @Description  Creates or overwrites a translation of an existing entity.
// @Tags         Content
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        id formData int true "Translation id"
// @Param        object_id formData int true "Entity id"
// @Param        object_type formData string true "Entity kind"
// @Param        language formData string true "Language" Enums(en, pl)
// @Param        title formData string false "Title"
// @Param        text formData string false "Text"
// @Success      200 {object} dto.SuccessResponse "Stored translation"
// @Failure      400 {object} dto.ErrorResponse "Bad request - validation failed"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      404 {object} dto.ErrorResponse "Referenced entity not found"
// @Failure      409 {object} dto.ErrorResponse "Conflict"
// @Security     BearerAuth
// @Router       /put-text/ [put]
func (h *ContentHandler) PutText(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildForm[dto.PutTextRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	target := middleware.AuditTarget{
		Kind: req.ObjectType,
		ID:   *req.ObjectID,
		Fields: map[string]interface{}{
			"translation_id": *req.ID,
			"language":       req.Language,
		},
	}
	translation, err := h.contents.PutText(c.Request.Context(), *req)
	if err != nil {
		middleware.AuditLogError(h.loggingService, c, middleware.ActionPutText, "Translation upsert failed", err, target)
		builder.ErrorFrom(err)
		return
	}

	target.Kind = translation.ObjectType
	middleware.AuditLog(h.loggingService, c, middleware.ActionPutText, "Translation stored", target)
	builder.SuccessOK(translation)
}

// Delete handles DELETE /delete/ requests.
//
// @Summary      Delete content
// @Description  Deletes the entity and its translations.
// @Tags         Content
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        content query string true "Entity kind"
// @Param        id query int true "Entity id"
// @Success      200 {object} dto.SuccessResponse{data=dto.MessageResponse} "Deleted"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Security     BearerAuth
// @Router       /delete/ [delete]
func (h *ContentHandler) Delete(c *gin.Context) {
	builder := NewResponseBuilder(c)

	query, err := BuildQuery[dto.ContentQuery](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	target := middleware.AuditTarget{Kind: query.Content, ID: *query.ID}
	message, err := h.contents.Delete(c.Request.Context(), query.Content, *query.ID)
	if err != nil {
		middleware.AuditLogError(h.loggingService, c, middleware.ActionDeleteContent, "Content delete failed", err, target)
		builder.ErrorFrom(err)
		return
	}

	middleware.AuditLog(h.loggingService, c, middleware.ActionDeleteContent, message, target)
	builder.SuccessOK(dto.MessageResponse{Message: message})
}
