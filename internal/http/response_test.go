package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/portfolio-service/internal/circuitbreaker"
	"github.com/guttosm/portfolio-service/internal/domain/dto"
	"github.com/guttosm/portfolio-service/internal/domain/model"
	"github.com/guttosm/portfolio-service/internal/i18n"
	"github.com/guttosm/portfolio-service/internal/localization"
	"github.com/guttosm/portfolio-service/internal/middleware"
	"github.com/guttosm/portfolio-service/internal/repository"
	"github.com/guttosm/portfolio-service/internal/service"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedKey    string
	}{
		{"validation", dto.RequiredField("id"), http.StatusBadRequest, i18n.ErrKeyInvalidRequest},
		{"wrapped validation", fmt.Errorf("put: %w", dto.RequiredField("id")), http.StatusBadRequest, i18n.ErrKeyInvalidRequest},
		{"unknown kind", model.ErrUnknownKind, http.StatusBadRequest, i18n.ErrKeyUnknownContent},
		{"unsupported language", fmt.Errorf("%w: %q", localization.ErrUnsupportedLanguage, "de"), http.StatusBadRequest, i18n.ErrKeyUnsupportedLanguage},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, i18n.ErrKeyInvalidCredentials},
		{"invalid token", service.ErrInvalidToken, http.StatusUnauthorized, i18n.ErrKeyInvalidToken},
		{"not found", fmt.Errorf("get Experience 1: %w", repository.ErrNotFound), http.StatusNotFound, i18n.ErrKeyNotFound},
		{"translation missing", &localization.TranslationMissingError{Kind: model.KindTechnology, ID: 1, Language: localization.Polish}, http.StatusNotFound, i18n.ErrKeyTranslationMissing},
		{"conflict", repository.ErrConflict, http.StatusConflict, i18n.ErrKeyConflict},
		{"circuit open", circuitbreaker.ErrCircuitOpen, http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable},
		{"anything else", errors.New("boom"), http.StatusInternalServerError, i18n.ErrKeyInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, key := StatusFor(tt.err)

			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedKey, key)
		})
	}
}

func newBuilderContext(req *http.Request) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	middleware.RequestID()(c)
	return c, w
}

func TestResponseBuilder_Success(t *testing.T) {
	c, w := newBuilderContext(httptest.NewRequest(http.MethodGet, "/get/", nil))

	NewResponseBuilder(c).SuccessOK(dto.MessageResponse{Message: "done"})

	var resp struct {
		Data      dto.MessageResponse `json:"data"`
		RequestID string              `json:"request_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "done", resp.Data.Message)
	assert.NotEmpty(t, resp.RequestID)
}

func TestResponseBuilder_ErrorFrom(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/put/", nil)
	req.Header.Set("Accept-Language", "pl")
	c, w := newBuilderContext(req)

	NewResponseBuilder(c).ErrorFrom(fmt.Errorf("put: %w", dto.NewValidationError("starting_date", "must be MM-YYYY")))

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
	assert.Equal(t, "Nieprawidłowe żądanie", resp.Message)
	assert.Equal(t, map[string]string{"starting_date": "must be MM-YYYY"}, resp.Details)
	assert.True(t, c.IsAborted())
	assert.Len(t, c.Errors, 1)
}

func TestResponseBuilder_Error(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantErrors  int
		wantMessage string
	}{
		{name: "bind error is attached", err: errors.New("id: required"), wantErrors: 1, wantMessage: "Invalid request"},
		{name: "no error to attach", wantMessage: "Invalid request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newBuilderContext(httptest.NewRequest(http.MethodGet, "/get/", nil))

			NewResponseBuilder(c).Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, tt.err)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.wantMessage, resp.Message)
			assert.Equal(t, middleware.GetRequestID(c), resp.RequestID)
			assert.Len(t, c.Errors, tt.wantErrors)
		})
	}
}
