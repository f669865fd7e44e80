package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRecovery(t *testing.T) {
	tests := []struct {
		name           string
		handler        gin.HandlerFunc
		acceptLanguage string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "passes through normal requests",
			handler:        func(c *gin.Context) { c.String(http.StatusOK, "ok") },
			expectedStatus: http.StatusOK,
			expectedBody:   "ok",
		},
		{
			name:           "recovers from panic",
			handler:        func(*gin.Context) { panic("boom") },
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "An unexpected error occurred",
		},
		{
			name:           "localizes the panic response",
			handler:        func(*gin.Context) { panic("boom") },
			acceptLanguage: "pl",
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "Wystąpił nieoczekiwany błąd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID(), Recovery())
			router.GET("/test", tt.handler)

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.acceptLanguage != "" {
				req.Header.Set("Accept-Language", tt.acceptLanguage)
			}
			w := httptest.NewRecorder()

			assert.NotPanics(t, func() { router.ServeHTTP(w, req) })
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}
