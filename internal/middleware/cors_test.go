package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	site := []string{"https://cv.example.com"}

	tests := []struct {
		name            string
		origins         []string
		method          string
		origin          string
		expectedStatus  int
		expectedOrigin  string
		wantCredentials bool
	}{
		{
			name:            "configured origin",
			origins:         site,
			method:          http.MethodGet,
			origin:          "https://cv.example.com",
			expectedStatus:  http.StatusOK,
			expectedOrigin:  "https://cv.example.com",
			wantCredentials: true,
		},
		{
			name:            "preflight for admin write",
			origins:         site,
			method:          http.MethodOptions,
			origin:          "https://cv.example.com",
			expectedStatus:  http.StatusNoContent,
			expectedOrigin:  "https://cv.example.com",
			wantCredentials: true,
		},
		{
			name:           "unknown origin is rejected",
			origins:        site,
			method:         http.MethodGet,
			origin:         "https://evil.example",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "same origin request",
			origins:        site,
			method:         http.MethodGet,
			expectedStatus: http.StatusOK,
		},
		{
			name:            "defaults when unconfigured",
			method:          http.MethodGet,
			origin:          DefaultCORSOrigins[0],
			expectedStatus:  http.StatusOK,
			expectedOrigin:  DefaultCORSOrigins[0],
			wantCredentials: true,
		},
		{
			name:           "wildcard allows any origin",
			origins:        []string{"*"},
			method:         http.MethodGet,
			origin:         "https://anyone.example",
			expectedStatus: http.StatusOK,
			expectedOrigin: "*",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(CORS(tt.origins))
			router.GET("/get-all/", func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, "/get-all/", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.method == http.MethodOptions {
				req.Header.Set("Access-Control-Request-Method", http.MethodPut)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantCredentials, w.Header().Get("Access-Control-Allow-Credentials") == "true")
		})
	}
}
