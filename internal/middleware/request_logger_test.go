package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/portfolio-service/internal/domain/model"
	"github.com/guttosm/portfolio-service/internal/mocks"
)

func TestRequestLogger_AuditTrail(t *testing.T) {
	tests := []struct {
		name          string
		path          string
		status        int
		expectedLevel string
		stored        bool
	}{
		{name: "ok request", path: "/get-all/", status: http.StatusOK, expectedLevel: "info", stored: true},
		{name: "client error", path: "/get/", status: http.StatusNotFound, expectedLevel: "warn", stored: true},
		{name: "server error", path: "/get-all/", status: http.StatusServiceUnavailable, expectedLevel: "error", stored: true},
		{name: "readiness check", path: "/readyz", status: http.StatusOK},
		{name: "metrics scrape", path: "/metrics", status: http.StatusOK},
		{name: "static asset", path: "/static/css/main.css", status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			StopAsyncLogger()
			entries := make(chan *model.LogEntry, 1)
			svc := new(mocks.MockLoggingService)
			svc.On("CreateLog", mock.Anything, mock.Anything).
				Run(func(args mock.Arguments) {
					entries <- args.Get(1).(*model.LogEntry)
				}).
				Return(nil).Maybe()

			router := gin.New()
			router.Use(RequestID(), RequestLogger(svc))
			router.GET(tt.path, func(c *gin.Context) {
				c.Status(tt.status)
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set(RequestIDHeader, "logger-req")
			router.ServeHTTP(httptest.NewRecorder(), req)

			if !tt.stored {
				select {
				case entry := <-entries:
					t.Fatalf("unexpected audit entry for %s", entry.Path)
				case <-time.After(50 * time.Millisecond):
				}
				return
			}

			select {
			case entry := <-entries:
				assert.Equal(t, tt.status, entry.StatusCode)
				assert.Equal(t, tt.expectedLevel, entry.Level)
				assert.Equal(t, "logger-req", entry.RequestID)
				assert.Equal(t, tt.path, entry.Path)
				assert.Empty(t, entry.Subject)
			case <-time.After(time.Second):
				t.Fatal("request entry was not written")
			}
		})
	}
}

func TestRequestLogger_WithoutAuditStore(t *testing.T) {
	router := gin.New()
	router.Use(RequestID(), RequestLogger(nil))
	router.GET("/", func(c *gin.Context) {
		c.Status(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
}

func TestStatusLevel(t *testing.T) {
	tests := []struct {
		status   int
		expected zerolog.Level
	}{
		{http.StatusOK, zerolog.InfoLevel},
		{http.StatusFound, zerolog.InfoLevel},
		{http.StatusBadRequest, zerolog.WarnLevel},
		{http.StatusTooManyRequests, zerolog.WarnLevel},
		{http.StatusInternalServerError, zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expected, statusLevel(tt.status))
		})
	}
}
