package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompression(t *testing.T) {
	sections := strings.Repeat(`{"Experience":[],"SoftSkill":[]}`, 100)

	tests := []struct {
		name     string
		path     string
		accept   string
		wantGzip bool
	}{
		{name: "sections gzipped", path: "/get-all/", accept: "gzip, deflate", wantGzip: true},
		{name: "client without gzip", path: "/get-all/"},
		{name: "metrics scrape untouched", path: "/metrics", accept: "gzip"},
		{name: "swagger untouched", path: "/swagger/doc.json", accept: "gzip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(Compression())
			router.GET(tt.path, func(c *gin.Context) {
				c.String(http.StatusOK, sections)
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.accept != "" {
				req.Header.Set("Accept-Encoding", tt.accept)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			body := w.Body.Bytes()
			if tt.wantGzip {
				assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
				zr, err := gzip.NewReader(w.Body)
				require.NoError(t, err)
				body, err = io.ReadAll(zr)
				require.NoError(t, err)
			} else {
				assert.Empty(t, w.Header().Get("Content-Encoding"))
			}
			assert.Equal(t, sections, string(body))
		})
	}
}
