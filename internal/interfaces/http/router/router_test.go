package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type pingRegistrar struct {
	path string
}

func (p pingRegistrar) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET(p.path, func(c *gin.Context) {
		c.String(http.StatusOK, c.FullPath())
	})
}

func TestRouter_Setup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		opts     []RouterOption
		wantBase string
	}{
		{"default version", nil, "/api/v1"},
		{"custom version", []RouterOption{WithAPIVersion("v2")}, "/api/v2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := gin.New()
			api := NewRouter(engine, tt.opts...).
				Register(pingRegistrar{path: "/reports"}).
				Register(pingRegistrar{path: "/welcome"}).
				Setup()
			assert.Equal(t, tt.wantBase, api.BasePath())

			for _, path := range []string{tt.wantBase + "/reports", tt.wantBase + "/welcome"} {
				w := httptest.NewRecorder()
				engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
				assert.Equal(t, http.StatusOK, w.Code)
				assert.Equal(t, path, w.Body.String())
			}
		})
	}
}

func TestRouter_UnregisteredPath(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewRouter(engine).Register(pingRegistrar{path: "/reports"}).Setup()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
