package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/beka-birhanu/vinom-paradox/api/i"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	mu     sync.Mutex
	infos  []string
	errors []string
}

func (l *recordingLogger) Info(m string)  { l.mu.Lock(); l.infos = append(l.infos, m); l.mu.Unlock() }
func (l *recordingLogger) Warning(string) {}
func (l *recordingLogger) Error(m string) { l.mu.Lock(); l.errors = append(l.errors, m); l.mu.Unlock() }

type pingController struct{}

func (pingController) Register(route *gin.RouterGroup) {
	route.GET("/ping", func(ctx *gin.Context) { ctx.String(http.StatusOK, "pong") })
	route.GET("/panic", func(*gin.Context) { panic("boom") })
}

func TestRouterHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := &recordingLogger{}
	h := NewRouter(Config{
		BaseURL:     "/api",
		Controllers: []i.Controller{pingController{}},
		Logger:      logger,
	}).Handler()

	t.Run("Routes under the versioned base", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "pong", w.Body.String())
		require.Len(t, logger.infos, 1)
		assert.True(t, strings.HasPrefix(logger.infos[0], "GET /api/v1/ping 200 "), logger.infos[0])
	})

	t.Run("Unknown route", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Panics are recovered and logged", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/panic", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Len(t, logger.errors, 1)
	})
}
