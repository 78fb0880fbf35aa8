package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"report-srv/internal/model"
	"report-srv/pkg/log"
	"report-srv/pkg/scope"
)

func newRouter() (*gin.Engine, *model.Scope) {
	gin.SetMode(gin.TestMode)
	var seen model.Scope

	r := gin.New()
	mw := New(log.NewNop())
	r.Use(Trace(), Recovery(log.NewNop()), mw.AccessLog(true))
	r.GET("/scoped", mw.Scope(), func(c *gin.Context) {
		seen, _ = scope.FromContext(c.Request.Context())
		c.Status(http.StatusNoContent)
	})
	r.GET("/trace", func(c *gin.Context) {
		id, _ := c.Request.Context().Value(log.TraceIDKey{}).(string)
		c.String(http.StatusOK, id)
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return r, &seen
}

func TestScopeMiddleware(t *testing.T) {
	r, seen := newRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/scoped", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/scoped", nil)
	req.Header.Set(scope.HeaderName, "not-base64!")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	header, err := scope.EncodeHeader(model.Scope{UserID: "u1", Role: "staff"})
	require.NoError(t, err)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/scoped", nil)
	req.Header.Set(scope.HeaderName, header)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "u1", seen.UserID)
}

func TestRecovery(t *testing.T) {
	r, _ := newRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEmpty(t, w.Header().Get(TraceHeader))
}

func TestTrace(t *testing.T) {
	r, _ := newRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/trace", nil)
	req.Header.Set(TraceHeader, "abc-123")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Body.String())
	assert.Equal(t, "abc-123", w.Header().Get(TraceHeader))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/trace", nil))
	assert.Len(t, w.Body.String(), 36)
	assert.Equal(t, w.Body.String(), w.Header().Get(TraceHeader))
}
