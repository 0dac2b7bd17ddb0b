package httpmiddleware

import (
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/gin-gonic/gin"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func newRequestIDRouter(captured *string) *gin.Engine {
    gin.SetMode(gin.TestMode)
    r := gin.New()
    r.Use(RequestID())
    r.GET("/", func(c *gin.Context) {
        *captured = c.GetString(RequestIDKey)
        c.Status(http.StatusNoContent)
    })
    return r
}

func TestRequestIDGenerated(t *testing.T) {
    var got string
    r := newRequestIDRouter(&got)

    w := httptest.NewRecorder()
    r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

    require.NotEmpty(t, got, "handlers must see the id in the context")
    assert.Equal(t, got, w.Header().Get(RequestIDHeader))
}

func TestRequestIDHonorsClientValue(t *testing.T) {
    var got string
    r := newRequestIDRouter(&got)

    req := httptest.NewRequest(http.MethodGet, "/", nil)
    req.Header.Set(RequestIDHeader, "abc-123")
    w := httptest.NewRecorder()
    r.ServeHTTP(w, req)

    assert.Equal(t, "abc-123", got)
    assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}
