package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Nascian/socialnetwork-backend/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorMiddleware())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	r.GET("/not-found", func(c *gin.Context) { _ = c.Error(errs.NotFound("Post not found")) })
	r.GET("/raw", func(c *gin.Context) { _ = c.Error(errors.New("db is down")) })
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestErrorMiddleware(t *testing.T) {
	r := newRouter()

	w := get(r, "/panic")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal Server Error", gjson.Get(w.Body.String(), "message").String())

	w = get(r, "/not-found")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Post not found", gjson.Get(w.Body.String(), "message").String())

	// causes of internal errors stay in the logs
	w = get(r, "/raw")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal Server Error", gjson.Get(w.Body.String(), "message").String())
}
