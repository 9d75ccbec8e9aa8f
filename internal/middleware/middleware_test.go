package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequestID_MintsWhenMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())

	var stored any
	r.GET("/", func(c *gin.Context) {
		stored, _ = c.Get(requestIDKey)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	r.ServeHTTP(w, req)

	id := w.Header().Get(requestIDHeader)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, stored, "context id and response header must match")
}

func TestRequestID_KeepsCallerID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	req.Header.Set(requestIDHeader, "caller-supplied")
	r.ServeHTTP(w, req)

	assert.Equal(t, "caller-supplied", w.Header().Get(requestIDHeader))
}
