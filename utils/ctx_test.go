package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestContext() *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	return c
}

func TestCurrentUserID(t *testing.T) {
	c := newTestContext()
	assert.Zero(t, CurrentUserID(c), "unauthenticated request has no user id")

	c.Set("userId", uint(7))
	assert.Equal(t, uint(7), CurrentUserID(c))
}

func TestCurrentRole(t *testing.T) {
	c := newTestContext()
	assert.Empty(t, CurrentRole(c))

	c.Set("role", "owner")
	assert.Equal(t, "owner", CurrentRole(c))
}
