package errors

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/iterate", nil)

	return c, w
}

func TestNotConfigured(t *testing.T) {
	c, w := setupContext()

	NotConfigured(c, "ANTHROPIC_API_KEY environment variable is required")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), CodeNotConfigured)
	assert.Contains(t, w.Body.String(), "ANTHROPIC_API_KEY")
}

func TestInternalError(t *testing.T) {
	c, w := setupContext()

	InternalError(c, "failed to generate code iteration", fmt.Errorf("boom"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), CodeServerError)
}

// configuration failures must be distinguishable from generic failures
func TestConfigurationErrorDistinctFromServerError(t *testing.T) {
	assert.NotEqual(t, CodeNotConfigured, CodeServerError)

	c1, w1 := setupContext()
	NotConfigured(c1, "")

	c2, w2 := setupContext()
	InternalError(c2, "", fmt.Errorf("boom"))

	assert.NotEqual(t, w1.Code, w2.Code)
	assert.NotContains(t, w1.Body.String(), CodeServerError)
}

func TestValidationError(t *testing.T) {
	c, w := setupContext()

	ValidationError(c, fmt.Errorf("Key: 'Request.Code' Error:Field validation for 'Code' failed on the 'required' tag"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), CodeValidationError)
}

func TestSanitizeError_Development(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")

	assert.Equal(t, "dial tcp: connection refused", sanitizeError(fmt.Errorf("dial tcp: connection refused")))
}

func TestSanitizeError_Production(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	assert.Equal(t, "connection error occurred", sanitizeError(fmt.Errorf("dial tcp: connection refused")))
	assert.Equal(t, "request timed out", sanitizeError(fmt.Errorf("context deadline exceeded: timeout")))
	assert.Equal(t, "an error occurred", sanitizeError(fmt.Errorf("something odd")))
}
