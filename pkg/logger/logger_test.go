package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	logger := New()
	assert.NotNil(t, logger)
	assert.NotNil(t, logger.info)
	assert.NotNil(t, logger.error)
	assert.NotNil(t, logger.warn)
}

func TestInfo(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewWithWriters(&out, &errOut)

	logger.Info("Test message: %s", "info")

	assert.Contains(t, out.String(), "INFO: ")
	assert.Contains(t, out.String(), "Test message: info")
	assert.Empty(t, errOut.String())
}

func TestErrorAndWarn(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewWithWriters(&out, &errOut)

	logger.Error("Test error: %s", "error")
	logger.Warn("Test warning: %s", "warning")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "ERROR: ")
	assert.Contains(t, errOut.String(), "Test error: error")
	assert.Contains(t, errOut.String(), "WARN: ")
	assert.Contains(t, errOut.String(), "Test warning: warning")
}

func TestLogger_Formatting(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewWithWriters(&out, &errOut)

	logger.Info("User %s logged in with ID %d", "john", 123)
	logger.Info("100%% literal")

	assert.Contains(t, out.String(), "User john logged in with ID 123")
	assert.Contains(t, out.String(), "100% literal")
}

func TestLogger_CallerFile(t *testing.T) {
	var out bytes.Buffer
	logger := NewWithWriters(&out, &out)

	logger.Info("where")

	assert.Contains(t, out.String(), "logger_test.go")
}
