package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger_writesRotatedFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, err := InitLogger("event-booking", dir, false)
	require.NoError(t, err)
	logger.Info("hello")
	logger.Sync()

	raw, err := os.ReadFile(filepath.Join(dir, "event-booking.log"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"msg":"hello"`)
}

func TestInitLogger_stdoutOnly(t *testing.T) {
	logger, err := InitLogger("event-booking", "", true)
	require.NoError(t, err)
	assert.NotNil(t, logger)
}
