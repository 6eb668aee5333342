package logging

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_WritesToDataDir(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(previous)
		log.SetOutput(os.Stderr)
	})

	dir := t.TempDir()
	require.NoError(t, Init(dir, slog.LevelInfo))
	require.NotNil(t, Logger)

	slog.Debug("hidden message")
	slog.Info("department inserted", "id", 5)

	data, err := os.ReadFile(filepath.Join(dir, "logs", "staffdesk.log"))
	require.NoError(t, err)

	content := string(data)
	assert.True(t, strings.Contains(content, "department inserted"))
	assert.Contains(t, content, "id=5")
	assert.NotContains(t, content, "hidden message")
}
