package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/staffdesk/internal/cli"
	"github.com/thenoetrevino/staffdesk/internal/testutil"
	"gopkg.in/yaml.v3"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("STAFFDESK_DB_PATH", "")
	t.Setenv("STAFFDESK_LOG_LEVEL", "")
	t.Setenv("STAFFDESK_THEME", "")
	t.Setenv("STAFFDESK_THEME_FILE", "")
	return dir
}

func TestShow(t *testing.T) {
	dir := isolate(t)
	t.Setenv("STAFFDESK_LOG_LEVEL", "warn")

	out, _, err := testutil.ExecuteCommand(t, ShowCmd())
	require.NoError(t, err)

	var shown map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &shown))
	assert.Equal(t, "warn", shown["log_level"])
	database := shown["database"].(map[string]interface{})
	assert.Equal(t, filepath.Join(dir, "data", "staffdesk", "staffdesk.db"), database["path"])
}

func TestInit(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config", "staffdesk", "config.yaml")

	out, _, err := testutil.ExecuteCommand(t, InitCmd(), "--quiet")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "key_mappings")

	t.Run("refuses to overwrite", func(t *testing.T) {
		_, _, err := testutil.ExecuteCommand(t, InitCmd())
		require.Error(t, err)
		assert.Equal(t, cli.ExitUsage, cli.ExitCodeFor(err))
	})

	t.Run("force overwrites", func(t *testing.T) {
		_, _, err := testutil.ExecuteCommand(t, InitCmd(), "--force")
		require.NoError(t, err)
	})
}
