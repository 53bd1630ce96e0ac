package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/projectinsights/internal/cli"
	"github.com/rshade/projectinsights/internal/config"
)

// setupCLITest isolates the configuration directory and global state.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvURL, "")
	t.Setenv(config.EnvOutputFormat, "")
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

// execute runs the root command and returns its combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestConfigInit(t *testing.T) {
	home := setupCLITest(t)

	out, err := execute(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized successfully")

	path := filepath.Join(home, "config.yaml")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "page_size: 5")
	assert.Contains(t, string(data), "timeout: 30s")

	_, err = execute(t, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigSetGet(t *testing.T) {
	setupCLITest(t)

	out, err := execute(t, "config", "set", "table.page_size", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "table.page_size = 10")

	config.ResetGlobalConfigForTest()
	out, err = execute(t, "config", "get", "table.page_size")
	require.NoError(t, err)
	assert.Equal(t, "10\n", out)
}

func TestConfigSet_RejectsInvalid(t *testing.T) {
	home := setupCLITest(t)

	_, err := execute(t, "config", "set", "table.page_size", "7")
	require.ErrorIs(t, err, config.ErrDefaultPageSizeNotOffered)

	_, err = execute(t, "config", "set", "no.such.key", "1")
	require.ErrorIs(t, err, config.ErrUnknownKey)

	_, statErr := os.Stat(filepath.Join(home, "config.yaml"))
	assert.True(t, os.IsNotExist(statErr), "invalid values must not be written")
}

func TestConfigList(t *testing.T) {
	setupCLITest(t)

	out, err := execute(t, "config", "list")
	require.NoError(t, err)
	for _, key := range config.Keys() {
		assert.Contains(t, out, key+" = ")
	}
	assert.Contains(t, out, "table.page_size_options = 5, 10, 15")
}

func TestConfigValidate(t *testing.T) {
	setupCLITest(t)

	out, err := execute(t, "config", "validate", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
	assert.Contains(t, out, "Page size: 5 (options: 5, 10, 15)")

	t.Setenv(config.EnvOutputFormat, "xml")
	config.ResetGlobalConfigForTest()
	_, err = execute(t, "config", "validate")
	require.ErrorIs(t, err, config.ErrInvalidOutputFormat)
}
