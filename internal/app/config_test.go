package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/courseadvisor/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Validation(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"bad log format", Config{LogFormat: "xml", LogLevel: "info"}, "invalid log-format"},
		{"bad log level", Config{LogFormat: "text", LogLevel: "trace"}, "invalid log-level"},
		{"bad output", Config{LogFormat: "text", LogLevel: "info", Output: "csv"}, "invalid output format"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewConfig(tc.cfg)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}

	cfg, err := NewConfig(Config{LogFormat: "JSON", LogLevel: "Debug", Output: "YAML"})
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "yaml", cfg.Output)
}

func TestResolveConfig_Precedence(t *testing.T) {
	// --- Arrange ---
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.hcl")
	src := `
data_file = "from-file.csv"
log {
  level = "info"
}
output {
  format = "yaml"
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	// --- Act ---
	cfg, err := ResolveConfig(context.Background(), config.NewLoader(), Config{
		ConfigPath: path,
		Output:     "text",
	})

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "from-file.csv", cfg.DataFile, "file overrides defaults")
	assert.Equal(t, "info", cfg.LogLevel, "file overrides defaults")
	assert.Equal(t, "text", cfg.LogFormat, "default kept when nobody overrides it")
	assert.Equal(t, "text", cfg.Output, "flag overrides file")
}

func TestResolveConfig_ExplicitFileMustExist(t *testing.T) {
	_, err := ResolveConfig(context.Background(), config.NewLoader(), Config{
		ConfigPath: filepath.Join(t.TempDir(), "missing.hcl"),
	})
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestResolveConfig_InvalidFileValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "advisor.hcl")
	require.NoError(t, os.WriteFile(path, []byte("log {\n  format = \"xml\"\n}\n"), 0o600))

	_, err := ResolveConfig(context.Background(), config.NewLoader(), Config{ConfigPath: path})
	assert.ErrorContains(t, err, "invalid log-format")
}
