package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/rolodex/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "contacts.json", cfg.File)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 4, cfg.ImportWorkers)
	assert.NoError(t, cfg.Validate())
}

func TestNewConfig_WithOptions(t *testing.T) {
	cfg := NewConfig(
		WithFile("book.yaml"),
		WithLogLevel("debug"),
		WithImportWorkers(8),
	)

	assert.Equal(t, "book.yaml", cfg.File)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 8, cfg.ImportWorkers)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantErr string
	}{
		{"valid", nil, ""},
		{"log level is normalized", []Option{WithLogLevel(" INFO ")}, ""},
		{"empty file", []Option{WithFile("  ")}, "File is required"},
		{"bad log level", []Option{WithLogLevel("verbose")}, "invalid LogLevel"},
		{"zero workers", []Option{WithImportWorkers(0)}, "ImportWorkers"},
		{"yaml format", []Option{WithFormat("YAML")}, ""},
		{"unknown format", []Option{WithFormat("csv")}, "invalid Format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewConfig(tt.opts...).Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// isolate points every search location at an empty directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	return dir
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_SearchPath(t *testing.T) {
	dir := isolate(t)
	confDir := filepath.Join(dir, "xdg", "rolodex")
	require.NoError(t, os.MkdirAll(confDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(confDir, "rolodex.yaml"),
		[]byte("file: /data/book.yaml\nimport_workers: 2\n"), 0644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/data/book.yaml", cfg.File)
	assert.Equal(t, 2, cfg.ImportWorkers)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_ExplicitPath(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, DefaultFile, cfg.File)
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rolodex.yaml"),
		[]byte("file: from-file.json\nlog_level: info\n"), 0644))
	t.Setenv("ROLODEX_FILE", "from-env.yaml")
	t.Setenv("ROLODEX_IMPORT_WORKERS", "6")
	t.Setenv("ROLODEX_FORMAT", "yaml")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-env.yaml", cfg.File)
	assert.Equal(t, 6, cfg.ImportWorkers)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "yaml", cfg.Format)
}

func TestFileFormat(t *testing.T) {
	_, ok, err := DefaultConfig().FileFormat()
	require.NoError(t, err)
	assert.False(t, ok, "empty format defers to the extension")

	cfg := NewConfig(WithFormat("yml"))
	require.NoError(t, cfg.Validate())
	f, ok, err := cfg.FileFormat()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, codec.FormatYAML, f)
}
