package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jander/internal/diagnostics"
)

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
debug = true
workers = 3

[output]
format = "detailed"
`))
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, diagnostics.FormatDetailed, cfg.Format())
}

func TestParseKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("debug = true\n"))
	require.NoError(t, err)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.Equal(t, diagnostics.FormatPlain, cfg.Format())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains string
	}{
		{"unknown key", "threads = 2\n", "unknown keys"},
		{"unknown nested key", "[output]\ncolor = true\n", "unknown keys"},
		{"no workers", "workers = 0\n", "workers must be at least 1"},
		{"bad format", "[output]\nformat = \"json\"\n", "unknown output format"},
		{"wrong type", "workers = \"many\"\n", ""},
		{"malformed", "debug = \n", ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse([]byte(test.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.contains)
		})
	}
}

func TestLoadDefaultFileMissing(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadDefaultFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFile), []byte("workers = 2\n"), 0644))
	t.Chdir(dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Workers)
}

func TestLoadExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[output]\nformat = \"plain\"\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, diagnostics.FormatPlain, cfg.Format())

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err, "an explicit path must exist")
}
