package app

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leg100/timeago/internal/logging"
	"github.com/leg100/timeago/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	// Unset environment variables set on host computer
	t.Setenv("TIMEAGO_DEBUG", "")
	t.Setenv("TIMEAGO_FILE", "")
	t.Setenv("TIMEAGO_LOG_LEVEL", "")
	t.Setenv("TIMEAGO_OVERFLOW", "")
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		name string
		file string
		args []string
		envs []string
		want func(t *testing.T, got config)
	}{
		{
			"defaults",
			"",
			nil,
			nil,
			func(t *testing.T, got config) {
				assert.Equal(t, "threshold", got.Overflow)
				assert.Equal(t, logging.Options{Level: "info"}, got.loggingOptions)
				assert.Equal(t, "", got.File)
				assert.False(t, got.Debug)
				assert.False(t, got.Version)
				assert.Empty(t, got.Timestamps)
			},
		},
		{
			"config file override default",
			"overflow: unit\n",
			nil,
			nil,
			func(t *testing.T, got config) {
				assert.Equal(t, "unit", got.Overflow)
			},
		},
		{
			"env var override default",
			"",
			nil,
			[]string{"TIMEAGO_LOG_LEVEL=debug"},
			func(t *testing.T, got config) {
				assert.Equal(t, "debug", got.loggingOptions.Level)
			},
		},
		{
			"flag override default",
			"",
			[]string{"--overflow", "unit"},
			nil,
			func(t *testing.T, got config) {
				assert.Equal(t, "unit", got.Overflow)
			},
		},
		{
			"env var overrides config file",
			"overflow: unit\n",
			nil,
			[]string{"TIMEAGO_OVERFLOW=threshold"},
			func(t *testing.T, got config) {
				assert.Equal(t, "threshold", got.Overflow)
			},
		},
		{
			"flag overrides env var",
			"",
			[]string{"-o", "unit"},
			[]string{"TIMEAGO_OVERFLOW=threshold"},
			func(t *testing.T, got config) {
				assert.Equal(t, "unit", got.Overflow)
			},
		},
		{
			"set entries file via environment variable",
			"",
			nil,
			[]string{"TIMEAGO_FILE=entries.yaml"},
			func(t *testing.T, got config) {
				assert.Equal(t, "entries.yaml", got.File)
			},
		},
		{
			"positional timestamps",
			"",
			[]string{"-d", "2024-05-01T10:00:00Z", "2024-05-02"},
			nil,
			func(t *testing.T, got config) {
				assert.True(t, got.Debug)
				assert.Equal(t, []string{"2024-05-01T10:00:00Z", "2024-05-02"}, got.Timestamps)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// change into a temp dir in case the host computer has a config file
			testutils.ChTempDir(t, t.TempDir())

			// set env vars
			for _, ev := range tt.envs {
				name, val, _ := strings.Cut(ev, "=")
				t.Setenv(name, val)
			}

			// set config file
			if tt.file != "" {
				path := filepath.Join(os.Getenv("HOME"), ".timeago.yaml")
				err := os.WriteFile(path, []byte(tt.file), 0o644)
				require.NoError(t, err)
			}

			// and pass in flags
			got, err := parse(io.Discard, tt.args)
			require.NoError(t, err)

			tt.want(t, got)
		})
	}
}

func TestConfig_InvalidOverflow(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := parse(io.Discard, []string{"--overflow", "sideways"})
	assert.Error(t, err)
}
