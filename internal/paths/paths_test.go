package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigDir_Linux(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-only test")
	}

	t.Run("uses XDG_CONFIG_HOME when set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/xdg-config/expbox", got)
	})

	t.Run("falls back to ~/.config when XDG unset", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".config", "expbox"), got)
	})
}

func TestDefaultConfigDir_Darwin(t *testing.T) {
	if runtime.GOOS != "darwin" {
		t.Skip("darwin-only test")
	}

	got, err := DefaultConfigDir()
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "Library", "Application Support", "expbox"), got)
}

func TestResolveConfigDir(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/tmp/env-config")
		got, err := ResolveConfigDir("/tmp/flag-config")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/flag-config", got)
	})

	t.Run("env beats default", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/tmp/env-config")
		got, err := ResolveConfigDir("")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/env-config", got)
	})

	t.Run("relative flag becomes absolute", func(t *testing.T) {
		got, err := ResolveConfigDir("rel-config")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
	})
}

func TestResolveResultsRoot(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		t.Setenv(EnvResultsRoot, "/tmp/env-results")
		got, err := ResolveResultsRoot("/tmp/flag-results", "/tmp/config-results")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/flag-results", got)
	})

	t.Run("config value beats env", func(t *testing.T) {
		t.Setenv(EnvResultsRoot, "/tmp/env-results")
		got, err := ResolveResultsRoot("", "/tmp/config-results")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/config-results", got)
	})

	t.Run("env beats default", func(t *testing.T) {
		t.Setenv(EnvResultsRoot, "/tmp/env-results")
		got, err := ResolveResultsRoot("", "")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/env-results", got)
	})

	t.Run("default is CWD-relative results", func(t *testing.T) {
		t.Setenv(EnvResultsRoot, "")
		cwd, err := os.Getwd()
		require.NoError(t, err)

		got, err := ResolveResultsRoot("", "")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(cwd, DefaultResultsRootName), got)
	})
}
