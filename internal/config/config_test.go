package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/expbox/pkg/types"
)

func TestLoadFromMapping(t *testing.T) {
	src := map[string]any{"lr": 1e-3, "epochs": 10}

	cfg, err := Load(src)
	require.NoError(t, err)
	assert.Equal(t, 1e-3, cfg["lr"])
	assert.Equal(t, 10, cfg["epochs"])

	// Shallow copy: mutating the result must not touch the source.
	cfg["epochs"] = 20
	assert.Equal(t, 10, src["epochs"])
}

func TestLoadNilIsEmpty(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Empty(t, cfg)
}

func TestLoadFromJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"lr": 0.001, "epochs": 5}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.001, cfg["lr"])
	assert.EqualValues(t, 5, cfg["epochs"])
}

func TestLoadFromYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lr: 0.001\nmodel:\n  depth: 4\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.001, cfg["lr"])

	model, ok := cfg["model"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 4, model["depth"])
}

func TestLoadFoldsFileKeysToLowercase(t *testing.T) {
	t.Run("file keys are lowercased", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("learningRate: 0.001\n"), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 0.001, cfg["learningrate"])
		assert.NotContains(t, cfg, "learningRate")
	})

	t.Run("mapping keys keep their case", func(t *testing.T) {
		cfg, err := Load(map[string]any{"learningRate": 0.001})
		require.NoError(t, err)
		assert.Equal(t, 0.001, cfg["learningRate"])
	})
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, types.ErrConfigLoad)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

		_, err := Load(path)
		assert.ErrorIs(t, err, types.ErrConfigLoad)
	})

	t.Run("unsupported source type", func(t *testing.T) {
		_, err := Load(42)
		assert.ErrorIs(t, err, types.ErrConfigLoad)
	})
}

func TestSnapshotRoundTrip(t *testing.T) {
	dest := filepath.Join(t.TempDir(), SnapshotFileName)
	cfg := map[string]any{
		"lr":     0.001,
		"epochs": 10,
		"model":  map[string]any{"depth": 4},
	}

	require.NoError(t, Snapshot(cfg, dest))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)

	var loaded map[string]any
	require.NoError(t, yaml.Unmarshal(data, &loaded))
	assert.Equal(t, 0.001, loaded["lr"])
	assert.EqualValues(t, 10, loaded["epochs"])

	model, ok := loaded["model"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 4, model["depth"])
}
