// Package config loads experiment configuration and writes the point-in-time
// snapshot stored inside a box. See docs/ARCHITECTURE.md § Config Snapshot.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/expbox/pkg/types"
)

// SnapshotFileName is the configuration snapshot inside the box artifacts
// directory.
const SnapshotFileName = "config.yaml"

// Load resolves a configuration source into a mutable mapping.
//
// Accepted sources:
//   - nil: empty mapping
//   - map[string]any: shallow copy, keys kept verbatim
//   - string: path to a JSON or YAML file, read with Viper
//
// Viper folds file keys to lowercase, so a file source with "learningRate:"
// loads (and snapshots) as "learningrate". Callers that need exact key case
// pass a mapping instead of a file path.
//
// Returns an error wrapping ErrConfigLoad when the file is missing,
// unreadable, or not a mapping.
func Load(source any) (map[string]any, error) {
	switch src := source.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		cfg := make(map[string]any, len(src))
		for k, v := range src {
			cfg[k] = v
		}
		return cfg, nil
	case string:
		return loadFile(src)
	default:
		return nil, fmt.Errorf("%w: unsupported source %T", types.ErrConfigLoad, source)
	}
}

// loadFile reads a config file, inferring the format from the extension.
func loadFile(path string) (map[string]any, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", types.ErrConfigLoad, path, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", types.ErrConfigLoad, path, err)
	}
	return v.AllSettings(), nil
}

// Snapshot writes the configuration mapping to dest as YAML. The snapshot is
// written once at Init and never mutated afterward; it is a point-in-time
// copy, not a live view.
func Snapshot(cfg map[string]any, dest string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config snapshot: %w", err)
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("write config snapshot: %w", err)
	}
	return nil
}
