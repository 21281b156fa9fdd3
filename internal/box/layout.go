// Package box materializes the fixed directory layout of one experiment.
// See docs/ARCHITECTURE.md § Box Layout.
package box

import (
	"fmt"
	"os"

	"github.com/mesh-intelligence/expbox/pkg/types"
)

// Materialize creates the box root and its four fixed subdirectories
// (artifacts, figures, logs, notebooks) for the given experiment root.
//
// Idempotent: directories surviving a prior partial failure are reused, and
// unrelated files already inside the root are left untouched. Returns an
// error wrapping ErrLayout when the root exists as a non-directory or when
// directory creation fails.
func Materialize(root string) (types.BoxPaths, error) {
	paths := types.NewBoxPaths(root)

	for _, dir := range []string{paths.Root, paths.Artifacts, paths.Figures, paths.Logs, paths.Notebooks} {
		if info, err := os.Stat(dir); err == nil && !info.IsDir() {
			return types.BoxPaths{}, fmt.Errorf("%w: %s exists and is not a directory", types.ErrLayout, dir)
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return types.BoxPaths{}, fmt.Errorf("%w: creating %s: %v", types.ErrLayout, dir, err)
		}
	}

	return paths, nil
}
