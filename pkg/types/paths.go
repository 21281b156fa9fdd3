package types

import "path/filepath"

// Standard file names inside a box.
const (
	MetaFileName    = "meta.json"
	MetricsFileName = "metrics.jsonl"
)

// BoxPaths holds the directory structure of one experiment box under
// <results root>/<exp_id>/. All five directories exist on disk once Init
// returns; they are never renamed or recreated afterward.
type BoxPaths struct {
	// Root is the box root, <results root>/<exp_id>.
	Root string

	// Artifacts holds the configuration snapshot, model weights, tables.
	Artifacts string

	// Figures holds generated figures.
	Figures string

	// Logs holds the metrics log and logged figure images.
	Logs string

	// Notebooks is reserved for experiment-specific notebooks.
	Notebooks string
}

// NewBoxPaths derives the box directory structure for an experiment root.
// It computes paths only; materialization is a separate step.
func NewBoxPaths(root string) BoxPaths {
	return BoxPaths{
		Root:      root,
		Artifacts: filepath.Join(root, "artifacts"),
		Figures:   filepath.Join(root, "figures"),
		Logs:      filepath.Join(root, "logs"),
		Notebooks: filepath.Join(root, "notebooks"),
	}
}

// MetaPath returns the path of the metadata record for this box.
func (p BoxPaths) MetaPath() string {
	return filepath.Join(p.Root, MetaFileName)
}

// MetricsPath returns the path of the append-only metrics log.
func (p BoxPaths) MetricsPath() string {
	return filepath.Join(p.Logs, MetricsFileName)
}
