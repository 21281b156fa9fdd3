// Box listing and CSV export across a results root.
package expbox

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/mesh-intelligence/expbox/internal/metaio"
	"github.com/mesh-intelligence/expbox/pkg/types"
)

// DefaultExportFields is the column set used when ExportCSV receives no
// explicit field list.
var DefaultExportFields = []string{
	"exp_id", "project", "title", "purpose",
	"created_at", "finished_at", "git_commit", "logger_backend",
	"run_id", "env_note", "final_note",
}

// List returns the metadata records of all boxes under resultsRoot, sorted
// by creation time then identifier. Directories without a readable meta.json
// are not boxes and are skipped.
func List(resultsRoot string) ([]*types.Meta, error) {
	entries, err := os.ReadDir(resultsRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading results root: %w", err)
	}

	var metas []*types.Meta
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := metaio.Read(filepath.Join(resultsRoot, entry.Name(), types.MetaFileName))
		if err != nil {
			continue
		}
		metas = append(metas, meta)
	}

	sort.Slice(metas, func(i, j int) bool {
		if !metas[i].CreatedAt.Equal(metas[j].CreatedAt) {
			return metas[i].CreatedAt.Before(metas[j].CreatedAt)
		}
		return metas[i].ExpID < metas[j].ExpID
	})
	return metas, nil
}

// ExportCSV writes a CSV summary of all boxes under resultsRoot to csvPath.
// A nil or empty fields slice selects DefaultExportFields. Unknown field
// names yield empty cells.
func ExportCSV(resultsRoot, csvPath string, fields []string) error {
	if len(fields) == 0 {
		fields = DefaultExportFields
	}

	metas, err := List(resultsRoot)
	if err != nil {
		return err
	}

	f, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("creating csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(fields); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, meta := range metas {
		row := make([]string, len(fields))
		for i, field := range fields {
			row[i] = fieldValue(meta, field)
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return f.Sync()
}

// fieldValue renders one metadata field as a CSV cell.
func fieldValue(meta *types.Meta, field string) string {
	switch field {
	case "exp_id":
		return meta.ExpID
	case "project":
		return meta.Project
	case "title":
		return meta.Title
	case "purpose":
		return meta.Purpose
	case "created_at":
		return meta.CreatedAt.Format(time.RFC3339)
	case "finished_at":
		if meta.FinishedAt == nil {
			return ""
		}
		return meta.FinishedAt.Format(time.RFC3339)
	case "git_commit":
		return meta.GitCommit
	case "config_path":
		return meta.ConfigPath
	case "logger_backend":
		return meta.LoggerBackend
	case "run_id":
		return meta.RunID
	case "env_note":
		return meta.EnvNote
	case "final_note":
		return meta.FinalNote
	default:
		return ""
	}
}
