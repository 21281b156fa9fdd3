package expbox

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	t.Run("returns all boxes", func(t *testing.T) {
		root := t.TempDir()
		for _, id := range []string{"exp-a", "exp-b", "exp-c"} {
			_, err := Init(InitOptions{Project: "p", ExpID: id, ResultsRoot: root})
			require.NoError(t, err)
		}

		metas, err := List(root)
		require.NoError(t, err)
		require.Len(t, metas, 3)
	})

	t.Run("skips non-box directories and stray files", func(t *testing.T) {
		root := t.TempDir()
		_, err := Init(InitOptions{Project: "p", ExpID: "real", ResultsRoot: root})
		require.NoError(t, err)
		require.NoError(t, os.Mkdir(filepath.Join(root, "not-a-box"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(root, "stray.txt"), nil, 0o644))

		metas, err := List(root)
		require.NoError(t, err)
		require.Len(t, metas, 1)
		assert.Equal(t, "real", metas[0].ExpID)
	})

	t.Run("missing results root is empty", func(t *testing.T) {
		metas, err := List(filepath.Join(t.TempDir(), "nowhere"))
		require.NoError(t, err)
		assert.Empty(t, metas)
	})
}

func TestExportCSV(t *testing.T) {
	root := t.TempDir()

	ctx, err := Init(InitOptions{Project: "p", ExpID: "exp-01", Title: "first", ResultsRoot: root})
	require.NoError(t, err)
	require.NoError(t, ctx.Save(SaveOptions{FinalNote: "ok"}))

	_, err = Init(InitOptions{Project: "p", ExpID: "exp-02", ResultsRoot: root})
	require.NoError(t, err)

	t.Run("default fields", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "summary.csv")
		require.NoError(t, ExportCSV(root, out, nil))

		f, err := os.Open(out)
		require.NoError(t, err)
		defer f.Close()

		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, DefaultExportFields, rows[0])

		byID := map[string][]string{rows[1][0]: rows[1], rows[2][0]: rows[2]}
		require.Contains(t, byID, "exp-01")
		require.Contains(t, byID, "exp-02")
		// exp-01 is sealed, exp-02 is still running.
		assert.NotEmpty(t, byID["exp-01"][4])
		assert.NotEmpty(t, byID["exp-01"][5])
		assert.Empty(t, byID["exp-02"][5])
	})

	t.Run("selected fields", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "summary.csv")
		require.NoError(t, ExportCSV(root, out, []string{"exp_id", "project", "bogus"}))

		f, err := os.Open(out)
		require.NoError(t, err)
		defer f.Close()

		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, []string{"exp_id", "project", "bogus"}, rows[0])
		assert.Equal(t, "p", rows[1][1])
		assert.Empty(t, rows[1][2])
	})
}
