// The list command enumerates experiment boxes under the results root.
package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/expbox/pkg/expbox"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List experiment boxes",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	resultsRoot, err := resolveResultsRoot()
	if err != nil {
		return err
	}

	metas, err := expbox.List(resultsRoot)
	if err != nil {
		return err
	}

	if flagJSON {
		out, err := json.MarshalIndent(metas, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "EXP_ID\tPROJECT\tCREATED\tSTATUS\tTITLE")
	for _, meta := range metas {
		status := "running"
		if meta.Finished() {
			status = "done"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			meta.ExpID, meta.Project, meta.CreatedAt.Format(time.DateTime), status, meta.Title)
	}
	return w.Flush()
}
