// The export command writes a CSV summary of all boxes.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/expbox/pkg/expbox"
)

var exportFlags struct {
	output string
	fields string
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a CSV summary of all experiment boxes",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFlags.output, "output", "expbox_experiments.csv", "output CSV path")
	exportCmd.Flags().StringVar(&exportFlags.fields, "fields", "", `comma-separated field list, e.g. "exp_id,project,final_note"`)
}

func runExport(cmd *cobra.Command, args []string) error {
	resultsRoot, err := resolveResultsRoot()
	if err != nil {
		return err
	}

	var fields []string
	for _, f := range strings.Split(exportFlags.fields, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}

	if err := expbox.ExportCSV(resultsRoot, exportFlags.output, fields); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), exportFlags.output)
	return nil
}
