// The close command finalizes an experiment box.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/expbox/pkg/expbox"
)

var closeFlags struct {
	finalNote string
}

var closeCmd = &cobra.Command{
	Use:   "close <exp-id>",
	Short: "Finalize an experiment box",
	Long:  "Set the completion timestamp, persist the final metadata, and close\nthe logger backend. A closed box is sealed.",
	Args:  cobra.ExactArgs(1),
	RunE:  runClose,
}

func init() {
	closeCmd.Flags().StringVar(&closeFlags.finalNote, "final-note", "", "final comment summarizing the experiment")
}

func runClose(cmd *cobra.Command, args []string) error {
	resultsRoot, err := resolveResultsRoot()
	if err != nil {
		return err
	}

	ctx, err := expbox.Load(args[0], expbox.LoadOptions{ResultsRoot: resultsRoot})
	if err != nil {
		return err
	}

	if err := ctx.Save(expbox.SaveOptions{FinalNote: closeFlags.finalNote}); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Closed experiment: %s\n", ctx.ExpID)
	return nil
}
