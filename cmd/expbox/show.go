// The show command prints a summary of one experiment box.
package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/expbox/pkg/expbox"
)

// summary is the JSON shape printed by show and init --json.
type summary struct {
	ExpID         string `json:"exp_id"`
	Project       string `json:"project"`
	Title         string `json:"title,omitempty"`
	Purpose       string `json:"purpose,omitempty"`
	CreatedAt     string `json:"created_at"`
	FinishedAt    string `json:"finished_at,omitempty"`
	LoggerBackend string `json:"logger_backend,omitempty"`
	ResultsRoot   string `json:"results_root"`
	Root          string `json:"root"`
}

var showCmd = &cobra.Command{
	Use:   "show <exp-id>",
	Short: "Show the metadata of an experiment box",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	resultsRoot, err := resolveResultsRoot()
	if err != nil {
		return err
	}

	ctx, err := expbox.Load(args[0], expbox.LoadOptions{ResultsRoot: resultsRoot})
	if err != nil {
		return err
	}
	defer ctx.Logger.Close()

	out, err := json.MarshalIndent(boxSummary(ctx, resultsRoot), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

// boxSummary flattens a context into the printable summary.
func boxSummary(ctx *expbox.Context, resultsRoot string) summary {
	s := summary{
		ExpID:         ctx.ExpID,
		Project:       ctx.Project,
		Title:         ctx.Meta.Title,
		Purpose:       ctx.Meta.Purpose,
		CreatedAt:     ctx.Meta.CreatedAt.Format(time.RFC3339),
		LoggerBackend: ctx.Meta.LoggerBackend,
		ResultsRoot:   resultsRoot,
		Root:          ctx.Paths.Root,
	}
	if ctx.Meta.FinishedAt != nil {
		s.FinishedAt = ctx.Meta.FinishedAt.Format(time.RFC3339)
	}
	return s
}
