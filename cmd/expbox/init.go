// The init command creates a new experiment box.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/expbox/internal/logging"
	"github.com/mesh-intelligence/expbox/pkg/expbox"
)

var initFlags struct {
	project   string
	title     string
	purpose   string
	config    string
	expID     string
	idStyle   string
	prefix    string
	suffix    string
	linkStyle string
	logger    string
	envNote   string
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new experiment box",
	Long:  "Create a new box under the results root, snapshot the configuration,\nwrite the initial metadata, and print the experiment id.",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().StringVar(&initFlags.project, "project", "", "logical project name (default: current directory name)")
	initCmd.Flags().StringVar(&initFlags.title, "title", "", "short experiment title")
	initCmd.Flags().StringVar(&initFlags.purpose, "purpose", "", "short description of the experiment purpose")
	initCmd.Flags().StringVar(&initFlags.config, "config", "", "path to a JSON or YAML config file")
	initCmd.Flags().StringVar(&initFlags.expID, "exp-id", "", "explicit experiment id (otherwise auto-generated)")
	initCmd.Flags().StringVar(&initFlags.idStyle, "id-style", "datetime", "id style: datetime, date, seq, rand")
	initCmd.Flags().StringVar(&initFlags.prefix, "prefix", "", "id prefix")
	initCmd.Flags().StringVar(&initFlags.suffix, "suffix", "", "id suffix")
	initCmd.Flags().StringVar(&initFlags.linkStyle, "link-style", "kebab", "id part separator: kebab or snake")
	initCmd.Flags().StringVar(&initFlags.logger, "logger", "none", `logger backend: "none" or "file"`)
	initCmd.Flags().StringVar(&initFlags.envNote, "env-note", "", "free-text note about the environment")
}

func runInit(cmd *cobra.Command, args []string) error {
	resultsRoot, err := resolveResultsRoot()
	if err != nil {
		return err
	}

	project := initFlags.project
	if project == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		project = filepath.Base(cwd)
	}

	var configSource any
	if initFlags.config != "" {
		configSource = initFlags.config
	}

	ctx, err := expbox.Init(expbox.InitOptions{
		Project:     project,
		Title:       initFlags.title,
		Purpose:     initFlags.purpose,
		Config:      configSource,
		Logger:      initFlags.logger,
		ResultsRoot: resultsRoot,
		ExpID:       initFlags.expID,
		IDStyle:     initFlags.idStyle,
		Prefix:      initFlags.prefix,
		Suffix:      initFlags.suffix,
		LinkStyle:   initFlags.linkStyle,
		EnvNote:     initFlags.envNote,
	})
	if err != nil {
		return err
	}
	defer ctx.Logger.Close()

	logging.Logger.Debug("box created", "exp_id", ctx.ExpID, "root", ctx.Paths.Root)

	if flagJSON {
		out, err := json.MarshalIndent(boxSummary(ctx, resultsRoot), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), ctx.ExpID)
	return nil
}
