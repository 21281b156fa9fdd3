package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/expbox/pkg/expbox"
)

const modulePath = "github.com/mesh-intelligence/expbox"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the expbox version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "expbox v%s\nmodule: %s\n", expbox.Version, modulePath)
		return nil
	},
}
