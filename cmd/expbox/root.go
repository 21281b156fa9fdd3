// Root command for the expbox CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/expbox/internal/logging"
	"github.com/mesh-intelligence/expbox/internal/paths"
	"github.com/mesh-intelligence/expbox/pkg/expbox"
)

// Global flag values.
var (
	flagConfigDir   string
	flagResultsRoot string
	flagJSON        bool
	flagLogLevel    string
)

// configResultsRoot holds the results_root value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configResultsRoot string

var rootCmd = &cobra.Command{
	Use:          "expbox",
	Short:        "Expbox manages self-contained experiment result boxes",
	Long:         "Expbox gives each experiment a reproducible directory under a results\nroot, holding its configuration snapshot, logs, figures, and metadata.",
	Version:      expbox.Version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Configure(flagLogLevel)

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configResultsRoot = cfg.GetString(cfgKeyResultsRoot)
		logging.Logger.Debug("config loaded", "config_dir", configDir, "results_root", configResultsRoot)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagResultsRoot, "results-root", "", "directory holding experiment boxes (default: $(CWD)/results)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "diagnostics log level (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(closeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(exportCmd)
}

// resolveResultsRoot returns the results root following the precedence:
// --results-root flag > config.yaml results_root > EXPBOX_RESULTS_ROOT env
// > default $(CWD)/results.
func resolveResultsRoot() (string, error) {
	return paths.ResolveResultsRoot(flagResultsRoot, configResultsRoot)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > EXPBOX_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
