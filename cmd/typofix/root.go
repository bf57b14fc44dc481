package main

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/typofix/pkg/logging"
)

var (
	verbosity  int
	configFile string

	rootCmd = &cobra.Command{
		Use:   "typofix",
		Short: MsgRootShort,
		Long: `typofix watches text as it is typed and replaces recognized
patterns with their typographic form: (c) becomes ©, straight quotes
become directional ones, -- becomes an en dash.

The rule set is configurable; see the rules command for the active set.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			logger := logging.WithFields(map[string]interface{}{
				"command":   cmd.Name(),
				"verbosity": verbosity,
			})
			logger.Debug().Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "",
		"Path to a config file (default: typofix.toml in cwd or XDG config dir)")

	rootCmd.AddCommand(newApplyCmd())
	rootCmd.AddCommand(newRulesCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
}
