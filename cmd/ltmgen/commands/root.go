// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/ltmgen/cmd/ltmgen/handlers"
)

// Root returns the root command for the ltmgen CLI.
//
// The root command owns the persistent --verbose flag, which every
// subcommand inherits.
func Root() *cobra.Command {
	var verbose int

	cmd := &cobra.Command{
		Use:           "ltmgen",
		Short:         "Generate F5 LTM configuration scripts from YAML",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			handlers.SetVerbosity(verbose)
		},
	}

	cmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "Increase log verbosity (-v per phase and command)")

	// Core commands
	cmd.AddCommand(Generate())
	cmd.AddCommand(Plan())
	cmd.AddCommand(Validate())
	cmd.AddCommand(Init())

	// Utility commands
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
