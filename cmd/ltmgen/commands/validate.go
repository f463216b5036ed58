package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/ltmgen/cmd/ltmgen/handlers"
	"github.com/imamik/ltmgen/internal/watch"
)

// Validate returns the command that checks a configuration file.
func Validate() *cobra.Command {
	var (
		configPath string
		watchFile  bool
		opts       handlers.ValidateOptions
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a configuration file for errors",
		Long: `Check a configuration file without generating anything.

All field errors are reported at once. Pool members that name undeclared
nodes and unsupported monitor or profile types are reported as warnings.

With --watch the file is checked again every time it is saved, until
interrupted with Ctrl+C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.ConfigPath = configPath
			opts.Watch = watchFile
			return handlers.Validate(cmd.Context(), opts)
		},
	}

	addConfigFileFlag(cmd, &configPath)
	cmd.Flags().BoolVarP(&watchFile, "watch", "w", false, "Re-validate whenever the file changes")
	cmd.Flags().DurationVar(&opts.Debounce, "debounce", watch.DefaultDebounce, "Quiet period before re-validating in watch mode")

	return cmd
}
