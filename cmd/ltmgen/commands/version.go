package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/imamik/ltmgen/internal/config"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersionInfo sets the version information from main.
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Version returns the version command. Besides build information it lists
// the monitor and profile types this build can turn into tmsh commands.
func Version() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Print build information and the monitor and profile types this build generates commands for.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ltmgen %s\n", version)
			fmt.Fprintf(out, "  commit:   %s\n", commit)
			fmt.Fprintf(out, "  built:    %s\n", date)
			fmt.Fprintf(out, "  monitors: %s\n", joinTypes(config.SupportedMonitorTypes()))
			fmt.Fprintf(out, "  profiles: %s\n", joinTypes(config.SupportedProfileTypes()))
		},
	}
}

func joinTypes[T ~string](types []T) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
