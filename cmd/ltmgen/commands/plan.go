package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imamik/ltmgen/cmd/ltmgen/handlers"
)

// Plan returns the command that prints the script without writing files.
func Plan() *cobra.Command {
	var (
		configPath string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the generated script or its commands without writing files",
		Long: `Print what generate would produce.

--format text prints the script itself. --format yaml and --format json print
the structured command records together with per-kind counts and any
warnings, which is useful for review tooling.`,
		Args: cobra.NoArgs,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			switch handlers.PlanFormat(format) {
			case handlers.PlanFormatText, handlers.PlanFormatYAML, handlers.PlanFormatJSON:
				return nil
			}
			return fmt.Errorf("unsupported format %q (expected text, yaml or json)", format)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Plan(cmd.Context(), configPath, handlers.PlanFormat(format))
		},
	}

	addConfigFileFlag(cmd, &configPath)
	cmd.Flags().StringVar(&format, "format", string(handlers.PlanFormatText), "Output format: text, yaml or json")
	_ = cmd.RegisterFlagCompletionFunc("format", completeFixed(
		string(handlers.PlanFormatText), string(handlers.PlanFormatYAML), string(handlers.PlanFormatJSON),
	))

	return cmd
}
