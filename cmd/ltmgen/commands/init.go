package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/ltmgen/cmd/ltmgen/handlers"
	"github.com/imamik/ltmgen/internal/config"
)

// Init returns the command for interactively creating a configuration.
//
// Flags:
//
//	--output, -o: Path to output file (default "ltm_config.yaml")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a configuration file",
		Long: `Interactively create a starter configuration file.

The wizard asks for:

  - Configuration name, partition, LAC and description
  - Monitor and profile types
  - Backend nodes as name=address pairs
  - An optional virtual server in front of the pool

The result is a complete document you can edit before running generate.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", config.DefaultConfigFilename, "Output file path")

	return cmd
}
