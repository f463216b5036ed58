package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/ltmgen/cmd/ltmgen/handlers"
)

// Generate returns the command that writes a configuration bundle.
//
// Flags:
//
//	--file, -f: Path to the configuration YAML (default "ltm_config.yaml")
//	--output, -o: Directory the bundle directory is created in (default ".")
//	--publish-bucket: Also upload the bundle to this S3 bucket
//	--metrics-file: Write generation metrics in Prometheus textfile format
//
// Environment variables (only with --publish-bucket):
//
//	LTMGEN_S3_ENDPOINT, LTMGEN_S3_REGION, LTMGEN_S3_ACCESS_KEY, LTMGEN_S3_SECRET_KEY
func Generate() *cobra.Command {
	var opts handlers.GenerateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the configuration script bundle",
		Long: `Generate a bundle directory containing configure_f5_ltm.sh and a README.

The bundle is named {lac}-{name}-{partition} after the metadata block of the
configuration and is created inside the output directory. An existing bundle
is never overwritten.

The script reads F5_HOST, F5_USER and F5_PASS from the environment when it
runs against the appliance.

Examples:
  # Generate from ltm_config.yaml into the current directory
  ltmgen generate

  # Generate into ./bundles and upload to object storage
  export LTMGEN_S3_ACCESS_KEY=... LTMGEN_S3_SECRET_KEY=...
  ltmgen generate -f web.yaml -o bundles --publish-bucket ltm-bundles`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Generate(cmd.Context(), opts)
		},
	}

	addConfigFileFlag(cmd, &opts.ConfigPath)
	cmd.Flags().StringVarP(&opts.OutputDir, "output", "o", ".", "Directory to create the bundle in")
	cmd.Flags().StringVar(&opts.PublishBucket, "publish-bucket", "", "Upload the bundle to this S3 bucket")
	cmd.Flags().StringVar(&opts.MetricsFile, "metrics-file", "", "Write Prometheus textfile metrics to this path")

	return cmd
}
