package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/ltmgen/internal/config"
)

// configFileExtensions limits -f completion to YAML documents.
var configFileExtensions = []string{"yaml", "yml"}

// Completion returns the completion command for shell autocompletion.
func Completion() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for ltmgen.

Completions cover subcommands, -f/--file (YAML documents only) and the
values of plan --format.

Bash:
  $ source <(ltmgen completion bash)

Zsh:
  $ ltmgen completion zsh > "${fpath[1]}/_ltmgen"

Fish:
  $ ltmgen completion fish > ~/.config/fish/completions/ltmgen.fish

PowerShell:
  PS> ltmgen completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
	return cmd
}

// addConfigFileFlag registers -f/--file and restricts its completion to
// YAML files.
func addConfigFileFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "file", "f", config.DefaultConfigFilename, "Path to configuration file")
	_ = cmd.MarkFlagFilename("file", configFileExtensions...)
}

// completeFixed completes a flag from a fixed list of values.
func completeFixed(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}
