package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/unowned-ai/epochs/pkg/epochs"
)

// kindsFile optionally points at a YAML file of extra kind specs merged
// into the registry for the invocation.
var kindsFile string

var rootCmd = &cobra.Command{
	Use:     "epochs",
	Short:   "Convert epoch timestamps of many provenances to calendar date-times.",
	Long:    ``,
	Version: fmt.Sprintf("v%s", epochs.Version),
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var completionShells = []string{"bash", "zsh", "fish", "powershell"}

var completionCmd = &cobra.Command{
	Use:   fmt.Sprintf("completion %s", strings.Join(completionShells, "|")),
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for epochs.

The command prints a completion script to stdout. You can source it in your shell
or install it to the appropriate location for your shell to enable completions permanently.

Examples:

  Bash (current shell):
    $ source <(epochs completion bash)

  Bash (persist):
    $ epochs completion bash > /etc/bash_completion.d/epochs

  Zsh:
    $ epochs completion zsh > "${fpath[1]}/_epochs"

  Fish:
    $ epochs completion fish | source
    $ epochs completion fish > ~/.config/fish/completions/epochs.fish

  PowerShell:
    PS> epochs completion powershell | Out-String | Invoke-Expression`,
	DisableFlagsInUseLine: true,
	ValidArgs:             completionShells,
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return rootCmd.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return rootCmd.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported shell: %s", args[0])
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of epochs",
	Long:  `All software has versions. This is epochs'`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(epochs.Version)
	},
}

func initCmd() {
	rootCmd.PersistentFlags().StringVar(&kindsFile, "kinds", "", "Path to a YAML file of additional epoch kind specs")

	initKindsCmd()
	rootCmd.AddCommand(completionCmd, versionCmd, convertCmd, allCmd, toCmd, kindsCmd, uuidCmd, mcpCmd)
}

func main() {
	initCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
