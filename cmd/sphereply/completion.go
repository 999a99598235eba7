package main

import (
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

// completionScripts writes the completion script for each supported shell
var completionScripts = map[string]func(io.Writer) error{
	"bash":       func(w io.Writer) error { return rootCmd.GenBashCompletionV2(w, true) },
	"zsh":        func(w io.Writer) error { return rootCmd.GenZshCompletion(w) },
	"fish":       func(w io.Writer) error { return rootCmd.GenFishCompletion(w, true) },
	"powershell": func(w io.Writer) error { return rootCmd.GenPowerShellCompletionWithDesc(w) },
}

func completionShells() []string {
	shells := make([]string, 0, len(completionScripts))
	for shell := range completionScripts {
		shells = append(shells, shell)
	}
	slices.Sort(shells)
	return shells
}

var completionCmd = &cobra.Command{
	Use:   "completion [" + strings.Join(completionShells(), "|") + "]",
	Short: "Print a shell completion script",
	Long: `Print a completion script for sphereply to stdout.

Try it in the running shell:

  bash        source <(sphereply completion bash)
  zsh         source <(sphereply completion zsh)
  fish        sphereply completion fish | source
  powershell  sphereply completion powershell | Out-String | Invoke-Expression

Keep it for new shells by writing the script where the shell looks for it:

  bash        sphereply completion bash > ~/.local/share/bash-completion/completions/sphereply
  zsh         sphereply completion zsh > "${fpath[1]}/_sphereply"
  fish        sphereply completion fish > ~/.config/fish/completions/sphereply.fish

The bash script needs the bash-completion package, zsh needs compinit.`,
	DisableFlagsInUseLine: true,
	ValidArgs:             completionShells(),
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		return completionScripts[args[0]](os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
