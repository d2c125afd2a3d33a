// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// newCompletionCommand creates the `cqrsgen completion` command.
func newCompletionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for cqrsgen.

To enable shell completions, run one of the following commands:

` + SubtitleStyle.Render("Bash:") + `
  # Add to ~/.bashrc:
  eval "$(cqrsgen completion bash)"

  # Or install system-wide:
  cqrsgen completion bash > /etc/bash_completion.d/cqrsgen

` + SubtitleStyle.Render("Zsh:") + `
  # Add to ~/.zshrc:
  eval "$(cqrsgen completion zsh)"

  # Or install to fpath:
  cqrsgen completion zsh > "${fpath[1]}/_cqrsgen"

` + SubtitleStyle.Render("Fish:") + `
  cqrsgen completion fish > ~/.config/fish/completions/cqrsgen.fish

` + SubtitleStyle.Render("PowerShell:") + `
  cqrsgen completion powershell | Out-String | Invoke-Expression

  # Or add to $PROFILE:
  cqrsgen completion powershell >> $PROFILE
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
}
