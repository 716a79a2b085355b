package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// newCompletionCmd creates the completion command for generating shell completions.
func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for diagram-tools.

To load completions:

Bash:
  $ source <(diagram-tools completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ diagram-tools completion bash > /etc/bash_completion.d/diagram-tools
  # macOS:
  $ diagram-tools completion bash > $(brew --prefix)/etc/bash_completion.d/diagram-tools

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ diagram-tools completion zsh > "${fpath[1]}/_diagram-tools"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ diagram-tools completion fish | source

  # To load completions for each session, execute once:
  $ diagram-tools completion fish > ~/.config/fish/completions/diagram-tools.fish

PowerShell:
  PS> diagram-tools completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> diagram-tools completion powershell > diagram-tools.ps1
  # and source this file from your PowerShell profile.
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
