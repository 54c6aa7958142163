package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand generates shell completion scripts on the CLI output.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for citypaths.

To load completions:

Bash:
  $ source <(citypaths completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ citypaths completion bash > /etc/bash_completion.d/citypaths
  # macOS:
  $ citypaths completion bash > $(brew --prefix)/etc/bash_completion.d/citypaths

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ citypaths completion zsh > "${fpath[1]}/_citypaths"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ citypaths completion fish | source

  # To load completions for each session, execute once:
  $ citypaths completion fish > ~/.config/fish/completions/citypaths.fish

PowerShell:
  PS> citypaths completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> citypaths completion powershell > citypaths.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(c.Out, true)
			case "zsh":
				return root.GenZshCompletion(c.Out)
			case "fish":
				return root.GenFishCompletion(c.Out, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(c.Out)
			}
			return nil
		},
	}

	return cmd
}
