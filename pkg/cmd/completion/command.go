package completion

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/birdayz/uniconvert/pkg/app"
)

type generator func(root *cobra.Command, w io.Writer) error

var generators = map[string]generator{
	"bash": func(root *cobra.Command, w io.Writer) error {
		return root.GenBashCompletionV2(w, true)
	},
	"zsh": (*cobra.Command).GenZshCompletion,
	"fish": func(root *cobra.Command, w io.Writer) error {
		return root.GenFishCompletion(w, true)
	},
	"powershell": (*cobra.Command).GenPowerShellCompletionWithDesc,
}

// Shells lists the shells a completion script can be generated for.
func Shells() []string {
	shells := make([]string, 0, len(generators))
	for name := range generators {
		shells = append(shells, name)
	}
	sort.Strings(shells)
	return shells
}

// NewCommand returns the "uniconvert completion" command. Scripts are
// generated from a.Root, so it must be set before the command runs.
func NewCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "completion [SHELL]",
		Short: "Generate completion script for bash, zsh, fish or powershell",
		Long: `To load completions in the current shell:

  bash:  source <(uniconvert completion bash)
  zsh:   source <(uniconvert completion zsh)
  fish:  uniconvert completion fish | source

To load them for every session, write the script to your shell's
completion directory, e.g. uniconvert completion zsh > "${fpath[1]}/_uniconvert".
`,
		DisableFlagsInUseLine: true,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs:             Shells(),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen := generators[args[0]]
			if err := gen(a.Root, a.OutWriter); err != nil {
				return fmt.Errorf("failed to generate %s completion: %w", args[0], err)
			}
			return nil
		},
	}
}
