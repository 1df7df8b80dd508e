package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/birdayz/uniconvert/pkg/app"
)

// NewCommand returns the "uniconvert version" command.
func NewCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(a.OutWriter, a.VersionString())
		},
	}
}
