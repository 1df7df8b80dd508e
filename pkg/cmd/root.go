package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/birdayz/uniconvert/pkg/app"
	"github.com/birdayz/uniconvert/pkg/cmd/completion"
	versioncmd "github.com/birdayz/uniconvert/pkg/cmd/version"
)

const usage = `
Unicode and Text Convert

Usage: uniconvert [OPTION] [SOURCE]

Options:
    -h, --help         Print help information
    -t, --text         Convert text to unicode
    -u, --unicode      Convert unicode to text

Commands:
    completion         Generate a shell completion script
    version            Print version information
`

// Execute is the single entry point for the CLI.
func Execute(version, commit string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := NewRootCommand(app.New(version, commit))
	root.SetArgs(trimArgs(os.Args[1:]))
	return root.ExecuteContext(ctx)
}

// NewRootCommand builds the command tree around a. The root command takes
// its arguments raw: the first one selects the mode, the second is the
// payload.
func NewRootCommand(a *app.App) *cobra.Command {
	root := &cobra.Command{
		Use:                "uniconvert [OPTION] [SOURCE]",
		Short:              "Convert text to and from unicode escapes",
		SilenceUsage:       true,
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.BindStreams(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, args)
		},
		ValidArgsFunction: completeOption,
	}
	a.Root = root

	defaultHelp := root.HelpFunc()
	root.SetHelpFunc(func(c *cobra.Command, args []string) {
		if c != root {
			defaultHelp(c, args)
			return
		}
		fmt.Fprint(c.OutOrStdout(), usage)
	})

	root.AddCommand(
		completion.NewCommand(a),
		versioncmd.NewCommand(a),
	)

	return root
}

// completeOption offers the mode selectors for the first argument only; the
// payload is free text.
func completeOption(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{
		"-t\tConvert text to unicode",
		"--text\tConvert text to unicode",
		"-u\tConvert unicode to text",
		"--unicode\tConvert unicode to text",
		"-h\tPrint help information",
		"--help\tPrint help information",
	}, cobra.ShellCompDirectiveNoFileComp
}

func run(a *app.App, args []string) error {
	m, payload, err := parseArgs(args)
	switch {
	case errors.Is(err, errInsufficientArguments):
		fmt.Fprintln(a.OutWriter, "Not enough arguments provided.")
		return nil
	case errors.Is(err, errUnknownOption):
		fmt.Fprintf(a.OutWriter, "Unknown option: %s\n", args[0])
		return nil
	case err != nil:
		return err
	}

	switch m {
	case modeText:
		a.PrintText(payload)
	case modeUnicode:
		return a.PrintUnicode(payload)
	case modeHelp:
		fmt.Fprint(a.OutWriter, usage)
	}
	return nil
}
