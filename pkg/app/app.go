package app

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"

	"github.com/birdayz/uniconvert/pkg/escape"
)

// App holds the per-invocation state for the CLI. It is created once per
// invocation and threaded into every command package.
type App struct {
	// I/O
	OutWriter io.Writer
	ErrWriter io.Writer

	// Build info, set from ldflags in main.
	Version string
	Commit  string

	// Root command reference (for completion generation)
	Root *cobra.Command
}

// New creates an App writing to the process's standard streams. Stdout goes
// through colorable so decoded ANSI sequences render on Windows consoles.
func New(version, commit string) *App {
	return &App{
		OutWriter: colorable.NewColorableStdout(),
		ErrWriter: os.Stderr,
		Version:   version,
		Commit:    commit,
	}
}

// BindStreams points the App at cmd's streams. Streams left at their
// defaults keep the colorable stdout.
func (a *App) BindStreams(cmd *cobra.Command) {
	if out := cmd.OutOrStdout(); out != os.Stdout {
		a.OutWriter = out
	}
	a.ErrWriter = cmd.ErrOrStderr()
}

// VersionString formats build info the way --version would.
func (a *App) VersionString() string {
	return fmt.Sprintf("%s (%s)", a.Version, a.Commit)
}

// PrintText writes the escaped form of text as one line.
func (a *App) PrintText(text string) {
	fmt.Fprintln(a.OutWriter, escape.Encode(text))
}

// PrintUnicode decodes input and writes the result as one line. Nothing is
// written when decoding fails.
func (a *App) PrintUnicode(input string) error {
	text, err := escape.Decode(input)
	if err != nil {
		return fmt.Errorf("unable to decode: %w", err)
	}
	fmt.Fprintln(a.OutWriter, text)
	return nil
}
