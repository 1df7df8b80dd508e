// Command uniconvert converts text to and from unicode escape notation.
package main

import (
	"os"

	"github.com/birdayz/uniconvert/pkg/cmd"
)

// Set by goreleaser / GitHub Actions via ldflags.
var (
	commit  = "HEAD"
	version = "latest"
)

func main() {
	if err := cmd.Execute(version, commit); err != nil {
		os.Exit(1)
	}
}
