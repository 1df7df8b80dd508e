package cmd

import (
	"errors"
	"fmt"
)

var (
	errInsufficientArguments = errors.New("not enough arguments")
	errUnknownOption         = errors.New("unknown option")
)

type mode int

const (
	modeText mode = iota
	modeUnicode
	modeHelp
)

// parseArgs picks the mode from args[0] and the payload from args[1].
// Anything after the payload is ignored. The argument count is checked
// before the option, so a lone "-h" is still too few arguments.
func parseArgs(args []string) (mode, string, error) {
	if len(args) < 2 {
		return 0, "", errInsufficientArguments
	}

	switch args[0] {
	case "-t", "--text":
		return modeText, args[1], nil
	case "-u", "--unicode":
		return modeUnicode, args[1], nil
	case "-h", "--help":
		return modeHelp, "", nil
	default:
		return 0, "", fmt.Errorf("%w: %s", errUnknownOption, args[0])
	}
}

// isModeSelector reports whether s picks one of the conversion or help modes.
func isModeSelector(s string) bool {
	switch s {
	case "-t", "--text", "-u", "--unicode", "-h", "--help":
		return true
	}
	return false
}

// trimArgs drops everything after the payload when args start with a mode
// selector. Otherwise cobra would look for a subcommand among the trailing
// words and route `-t x version` to the version command.
func trimArgs(args []string) []string {
	if len(args) > 2 && isModeSelector(args[0]) {
		return args[:2]
	}
	return args
}
