package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	m, payload, err := parseArgs([]string{"--unicode", "x", "y"})
	require.NoError(t, err)
	require.Equal(t, modeUnicode, m)
	require.Equal(t, "x", payload)

	_, _, err = parseArgs([]string{"--text"})
	require.ErrorIs(t, err, errInsufficientArguments)

	_, _, err = parseArgs([]string{"-T", "x"})
	require.ErrorIs(t, err, errUnknownOption)
	require.Contains(t, err.Error(), "-T")
}

func TestTrimArgs(t *testing.T) {
	require.Equal(t, []string{"-t", "x"}, trimArgs([]string{"-t", "x", "version"}))
	require.Equal(t, []string{"--help", "x"}, trimArgs([]string{"--help", "x", "y", "z"}))
	require.Equal(t, []string{"-u", "x"}, trimArgs([]string{"-u", "x"}))
	require.Equal(t, []string{"completion", "bash", "x"}, trimArgs([]string{"completion", "bash", "x"}))
	require.Equal(t, []string{"Hello", "World", "version"}, trimArgs([]string{"Hello", "World", "version"}))
	require.Empty(t, trimArgs(nil))
}
