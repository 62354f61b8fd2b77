package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/goargs"
)

func TestRun_RepeatsGreeting(t *testing.T) {
	out := &bytes.Buffer{}

	err := run(out, []string{"basic", "--count", "3", "--color", "BLUE"})

	require.NoError(t, err)
	require.Equal(t, 3, strings.Count(out.String(), "Hello in BLUE!"))
}

func TestRun_HelpOutcome(t *testing.T) {
	out := &bytes.Buffer{}

	// The help token short-circuits parsing; main treats ErrHelp as a clean
	// exit.
	err := run(out, []string{"basic", "--help"})

	require.ErrorIs(t, err, goargs.ErrHelp)
	require.Contains(t, out.String(), "Usage: basic [OPTIONS]")
}

func TestRun_MissingRequiredArgument(t *testing.T) {
	out := &bytes.Buffer{}

	err := run(out, []string{"basic", "--color", "RED"})

	require.Error(t, err)
	require.Contains(t, err.Error(), "missing required argument: --count")
}

func TestRun_RejectsOutOfRangeCount(t *testing.T) {
	out := &bytes.Buffer{}

	err := run(out, []string{"basic", "--count", "11"})

	require.Error(t, err)
	require.ErrorIs(t, err, goargs.ErrValidation)
}
