package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/specialistvlad/courseadvisor/internal/cli"
	"github.com/specialistvlad/courseadvisor/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestRun_ShowCourse(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := testutil.WriteCatalog(t, testutil.SampleCatalog...)
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), strings.NewReader(""), out, &bytes.Buffer{}, []string{"show", "--file", path, "CSCI200"})

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "CSCI200 - Data Structures\nPrerequisites:\n  CSCI101 - Introduction to Programming in C++\n", out.String())
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(context.Background(), strings.NewReader(""), out, &bytes.Buffer{}, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when help is requested")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// Providing an unknown flag will cause flag parsing to fail with a usage exit code.
	err := run(context.Background(), strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, cli.ExitUsage, exitErr.Code)
	require.Contains(t, err.Error(), "unknown flag: --this-is-not-a-valid-flag")
}
