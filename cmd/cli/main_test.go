package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/mailassembler/internal/app"
	"github.com/specialistvlad/mailassembler/internal/cli"
	"github.com/specialistvlad/mailassembler/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_WritesBatch(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	ws := testutil.NewWorkspace(t, nil)
	output := filepath.Join(ws.Root, "batch.txt")
	args := []string{"-output", output, "-log-level", "warn", ws.Params}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.NoError(t, err)
	assert.Contains(t, testutil.ReadFile(t, output), "<email-address>ann@x.com</email-address>")
}

func TestRun_FatalErrorBecomesExitCode(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A schedule with an unclosed tag aborts the run before any output.
	ws := testutil.NewWorkspace(t, map[string]string{
		"reports/Program participant schedules.xml": "<person><full name>Ann</full name>",
	})
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, []string{"-params", ws.Params})

	// --- Assert ---
	require.Error(t, err)
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr), "run() should translate fatal app errors")
	assert.Equal(t, app.ExitUnbalanced, exitErr.Code)
	assert.Contains(t, exitErr.Message, "unbalanced delimiters")
}

func TestRun_MissingParameterFile(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, []string{filepath.Join(t.TempDir(), "parameters.txt")})

	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, app.ExitMissingInput, exitErr.Code)
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	// The run function should see `shouldExit=true` and return a nil error.
	err := run(out, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Providing an unknown flag will cause cli.Parse to return an error.
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	// The run function should propagate the error from cli.Parse.
	err := run(out, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
