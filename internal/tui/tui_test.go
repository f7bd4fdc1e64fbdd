package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/specialistvlad/courseadvisor/internal/catalog"
	"github.com/specialistvlad/courseadvisor/internal/ctxlog"
	"github.com/specialistvlad/courseadvisor/internal/render"
	"github.com/specialistvlad/courseadvisor/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	return ctxlog.WithLogger(context.Background(), ctxlog.Discard())
}

func TestCandidateFiles(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"b.csv", "a.txt", "skip.hcl"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), nil, 0o600))
	}
	configured := filepath.Join(root, "b.csv")

	tu := New(nil, catalog.NewSession(), render.New(render.FormatText, ""), Options{
		DataFile:   configured,
		SearchRoot: root,
	})

	assert.Equal(t, []string{configured, filepath.Join(root, "a.txt")}, tu.candidateFiles(testContext()))
}

func TestActions_DependOnLoadState(t *testing.T) {
	session := catalog.NewSession()
	tu := New(nil, session, render.New(render.FormatText, ""), Options{})
	assert.Len(t, tu.actions(), 2)

	session.Load(testContext(), catalog.ReaderSource("t.csv", strings.NewReader("CS100,Intro\n")))
	assert.Len(t, tu.actions(), 4)
	assert.Equal(t, []string{"CS100"}, courseCodes(session))
}

func TestLoadPath(t *testing.T) {
	// --- Arrange ---
	path := testutil.WriteCatalog(t, "CS100,Intro")
	var out strings.Builder
	session := catalog.NewSession()
	tu := New(&out, session, render.New(render.FormatText, ""), Options{})
	tu.spin = func(_ string, action func()) error {
		action()
		return nil
	}

	// --- Act ---
	err := tu.loadPath(testContext(), "  "+path+" ")

	// --- Assert ---
	require.NoError(t, err)
	assert.True(t, session.Ready())
	assert.Equal(t, "File validated. Loaded 1 courses.\n", out.String())
}

func TestLoadPath_SpinnerError(t *testing.T) {
	// --- Arrange ---
	var out strings.Builder
	tu := New(&out, catalog.NewSession(), render.New(render.FormatText, ""), Options{})
	boom := errors.New("no tty")
	tu.spin = func(string, func()) error { return boom }

	// --- Act ---
	err := tu.loadPath(testContext(), "courses.csv")

	// --- Assert ---
	require.ErrorIs(t, err, boom)
	assert.EqualError(t, err, "loading courses.csv: no tty")
	assert.Empty(t, out.String(), "a failed spinner must not print a load result")
}

func TestNonEmpty(t *testing.T) {
	validate := nonEmpty("course number")
	assert.EqualError(t, validate("  "), "course number cannot be empty")
	assert.NoError(t, validate("CS100"))
}

func TestIgnoreAbort(t *testing.T) {
	assert.NoError(t, ignoreAbort(huh.ErrUserAborted))
	boom := errors.New("boom")
	assert.Equal(t, boom, ignoreAbort(boom))
}

func TestThemeFor(t *testing.T) {
	assert.NotNil(t, themeFor(""))
	assert.NotNil(t, themeFor("212"))
}
