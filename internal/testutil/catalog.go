package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteCatalog writes lines to a fresh catalog file inside a test-scoped
// temporary directory and returns its path.
func WriteCatalog(t *testing.T, lines ...string) string {
	t.Helper()
	return WriteFile(t, "courses.csv", strings.Join(lines, "\n")+"\n")
}

// WriteFile writes content to name inside a test-scoped temporary directory
// and returns the full path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600), "failed to set up test file")
	return path
}

// SampleCatalog is the ABCU sample course list used across tests.
var SampleCatalog = []string{
	"CSCI100,Introduction to Computer Science",
	"CSCI101,Introduction to Programming in C++,CSCI100",
	"CSCI200,Data Structures,CSCI101",
	"MATH201,Discrete Mathematics",
	"CSCI300,Introduction to Algorithms,CSCI200,MATH201",
	"CSCI301,Advanced Programming in C++,CSCI101",
	"CSCI350,Operating Systems,CSCI300",
	"CSCI400,Large Software Development,CSCI301,CSCI350",
}
