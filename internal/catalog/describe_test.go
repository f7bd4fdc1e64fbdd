package catalog

import (
	"testing"

	"github.com/specialistvlad/courseadvisor/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	s := NewSession()
	loadLines(t, s, testutil.SampleCatalog...)

	testCases := []struct {
		name     string
		code     string
		expected string
	}{
		{
			name: "resolved prerequisites",
			code: "csci300",
			expected: "CSCI300 - Introduction to Algorithms\n" +
				"Prerequisites:\n" +
				"  CSCI200 - Data Structures\n" +
				"  MATH201 - Discrete Mathematics\n",
		},
		{
			name: "no prerequisites",
			code: "CSCI100",
			expected: "CSCI100 - Introduction to Computer Science\n" +
				"Prerequisites: None\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			text, ok := s.Describe(tc.code)
			require.True(t, ok)
			assert.Equal(t, tc.expected, text)
		})
	}
}

func TestDescribe_MissingPrerequisite(t *testing.T) {
	s := NewSession()
	loadLines(t, s, "CS300,Adv,CS200,CS999", "CS200,Data Structures")

	d, ok := s.Resolve("CS300")
	require.True(t, ok)
	assert.Equal(t, []Prerequisite{
		{Code: "CS200", Title: "Data Structures"},
		{Code: "CS999", Missing: true},
	}, d.Prerequisites)

	text, _ := s.Describe("CS300")
	assert.Equal(t, "CS300 - Adv\nPrerequisites:\n  CS200 - Data Structures\n  CS999 (missing from catalog)\n", text)
}

func TestDescribe_NotFound(t *testing.T) {
	s := NewSession()
	text, ok := s.Describe("CS100")
	assert.False(t, ok)
	assert.Equal(t, NotFound, text)

	loadLines(t, s, testutil.SampleCatalog...)
	text, ok = s.Describe("NOPE999")
	assert.False(t, ok)
	assert.NotEmpty(t, text)
}

// sessionWith loads lines into a fresh session.
func sessionWith(t *testing.T, lines ...string) *Session {
	t.Helper()
	s := NewSession()
	loadLines(t, s, lines...)
	return s
}
