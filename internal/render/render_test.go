package render

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/specialistvlad/courseadvisor/internal/catalog"
	"github.com/specialistvlad/courseadvisor/internal/ctxlog"
	"github.com/specialistvlad/courseadvisor/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func loadedSession(t *testing.T, lines ...string) (*catalog.Session, catalog.Result) {
	t.Helper()
	s := catalog.NewSession()
	ctx := ctxlog.WithLogger(context.Background(), ctxlog.Discard())
	res := s.Load(ctx, catalog.ReaderSource("test.csv", strings.NewReader(strings.Join(lines, "\n"))))
	return s, res
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YAML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	_, err = ParseFormat("xml")
	assert.ErrorContains(t, err, "invalid output format")
}

func TestText_List(t *testing.T) {
	s, _ := loadedSession(t, "CS300,Algorithms", "CS100,Intro")
	var buf bytes.Buffer

	require.NoError(t, New(FormatText, "").List(&buf, s.Courses()))
	assert.Equal(t, "CS100, Intro\nCS300, Algorithms\n", buf.String())
}

func TestText_DescribeMatchesSessionDescribe(t *testing.T) {
	s, _ := loadedSession(t, testutil.SampleCatalog...)
	s2, _ := loadedSession(t, "CS300,Adv,CS999")

	for _, tc := range []struct {
		s    *catalog.Session
		code string
	}{{s, "CSCI400"}, {s, "MATH201"}, {s2, "CS300"}} {
		d, ok := tc.s.Resolve(tc.code)
		require.True(t, ok)
		want, _ := tc.s.Describe(tc.code)

		var buf bytes.Buffer
		require.NoError(t, New(FormatText, "212").Describe(&buf, d))
		assert.Equal(t, want, buf.String())
	}
}

func TestText_Result(t *testing.T) {
	testCases := []struct {
		name     string
		res      catalog.Result
		expected string
	}{
		{
			name:     "clean load",
			res:      catalog.Result{OK: true, Accepted: 8},
			expected: "File validated. Loaded 8 courses.\n",
		},
		{
			name: "load with issues",
			res: catalog.Result{OK: true, Accepted: 1, Issues: []catalog.Issue{
				{Message: "Line 2: missing course title."},
			}},
			expected: "\nValidation issues (1):\n - Line 2: missing course title.\n",
		},
		{
			name: "failed load",
			res: catalog.Result{Issues: []catalog.Issue{
				{Kind: catalog.IssueAccess, Message: "Error: cannot open file 'x.csv'."},
			}},
			expected: "Load failed.\n\nValidation issues (1):\n - Error: cannot open file 'x.csv'.\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, New(FormatText, "").Result(&buf, tc.res))
			assert.Equal(t, tc.expected, buf.String())
		})
	}
}

func TestText_NotFound(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(FormatText, "").NotFound(&buf, "NOPE"))
	assert.Equal(t, "Course not found.\n", buf.String())
}

func TestYAML_List(t *testing.T) {
	s, _ := loadedSession(t, "CS200,Data Structures,CS100", "CS100,Intro")
	var buf bytes.Buffer
	require.NoError(t, New(FormatYAML, "").List(&buf, s.Courses()))

	var got []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "CS100", got[0]["code"])
	assert.NotContains(t, got[0], "prerequisites")
	assert.Equal(t, []any{"CS100"}, got[1]["prerequisites"])
}

func TestYAML_DescribeAndResult(t *testing.T) {
	s, res := loadedSession(t, "CS300,Adv,CS999")
	d, ok := s.Resolve("CS300")
	require.True(t, ok)

	var buf bytes.Buffer
	require.NoError(t, New(FormatYAML, "").Describe(&buf, d))
	assert.Contains(t, buf.String(), "code: CS999\n")
	assert.Contains(t, buf.String(), "missing: true\n")

	buf.Reset()
	require.NoError(t, New(FormatYAML, "").Result(&buf, res))
	assert.Contains(t, buf.String(), "kind: dangling-prerequisite\n")
	assert.Contains(t, buf.String(), "accepted: 1\n")

	buf.Reset()
	require.NoError(t, New(FormatYAML, "").NotFound(&buf, "X1"))
	assert.Equal(t, "code: X1\nfound: false\n", buf.String())
}
