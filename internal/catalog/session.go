package catalog

import (
	"bufio"
	"context"
	"errors"
	"io"
	"iter"
	"strings"

	"github.com/specialistvlad/courseadvisor/internal/course"
	"github.com/specialistvlad/courseadvisor/internal/coursetree"
	"github.com/specialistvlad/courseadvisor/internal/ctxlog"
)

// ErrNotLoaded is returned by queries that need a successful, non-empty load.
var ErrNotLoaded = errors.New("please load data first")

// Result summarizes one Load call.
type Result struct {
	OK       bool    `yaml:"ok"`
	Source   string  `yaml:"source"`
	Accepted int     `yaml:"accepted"`
	Issues   []Issue `yaml:"issues,omitempty"`
}

// HasIssues reports whether the load produced any diagnostic.
func (r Result) HasIssues() bool {
	return len(r.Issues) > 0
}

// Session is the single owner of a course catalog and of the state of its
// most recent load. A Session is not safe for concurrent use.
type Session struct {
	tree *coursetree.Tree
	last Result
}

// NewSession creates a session with an empty catalog.
func NewSession() *Session {
	return &Session{tree: coursetree.New()}
}

// Load replaces the catalog with the contents of src. The previous catalog is
// discarded before src is read, so a failed load leaves the session empty.
func (s *Session) Load(ctx context.Context, src Source) Result {
	logger := ctxlog.FromContext(ctx).With("source", src.Name())
	logger.Debug("Catalog load started.")

	s.tree.Clear()
	res := Result{Source: src.Name()}

	rows, accepted, issues, err := s.ingest(src)
	if err != nil {
		s.tree.Clear()
		res.Issues = []Issue{accessIssue(src, errors.Is(err, errOpen), err)}
		s.last = res
		logger.Error("Catalog source could not be read.", "error", err)
		return res
	}
	logger.Debug("Catalog pass one complete.", "accepted", accepted, "malformed", len(issues))

	dangling := s.checkReferences(rows)
	logger.Debug("Catalog pass two complete.", "dangling", len(dangling))

	res.OK = true
	res.Accepted = accepted
	res.Issues = append(issues, dangling...)
	s.last = res

	logger.Info("Catalog loaded.", "accepted", accepted, "courses", s.tree.Len(), "issues", len(res.Issues))
	return res
}

var errOpen = errors.New("open failed")

// ingest is pass one. It returns every row with at least two fields so that
// pass two can check references without reading the source again.
func (s *Session) ingest(src Source) (rows []course.Row, accepted int, issues []Issue, err error) {
	rc, err := src.Open()
	if err != nil {
		return nil, 0, nil, errors.Join(errOpen, err)
	}
	defer rc.Close()

	r := bufio.NewReader(rc)
	for lineNo := 1; ; lineNo++ {
		raw, readErr := r.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, 0, nil, readErr
		}
		if readErr != nil && raw == "" {
			break
		}

		row, ok := course.SplitLine(lineNo, strings.TrimSuffix(raw, "\n"))
		if ok {
			if row.Fields >= 2 {
				rows = append(rows, row)
			}
			if c, recErr := row.Record(); recErr != nil {
				issues = append(issues, malformedIssue(recErr))
			} else {
				s.tree.Insert(c)
				accepted++
			}
		}

		if readErr != nil {
			break
		}
	}
	return rows, accepted, issues, nil
}

// checkReferences is pass two. It only reads the catalog. Each (course,
// prerequisite) pair is reported once, on the first line that names it.
func (s *Session) checkReferences(rows []course.Row) []Issue {
	type pair struct{ course, prereq string }

	var issues []Issue
	reported := make(map[pair]struct{})
	for _, row := range rows {
		for _, prereq := range row.Prerequisites {
			if s.tree.Contains(prereq) {
				continue
			}
			key := pair{row.Code, prereq}
			if _, dup := reported[key]; dup {
				continue
			}
			reported[key] = struct{}{}
			issues = append(issues, danglingIssue(row, prereq))
		}
	}
	return issues
}

// LastLoad returns the result of the most recent Load.
func (s *Session) LastLoad() Result {
	return s.last
}

// Ready reports whether the last load succeeded and produced at least one
// course. Listing and describing require a ready session.
func (s *Session) Ready() bool {
	return s.last.OK && !s.tree.IsEmpty()
}

// EnsureReady returns ErrNotLoaded unless the session is ready.
func (s *Session) EnsureReady() error {
	if !s.Ready() {
		return ErrNotLoaded
	}
	return nil
}

// IsEmpty reports whether the catalog holds no courses.
func (s *Session) IsEmpty() bool {
	return s.tree.IsEmpty()
}

// Len returns the number of distinct courses in the catalog.
func (s *Session) Len() int {
	return s.tree.Len()
}

// Clear empties the catalog and forgets the last load.
func (s *Session) Clear() {
	s.tree.Clear()
	s.last = Result{}
}

// Courses returns the catalog in ascending code order.
func (s *Session) Courses() iter.Seq[course.Course] {
	return s.tree.All()
}

// Lookup finds a course by code. The code is normalized first.
func (s *Session) Lookup(code string) (course.Course, bool) {
	return s.tree.Lookup(course.NormalizeCode(code))
}
