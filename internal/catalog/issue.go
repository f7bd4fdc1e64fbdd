package catalog

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/courseadvisor/internal/course"
)

// IssueKind classifies a load diagnostic.
type IssueKind int

const (
	// IssueAccess means the source could not be opened or read. It is the
	// only kind that fails a load.
	IssueAccess IssueKind = iota
	// IssueMalformed means a line was dropped by the record rules.
	IssueMalformed
	// IssueDanglingPrerequisite means a course names a prerequisite that is
	// not in the catalog. The course itself is still loaded.
	IssueDanglingPrerequisite
)

func (k IssueKind) String() string {
	switch k {
	case IssueAccess:
		return "access"
	case IssueMalformed:
		return "malformed"
	case IssueDanglingPrerequisite:
		return "dangling-prerequisite"
	default:
		return fmt.Sprintf("IssueKind(%d)", int(k))
	}
}

// MarshalText renders the kind by name in structured output.
func (k IssueKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Issue is one human-readable diagnostic produced by a load.
type Issue struct {
	Kind         IssueKind `yaml:"kind"`
	Line         int       `yaml:"line,omitempty"`
	Course       string    `yaml:"course,omitempty"`
	Prerequisite string    `yaml:"prerequisite,omitempty"`
	Message      string    `yaml:"message"`
}

func (i Issue) String() string {
	return i.Message
}

func accessIssue(src Source, openErr bool, err error) Issue {
	msg := fmt.Sprintf("Error: cannot open file '%s'.", src.Name())
	if !openErr {
		msg = fmt.Sprintf("Error: cannot read file '%s': %v.", src.Name(), err)
	}
	return Issue{Kind: IssueAccess, Message: msg}
}

func malformedIssue(err error) Issue {
	issue := Issue{Kind: IssueMalformed, Message: err.Error()}
	var lineErr *course.LineError
	if errors.As(err, &lineErr) {
		issue.Line = lineErr.Line
	}
	return issue
}

func danglingIssue(row course.Row, prereq string) Issue {
	return Issue{
		Kind:         IssueDanglingPrerequisite,
		Line:         row.Line,
		Course:       row.Code,
		Prerequisite: prereq,
		Message:      fmt.Sprintf("Course '%s' lists missing prerequisite '%s'.", row.Code, prereq),
	}
}
