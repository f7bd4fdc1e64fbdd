// Package render writes load results, course listings and course descriptions
// to an output sink, either as display text or as YAML documents.
package render

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/specialistvlad/courseadvisor/internal/catalog"
	"github.com/specialistvlad/courseadvisor/internal/course"
)

// Format selects a Renderer implementation.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user-supplied output format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("invalid output format %q: must be 'text' or 'yaml'", s)
	}
}

// Renderer is an output sink for the advisor's three kinds of answers.
type Renderer interface {
	// Result reports the outcome and issue list of a load.
	Result(w io.Writer, res catalog.Result) error
	// List writes the sorted course listing.
	List(w io.Writer, courses iter.Seq[course.Course]) error
	// Describe writes one resolved course.
	Describe(w io.Writer, d catalog.Description) error
	// NotFound reports an unknown course code.
	NotFound(w io.Writer, code string) error
}

// New returns the renderer for format. accent is a lipgloss color used by
// the text renderer when it writes to a terminal.
func New(format Format, accent string) Renderer {
	if format == FormatYAML {
		return yamlRenderer{}
	}
	return textRenderer{accent: accent}
}
