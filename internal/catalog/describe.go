package catalog

import (
	"fmt"
	"strings"
)

// NotFound is the text Describe returns for an unknown course code.
const NotFound = "Course not found."

// Prerequisite is one resolved prerequisite reference. Title is empty and
// Missing is set when the code is not in the catalog.
type Prerequisite struct {
	Code    string `yaml:"code"`
	Title   string `yaml:"title,omitempty"`
	Missing bool   `yaml:"missing,omitempty"`
}

// Description is a course with its prerequisites resolved against the catalog.
type Description struct {
	Code          string         `yaml:"code"`
	Title         string         `yaml:"title"`
	Prerequisites []Prerequisite `yaml:"prerequisites"`
}

// String formats the description as display text, one line per entry.
func (d Description) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s - %s\n", d.Code, d.Title)
	if len(d.Prerequisites) == 0 {
		sb.WriteString("Prerequisites: None\n")
		return sb.String()
	}
	sb.WriteString("Prerequisites:\n")
	for _, p := range d.Prerequisites {
		if p.Missing {
			fmt.Fprintf(&sb, "  %s (missing from catalog)\n", p.Code)
		} else {
			fmt.Fprintf(&sb, "  %s - %s\n", p.Code, p.Title)
		}
	}
	return sb.String()
}

// Resolve looks up code, case-insensitively, and resolves each prerequisite
// in stored order. A missing prerequisite never fails the query.
func (s *Session) Resolve(code string) (Description, bool) {
	c, ok := s.Lookup(code)
	if !ok {
		return Description{}, false
	}

	d := Description{Code: c.Code, Title: c.Title, Prerequisites: []Prerequisite{}}
	for _, p := range c.Prerequisites {
		if pc, found := s.tree.Lookup(p); found {
			d.Prerequisites = append(d.Prerequisites, Prerequisite{Code: pc.Code, Title: pc.Title})
		} else {
			d.Prerequisites = append(d.Prerequisites, Prerequisite{Code: p, Missing: true})
		}
	}
	return d, true
}

// Describe returns the formatted description of code, or NotFound and false.
func (s *Session) Describe(code string) (string, bool) {
	d, ok := s.Resolve(code)
	if !ok {
		return NotFound, false
	}
	return d.String(), true
}
