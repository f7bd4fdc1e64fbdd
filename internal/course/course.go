// internal/course/course.go
package course

import (
	"slices"
	"strings"
)

// Course is a single catalog entry keyed by its normalized code.
type Course struct {
	Code          string   `yaml:"code"`
	Title         string   `yaml:"title"`
	Prerequisites []string `yaml:"prerequisites,omitempty"`
}

// asciiSpace is the set of bytes trimmed from fields. Other bytes, including
// Unicode spaces and invalid UTF-8, are part of the field.
const asciiSpace = " \t\r\n\v\f"

// TrimField removes leading and trailing ASCII whitespace.
func TrimField(s string) string {
	return strings.Trim(s, asciiSpace)
}

// NormalizeCode trims a course code and folds a-z to uppercase so that
// lookups are case-insensitive from the caller's point of view. Every other
// byte is kept as is, so distinct codes never collapse into one.
func NormalizeCode(code string) string {
	code = TrimField(code)
	for i := 0; i < len(code); i++ {
		if 'a' <= code[i] && code[i] <= 'z' {
			return upperASCII(code, i)
		}
	}
	return code
}

func upperASCII(s string, from int) string {
	b := []byte(s)
	for i := from; i < len(b); i++ {
		if 'a' <= b[i] && b[i] <= 'z' {
			b[i] -= 'a' - 'A'
		}
	}
	return string(b)
}

// Clone returns a deep copy that shares no memory with c.
func (c Course) Clone() Course {
	c.Prerequisites = slices.Clone(c.Prerequisites)
	return c
}
