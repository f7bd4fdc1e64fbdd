// Package shell implements the advisor's line-oriented menu: load a catalog
// file, print the sorted course list, print one course, exit. It reads one
// answer per line, so it works the same on a terminal and on piped input.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/courseadvisor/internal/catalog"
	"github.com/specialistvlad/courseadvisor/internal/ctxlog"
	"github.com/specialistvlad/courseadvisor/internal/render"
)

const menu = `
ABCU Advisor Menu
  1. Load Data
  2. Print Course List (Sorted)
  3. Print Course
  9. Exit
Enter choice: `

// Shell drives one session from a line reader.
type Shell struct {
	in       *bufio.Scanner
	out      io.Writer
	session  *catalog.Session
	renderer render.Renderer
}

// New creates a shell over session. Output goes through r.
func New(in io.Reader, out io.Writer, session *catalog.Session, r render.Renderer) *Shell {
	return &Shell{
		in:       bufio.NewScanner(in),
		out:      out,
		session:  session,
		renderer: r,
	}
}

// Run loops until the user exits or input ends. The returned error is
// reserved for output and input failures.
func (s *Shell) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Advisor shell started.")

	for {
		s.print(menu)
		choice, ok := s.readLine()
		if !ok {
			logger.Debug("Input closed, leaving shell.")
			return s.in.Err()
		}

		var err error
		switch choice {
		case "1":
			err = s.load(ctx)
		case "2":
			err = s.list()
		case "3":
			err = s.show()
		case "9":
			s.print("Goodbye.\n")
			return nil
		default:
			s.print("Invalid choice. Please select 1, 2, 3, or 9.\n")
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) load(ctx context.Context) error {
	s.print("Enter the course data filename (e.g., courses.txt): ")
	path, ok := s.readLine()
	if !ok {
		s.print("Input aborted.\n")
		return nil
	}

	res := s.session.Load(ctx, catalog.FileSource(path))
	return s.renderer.Result(s.out, res)
}

func (s *Shell) list() error {
	if !s.session.Ready() {
		s.print("Please load data first (Option 1).\n")
		return nil
	}
	s.print("\nCourse List (alphanumeric):\n")
	return s.renderer.List(s.out, s.session.Courses())
}

func (s *Shell) show() error {
	if !s.session.Ready() {
		s.print("Please load data first (Option 1).\n")
		return nil
	}
	s.print("Enter course number (e.g., CSCI300): ")
	code, ok := s.readLine()
	if !ok {
		s.print("Input aborted.\n")
		return nil
	}
	if code == "" {
		s.print("Please enter a non-empty course number.\n")
		return nil
	}

	d, found := s.session.Resolve(code)
	if !found {
		return s.renderer.NotFound(s.out, code)
	}
	return s.renderer.Describe(s.out, d)
}

func (s *Shell) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Shell) print(text string) {
	fmt.Fprint(s.out, text)
}
