package render

import (
	"fmt"
	"io"
	"iter"

	"github.com/charmbracelet/lipgloss"
	"github.com/specialistvlad/courseadvisor/internal/catalog"
	"github.com/specialistvlad/courseadvisor/internal/course"
)

// DefaultAccent is the accent color used when none is configured.
const DefaultAccent = "99"

type textRenderer struct {
	accent string
}

type styles struct {
	code    lipgloss.Style
	heading lipgloss.Style
	missing lipgloss.Style
	issue   lipgloss.Style
}

// stylesFor binds the styles to w, so a writer that is not a terminal (a
// file, a pipe, a test buffer) receives plain text.
func (r textRenderer) stylesFor(w io.Writer) styles {
	accent := r.accent
	if accent == "" {
		accent = DefaultAccent
	}
	re := lipgloss.NewRenderer(w)
	return styles{
		code:    re.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true),
		heading: re.NewStyle().Bold(true),
		missing: re.NewStyle().Foreground(lipgloss.Color("196")),
		issue:   re.NewStyle().Foreground(lipgloss.Color("214")),
	}
}

func (r textRenderer) Result(w io.Writer, res catalog.Result) error {
	st := r.stylesFor(w)
	if !res.OK {
		if _, err := fmt.Fprintln(w, st.missing.Render("Load failed.")); err != nil {
			return err
		}
	}
	if len(res.Issues) == 0 {
		if res.OK {
			_, err := fmt.Fprintf(w, "File validated. Loaded %d courses.\n", res.Accepted)
			return err
		}
		return nil
	}

	if _, err := fmt.Fprintf(w, "\n%s\n", st.heading.Render(fmt.Sprintf("Validation issues (%d):", len(res.Issues)))); err != nil {
		return err
	}
	for _, issue := range res.Issues {
		if _, err := fmt.Fprintf(w, " - %s\n", st.issue.Render(issue.Message)); err != nil {
			return err
		}
	}
	return nil
}

func (r textRenderer) List(w io.Writer, courses iter.Seq[course.Course]) error {
	st := r.stylesFor(w)
	for c := range courses {
		if _, err := fmt.Fprintf(w, "%s, %s\n", st.code.Render(c.Code), c.Title); err != nil {
			return err
		}
	}
	return nil
}

func (r textRenderer) Describe(w io.Writer, d catalog.Description) error {
	st := r.stylesFor(w)
	if _, err := fmt.Fprintf(w, "%s - %s\n", st.code.Render(d.Code), d.Title); err != nil {
		return err
	}
	if len(d.Prerequisites) == 0 {
		_, err := fmt.Fprintln(w, "Prerequisites: None")
		return err
	}
	if _, err := fmt.Fprintln(w, "Prerequisites:"); err != nil {
		return err
	}
	for _, p := range d.Prerequisites {
		var err error
		if p.Missing {
			_, err = fmt.Fprintf(w, "  %s %s\n", p.Code, st.missing.Render("(missing from catalog)"))
		} else {
			_, err = fmt.Fprintf(w, "  %s - %s\n", st.code.Render(p.Code), p.Title)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (r textRenderer) NotFound(w io.Writer, code string) error {
	_, err := fmt.Fprintln(w, catalog.NotFound)
	return err
}
