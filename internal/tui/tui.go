package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/specialistvlad/courseadvisor/internal/catalog"
	"github.com/specialistvlad/courseadvisor/internal/ctxlog"
	"github.com/specialistvlad/courseadvisor/internal/fsutil"
	"github.com/specialistvlad/courseadvisor/internal/render"
)

const (
	actionLoad = "load"
	actionList = "list"
	actionShow = "show"
	actionExit = "exit"

	// otherPath is the file option that asks for a typed path.
	otherPath = ""

	searchDepth = 2
)

// Options configures a TUI run.
type Options struct {
	Accent     string
	DataFile   string
	SearchRoot string
}

// TUI runs the interactive menu against one session.
type TUI struct {
	out      io.Writer
	session  *catalog.Session
	renderer render.Renderer
	opts     Options
	theme    *huh.Theme

	// spin runs action while showing title.
	spin func(title string, action func()) error
}

// New creates a TUI. Answers are written to out through r.
func New(out io.Writer, session *catalog.Session, r render.Renderer, opts Options) *TUI {
	if opts.SearchRoot == "" {
		opts.SearchRoot = "."
	}
	return &TUI{out: out, session: session, renderer: r, opts: opts, theme: themeFor(opts.Accent), spin: runSpinner}
}

func runSpinner(title string, action func()) error {
	return spinner.New().Title(title).Action(action).Run()
}

// Run shows the main menu until the user picks Exit or aborts a form.
func (t *TUI) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	for {
		var action string
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("ABCU Advisor").
					Options(t.actions()...).
					Value(&action),
			),
		).WithTheme(t.theme)

		if err := form.Run(); err != nil {
			return ignoreAbort(err)
		}
		logger.Debug("TUI action selected.", "action", action)

		var err error
		switch action {
		case actionLoad:
			err = t.load(ctx)
		case actionList:
			fmt.Fprintln(t.out)
			err = t.renderer.List(t.out, t.session.Courses())
		case actionShow:
			err = t.show()
		default:
			return nil
		}
		if err != nil {
			return ignoreAbort(err)
		}
	}
}

// actions lists the menu entries; listing and describing are only offered
// once a load has succeeded.
func (t *TUI) actions() []huh.Option[string] {
	opts := []huh.Option[string]{huh.NewOption("📂 Load course data", actionLoad)}
	if t.session.Ready() {
		opts = append(opts,
			huh.NewOption("📋 Print course list (sorted)", actionList),
			huh.NewOption("🔎 Print course", actionShow),
		)
	}
	return append(opts, huh.NewOption("👋 Exit", actionExit))
}

func (t *TUI) load(ctx context.Context) error {
	var path string
	if candidates := t.candidateFiles(ctx); len(candidates) > 0 {
		options := make([]huh.Option[string], 0, len(candidates)+1)
		for _, c := range candidates {
			options = append(options, huh.NewOption(c, c))
		}
		options = append(options, huh.NewOption("Enter another path…", otherPath))

		err := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which course data file?").
				Options(options...).
				Value(&path),
		)).WithTheme(t.theme).Run()
		if err != nil {
			return err
		}
	}

	if path == otherPath {
		err := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Enter the course data filename").
				Placeholder("courses.txt").
				Value(&path).
				Validate(nonEmpty("file name")),
		)).WithTheme(t.theme).Run()
		if err != nil {
			return err
		}
	}

	return t.loadPath(ctx, path)
}

// loadPath loads path behind the spinner and prints the load result.
func (t *TUI) loadPath(ctx context.Context, path string) error {
	path = strings.TrimSpace(path)

	var res catalog.Result
	err := t.spin(fmt.Sprintf("Loading %s...", path), func() {
		res = t.session.Load(ctx, catalog.FileSource(path))
	})
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return t.renderer.Result(t.out, res)
}

func (t *TUI) show() error {
	var code string
	err := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Enter course number").
			Placeholder("CSCI300").
			Suggestions(courseCodes(t.session)).
			Value(&code).
			Validate(nonEmpty("course number")),
	)).WithTheme(t.theme).Run()
	if err != nil {
		return err
	}

	fmt.Fprintln(t.out)
	d, ok := t.session.Resolve(code)
	if !ok {
		return t.renderer.NotFound(t.out, code)
	}
	return t.renderer.Describe(t.out, d)
}

// candidateFiles offers the configured data file first, followed by catalog
// looking files under the search root.
func (t *TUI) candidateFiles(ctx context.Context) []string {
	var out []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, dup := seen[p]; p != "" && !dup {
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}

	add(t.opts.DataFile)
	found, err := fsutil.FindFiles(t.opts.SearchRoot, searchDepth, ".csv", ".txt")
	if err != nil {
		ctxlog.FromContext(ctx).Warn("Could not search for course data files.", "root", t.opts.SearchRoot, "error", err)
	}
	for _, p := range found {
		add(p)
	}
	return out
}

func courseCodes(s *catalog.Session) []string {
	var codes []string
	for c := range s.Courses() {
		codes = append(codes, c.Code)
	}
	return codes
}

func nonEmpty(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", what)
		}
		return nil
	}
}

func ignoreAbort(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	return err
}
