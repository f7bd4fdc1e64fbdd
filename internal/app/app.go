package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/courseadvisor/internal/catalog"
	"github.com/specialistvlad/courseadvisor/internal/ctxlog"
	"github.com/specialistvlad/courseadvisor/internal/render"
)

// ErrNoDataFile is returned when a load is requested without a path and no
// data_file is configured.
var ErrNoDataFile = errors.New("no course data file given and no data_file configured")

// ErrLoadFailed is returned when the catalog source could not be read.
var ErrLoadFailed = errors.New("load failed")

// App encapsulates the application's dependencies, configuration and its one
// catalog session.
type App struct {
	config   *Config
	logger   *slog.Logger
	session  *catalog.Session
	renderer render.Renderer
}

// NewApp builds an App. Logs are written to logW, which should not be the
// writer used for command output.
func NewApp(logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.", "level", cfg.LogLevel, "format", cfg.LogFormat)

	return &App{
		config:   cfg,
		logger:   logger,
		session:  catalog.NewSession(),
		renderer: render.New(render.Format(cfg.Output), cfg.Accent),
	}
}

// Context returns ctx carrying the application's logger.
func (a *App) Context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}

// Config returns the resolved configuration.
func (a *App) Config() *Config { return a.config }

// Session returns the catalog session.
func (a *App) Session() *catalog.Session { return a.session }

// Renderer returns the renderer selected by the output format.
func (a *App) Renderer() render.Renderer { return a.renderer }

// Load loads the catalog from path, or from the configured data file when
// path is empty. A Result is returned even when the load fails; the error
// is ErrLoadFailed in that case.
func (a *App) Load(ctx context.Context, path string) (catalog.Result, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = a.config.DataFile
	}
	if path == "" {
		return catalog.Result{}, ErrNoDataFile
	}

	res := a.session.Load(a.Context(ctx), catalog.FileSource(path))
	if !res.OK {
		return res, fmt.Errorf("%w: %s", ErrLoadFailed, path)
	}
	return res, nil
}

// List writes the sorted course listing to w.
func (a *App) List(ctx context.Context, w io.Writer) error {
	if err := a.session.EnsureReady(); err != nil {
		return err
	}
	ctxlog.FromContext(a.Context(ctx)).Debug("Listing catalog.", "courses", a.session.Len())
	return a.renderer.List(w, a.session.Courses())
}

// Show writes the description of each code to w. It reports false when at
// least one code was not found; not-found codes are rendered, not returned
// as errors.
func (a *App) Show(ctx context.Context, w io.Writer, codes ...string) (bool, error) {
	if err := a.session.EnsureReady(); err != nil {
		return false, err
	}
	logger := ctxlog.FromContext(a.Context(ctx))

	allFound := true
	for _, code := range codes {
		d, ok := a.session.Resolve(code)
		if !ok {
			logger.Debug("Course not found.", "code", code)
			allFound = false
			if err := a.renderer.NotFound(w, code); err != nil {
				return false, err
			}
			continue
		}
		if err := a.renderer.Describe(w, d); err != nil {
			return false, err
		}
	}
	return allFound, nil
}
