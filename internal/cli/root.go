package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/specialistvlad/courseadvisor/internal/app"
	"github.com/specialistvlad/courseadvisor/internal/catalog"
	"github.com/specialistvlad/courseadvisor/internal/config"
	"github.com/specialistvlad/courseadvisor/internal/ctxlog"
	"github.com/specialistvlad/courseadvisor/internal/render"
	"github.com/spf13/cobra"
)

// command carries the state shared by every subcommand of one invocation.
type command struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	flags app.Config
	file  string
	app   *app.App
}

// NewRootCommand builds the advisor command tree. Command output goes to
// out; logs and load diagnostics of one-shot commands go to errOut.
func NewRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	c := &command{in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "advisor",
		Short: "Browse the ABCU course catalog and its prerequisites",
		Long: `advisor loads a course catalog (CODE,Title[,PREREQ...] per line), reports
malformed lines and missing prerequisites, and prints the catalog in course
order or a single course with its prerequisites resolved.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&c.flags.ConfigPath, "config", "", "Path to an HCL config file (default \""+config.DefaultPath+"\" if present).")
	pf.StringVarP(&c.file, "file", "f", "", "Course data file. Overrides data_file from the config.")
	pf.StringVar(&c.flags.LogLevel, "log-level", "", "Logging level: 'debug', 'info', 'warn', 'error'.")
	pf.StringVar(&c.flags.LogFormat, "log-format", "", "Log output format: 'text' or 'json'.")
	pf.StringVarP(&c.flags.Output, "output", "o", "", "Output format: 'text' or 'yaml'.")

	root.AddCommand(
		c.listCommand(),
		c.showCommand(),
		c.validateCommand(),
		c.shellCommand(),
		c.tuiCommand(),
	)
	return root
}

// setup resolves configuration once the flags are parsed.
func (c *command) setup(cmd *cobra.Command, _ []string) error {
	bootstrap := ctxlog.WithLogger(cmd.Context(), slog.New(slog.NewTextHandler(c.errOut, &slog.HandlerOptions{Level: slog.LevelWarn})))

	cfg, err := app.ResolveConfig(bootstrap, config.NewLoader(), c.flags)
	if err != nil {
		return usageError(err)
	}
	c.app = app.NewApp(c.errOut, cfg)
	return nil
}

// dataPath picks the catalog file: positional argument, then --file; an
// empty result defers to the configured data_file.
func (c *command) dataPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return c.file
}

// load runs a load for a one-shot command. Diagnostics go to errOut in
// text form so stdout only carries the answer.
func (c *command) load(ctx context.Context, path string) (catalog.Result, error) {
	res, err := c.app.Load(ctx, path)
	if errors.Is(err, app.ErrNoDataFile) {
		return res, usageError(err)
	}
	if res.HasIssues() || err != nil {
		if rerr := render.New(render.FormatText, c.app.Config().Accent).Result(c.errOut, res); rerr != nil {
			return res, rerr
		}
	}
	if err != nil {
		return res, failure("%v", err)
	}
	return res, nil
}

func notLoaded(res catalog.Result) error {
	return failure("catalog %s contains no courses", res.Source)
}
