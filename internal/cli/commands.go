package cli

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/courseadvisor/internal/app"
	"github.com/specialistvlad/courseadvisor/internal/catalog"
	"github.com/specialistvlad/courseadvisor/internal/shell"
	"github.com/specialistvlad/courseadvisor/internal/tui"
	"github.com/spf13/cobra"
)

func (c *command) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [FILE]",
		Short: "Print all courses in course-number order",
		Args:  usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.load(cmd.Context(), c.dataPath(args))
			if err != nil {
				return err
			}
			err = c.app.List(cmd.Context(), c.out)
			if errors.Is(err, catalog.ErrNotLoaded) {
				return notLoaded(res)
			}
			return err
		},
	}
}

func (c *command) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [-f FILE] CODE...",
		Short: "Print courses with their prerequisites resolved",
		Example: `  advisor show -f courses.csv CSCI300
  advisor show csci100 csci200`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.load(cmd.Context(), c.file)
			if err != nil {
				return err
			}
			allFound, err := c.app.Show(cmd.Context(), c.out, args...)
			if errors.Is(err, catalog.ErrNotLoaded) {
				return notLoaded(res)
			}
			if err != nil {
				return err
			}
			if !allFound {
				return &ExitError{Code: ExitFailure, Message: "one or more courses were not found"}
			}
			return nil
		},
	}
}

func (c *command) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [FILE]",
		Short: "Load a catalog and report malformed lines and missing prerequisites",
		Args:  usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.app.Load(cmd.Context(), c.dataPath(args))
			if errors.Is(err, app.ErrNoDataFile) {
				return usageError(err)
			}
			if rerr := c.app.Renderer().Result(c.out, res); rerr != nil {
				return rerr
			}
			if err != nil {
				return failure("%v", err)
			}
			if res.HasIssues() {
				return &ExitError{Code: ExitIssues, Message: fmt.Sprintf("%d issue(s) found", len(res.Issues))}
			}
			return nil
		},
	}
}

func (c *command) shellCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run the numbered advisor menu on standard input",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			sh := shell.New(c.in, c.out, c.app.Session(), c.app.Renderer())
			return sh.Run(c.app.Context(cmd.Context()))
		},
	}
}

func (c *command) tuiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive terminal interface",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := c.app.Config()
			dataFile := c.file
			if dataFile == "" {
				dataFile = cfg.DataFile
			}
			t := tui.New(c.out, c.app.Session(), c.app.Renderer(), tui.Options{
				Accent:   cfg.Accent,
				DataFile: dataFile,
			})
			return t.Run(c.app.Context(cmd.Context()))
		},
	}
}
