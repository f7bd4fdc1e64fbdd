package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Exit codes used by the advisor binary.
const (
	ExitFailure = 1
	ExitUsage   = 2
	ExitIssues  = 3
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(err error) error {
	return &ExitError{Code: ExitUsage, Message: err.Error()}
}

func failure(format string, args ...any) error {
	return &ExitError{Code: ExitFailure, Message: fmt.Sprintf(format, args...)}
}

// usageArgs turns a cobra positional-argument check into a usage error.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}
