package clibase

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"pizzachili/internal/version"
)

// UsageError marks a bad command line: the caller prints usage and exits 2.
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// NewCommand builds the cobra command for t. Flag parsing is disabled: every
// argument, including ones that start with '-', is positional. Help and
// version requests are resolved by the caller before Execute.
func NewCommand(t Tool, run func(cmd *cobra.Command, args []string) error) *cobra.Command {
	return &cobra.Command{
		Use:                t.UseLine(),
		Short:              t.Title,
		Version:            version.Version,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.RangeArgs(t.MinArgs(), t.MaxArgs())(cmd, args); err != nil {
				return &UsageError{Err: err}
			}
			return nil
		},
		RunE: run,
	}
}

// IsUsage reports whether err came from argument validation.
func IsUsage(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}

// Usagef returns a UsageError with a formatted message.
func Usagef(format string, a ...any) error {
	return &UsageError{Err: fmt.Errorf(format, a...)}
}
