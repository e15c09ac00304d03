package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/todo/internal/tasks"
)

// Process exit codes.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitInvalid  = 2
	ExitNotFound = 3
)

var (
	errUsage           = errors.New("usage")
	errInvalidID       = errors.New("invalid task ID")
	errInputClosed     = errors.New("input closed")
	errTooManyAttempts = errors.New("too many invalid attempts")
	errNoTasks         = errors.New("no tasks available")
	errNoSession       = errors.New("no session in context")
)

// exitError carries an exit code alongside the original error.
type exitError struct {
	err  error
	code int
}

var _ cli.ExitCoder = (*exitError)(nil)

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }
func (e *exitError) ExitCode() int { return e.code }

func usageErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, args...))
}

// onUsageError reports flag parsing failures with the usage exit code.
func onUsageError(_ context.Context, cmd *cli.Command, err error, _ bool) error {
	return toExit(usageErrorf("%v (see '%s --help')", err, cmd.FullName()))
}

func notFound(id int) error {
	return fmt.Errorf("task %d: %w", id, tasks.ErrNotFound)
}

// toExit maps command errors onto exit codes so that success, not-found and
// invalid input stay distinguishable to the caller.
func toExit(err error) error {
	if err == nil {
		return nil
	}
	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		return err
	}
	return &exitError{err: err, code: exitCodeOf(err)}
}

func exitCodeOf(err error) int {
	switch {
	case errors.Is(err, tasks.ErrNotFound), errors.Is(err, errNoTasks):
		return ExitNotFound
	case errors.Is(err, tasks.ErrInvalidTask),
		errors.Is(err, errUsage),
		errors.Is(err, errInvalidID),
		errors.Is(err, errTooManyAttempts),
		errors.Is(err, errInputClosed):
		return ExitInvalid
	default:
		return ExitFailure
	}
}

// ExitCode returns the process status for an error returned by the root command.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return ExitFailure
}
