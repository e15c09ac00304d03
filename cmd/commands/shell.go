package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"
	"mvdan.cc/sh/v3/shell"
)

// NewShellCommand returns the shell subcommand.
func NewShellCommand() *cli.Command {
	return &cli.Command{
		Name:   "shell",
		Usage:  "Run commands against one task list until exit",
		Action: action(runShell),
	}
}

func runShell(ctx context.Context, cmd *cli.Command, s *session) error {
	if s.inShell {
		return usageErrorf("already inside a shell session")
	}
	s.inShell = true
	defer func() { s.inShell = false }()

	s.logger.Debug("shell session started", "session_id", s.id)
	defer s.logger.Debug("shell session ended", "session_id", s.id)

	prompt := ""
	if s.console.tty {
		prompt = s.cfg.Prompt.Symbol
		fmt.Fprintln(s.out(), "Type 'help' for commands, 'exit' to quit.")
	}

	for {
		line, err := s.console.readLine(ctx, prompt)
		if errors.Is(err, errInputClosed) || errors.Is(err, context.Canceled) {
			if s.console.tty {
				fmt.Fprintln(s.out())
			}
			return nil
		}
		if err != nil {
			return err
		}

		args, err := shell.Fields(line, nil)
		if err != nil {
			fmt.Fprintf(s.console.errOut, "error: %v\n", err)
			continue
		}
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "exit", "quit":
			return nil
		}

		if err := runLine(ctx, cmd.Root().Name, args, s); err != nil {
			s.logger.Debug("shell command failed", "session_id", s.id, "args", args, "exit_code", ExitCode(err))
			fmt.Fprintf(s.console.errOut, "error: %v\n", err)
		}
	}
}

// runLine executes one shell line on a fresh command tree bound to the
// session carried by ctx.
func runLine(ctx context.Context, name string, args []string, s *session) error {
	line := NewRootCommand()
	line.Writer = s.console.out
	line.ErrWriter = s.console.errOut
	return line.Run(ctx, append([]string{name}, args...))
}
