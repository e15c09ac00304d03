package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/todo/internal/config"
)

// NewRootCommand returns the top-level CLI command.
func NewRootCommand() *cli.Command {
	root := &cli.Command{
		Name:  "todo",
		Usage: "Manage an in-memory task list",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (env TODO_CONFIG)",
				Value:   config.ConfigPath(),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output format: table, json or yaml",
				Sources: cli.EnvVars("TODO_OUTPUT"),
			},
			&cli.StringFlag{
				Name:    "color",
				Usage:   "Colour mode: auto, always or never",
				Sources: cli.EnvVars("TODO_COLOR"),
			},
		},
		Before: setupSession,
		Action: runRoot,
		// Exit codes are handled by main and by the shell loop.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		OnUsageError:   onUsageError,
		Commands: []*cli.Command{
			NewAddCommand(),
			NewListCommand(),
			NewShowCommand(),
			NewUpdateCommand(),
			NewDeleteCommand(),
			NewCompleteCommand(),
			NewIncompleteCommand(),
			NewShellCommand(),
		},
	}
	for _, sub := range root.Commands {
		sub.OnUsageError = onUsageError
	}
	return root
}

// runRoot only runs when no subcommand matched the first argument.
func runRoot(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Present() {
		return toExit(usageErrorf("unknown command %q (see '%s --help')", cmd.Args().First(), cmd.Name))
	}
	return cli.ShowRootCommandHelp(cmd)
}
