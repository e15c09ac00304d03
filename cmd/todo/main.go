package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/todo/cmd/commands"
	"github.com/dohr-michael/todo/internal/config"
)

func main() {
	if err := config.LoadDotenv(config.DotenvPath()); err != nil {
		slog.Warn("failed to load .env", "error", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cmd := commands.NewRootCommand()
	if err := cmd.Run(ctx, os.Args); err != nil {
		var ec cli.ExitCoder
		if errors.As(err, &ec) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			cancel()
			os.Exit(ec.ExitCode())
		}
		slog.Error("fatal", "error", err)
		cancel()
		os.Exit(commands.ExitFailure)
	}
}
