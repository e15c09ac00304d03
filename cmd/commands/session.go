package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/todo/internal/config"
	"github.com/dohr-michael/todo/internal/tasks"
)

// session is the state one process works on: one repository, the loaded
// config and the console. A shell reuses the same session for every line.
type session struct {
	id      string
	repo    *tasks.Repository
	cfg     *config.Config
	console *console
	logger  *slog.Logger
	inShell bool
}

type sessionKey struct{}

func withSession(ctx context.Context, s *session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

func sessionFrom(ctx context.Context) *session {
	s, _ := ctx.Value(sessionKey{}).(*session)
	return s
}

// setupSession is the root Before hook. It loads the config and creates the
// session unless the context already carries one.
func setupSession(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if sessionFrom(ctx) != nil {
		return ctx, nil
	}

	cfg, err := config.LoadOrDefault(cmd.String("config"))
	if err != nil {
		return ctx, &exitError{err: err, code: ExitInvalid}
	}

	root := cmd.Root()
	in, out, errOut := root.Reader, root.Writer, root.ErrWriter
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}

	level := cfg.Log.SlogLevel()
	if cmd.Bool("debug") {
		level = slog.LevelDebug
	}
	logger := newLogger(errOut, level)
	slog.SetDefault(logger)

	s := &session{
		id:      uuid.NewString(),
		repo:    tasks.NewRepository(),
		cfg:     cfg,
		console: newConsole(in, out, errOut),
		logger:  logger,
	}
	logger.Debug("session started", "session_id", s.id, "config", cmd.String("config"))
	return withSession(ctx, s), nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// action adapts a session-aware handler to a cli.ActionFunc and maps its
// error onto an exit code.
func action(fn func(ctx context.Context, cmd *cli.Command, s *session) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		s := sessionFrom(ctx)
		if s == nil {
			return toExit(errNoSession)
		}
		return toExit(fn(ctx, cmd, s))
	}
}

// canPrompt reports whether missing arguments may be asked for.
func (s *session) canPrompt() bool {
	return s.inShell || s.console.tty
}

func (s *session) out() io.Writer {
	return s.console.out
}

// outputFormat resolves the output format from the flag or the config.
func (s *session) outputFormat(cmd *cli.Command) (string, error) {
	format := s.cfg.Output.Format
	if cmd.IsSet("output") {
		format = cmd.String("output")
	}
	switch format {
	case config.FormatTable, config.FormatJSON, config.FormatYAML:
		return format, nil
	default:
		return "", usageErrorf("unknown output format %q (want table, json or yaml)", format)
	}
}

// useColor resolves the colour mode. NO_COLOR disables auto mode.
func (s *session) useColor(cmd *cli.Command) (bool, error) {
	mode := s.cfg.Output.Color
	if cmd.IsSet("color") {
		mode = cmd.String("color")
	}
	switch mode {
	case config.ColorAlways:
		return true, nil
	case config.ColorNever:
		return false, nil
	case config.ColorAuto:
		if os.Getenv("NO_COLOR") != "" {
			return false, nil
		}
		return isTerminal(s.console.out), nil
	default:
		return false, usageErrorf("unknown color mode %q (want auto, always or never)", mode)
	}
}

func (s *session) theme(cmd *cli.Command) (theme, error) {
	color, err := s.useColor(cmd)
	if err != nil {
		return theme{}, err
	}
	return newTheme(color), nil
}

// resolveID takes the task ID from the first argument, or asks for one from
// the current list when prompting is allowed.
func (s *session) resolveID(ctx context.Context, cmd *cli.Command, verb string) (int, error) {
	if args := typedArgs(cmd); len(args) > 0 {
		return parseID(args[0])
	}
	if !s.canPrompt() {
		return 0, usageErrorf("todo %s <id>", cmd.Name)
	}

	list := s.repo.List()
	if len(list) == 0 {
		return 0, errNoTasks
	}
	th, err := s.theme(cmd)
	if err != nil {
		return 0, err
	}
	renderChoices(s.out(), th, list)

	label := fmt.Sprintf("Task ID to %s: ", verb)
	return ask(ctx, s.console, label, s.cfg.Prompt.MaxAttempts, func(in string) (int, error) {
		id, err := parseID(in)
		if err != nil {
			return 0, err
		}
		if _, ok := s.repo.Get(id); !ok {
			return 0, fmt.Errorf("no task with ID %d", id)
		}
		return id, nil
	})
}

// typedArgs returns the positional arguments of cmd as they were typed,
// whitespace trimmed. cli stops collecting arguments at the first blank one,
// so a blank title or ID would read as no argument at all. The root command
// stops parsing at the subcommand name, which leaves the raw tokens on it.
func typedArgs(cmd *cli.Command) []string {
	root := cmd.Root()
	raw := root.Args().Slice()
	if root == cmd || len(raw) == 0 || !cmd.HasName(raw[0]) {
		return cmd.Args().Slice()
	}

	var args []string
	for i := 1; i < len(raw); i++ {
		tok := strings.TrimSpace(raw[i])
		switch {
		case tok == "--":
			for _, rest := range raw[i+1:] {
				args = append(args, strings.TrimSpace(rest))
			}
			return args
		case len(tok) < 2 || tok[0] != '-':
			args = append(args, tok)
		case tok[1] != '-' && !unicode.IsLetter(rune(tok[1])):
			// "-5" is a value, not a flag
			args = append(args, tok)
		case !strings.Contains(tok, "=") && takesValue(cmd, strings.TrimLeft(tok, "-")):
			i++
		}
	}
	return args
}

// takesValue reports whether the flag called name, local or inherited, reads
// the next token as its value.
func takesValue(cmd *cli.Command, name string) bool {
	for _, c := range cmd.Lineage() {
		for _, f := range c.Flags {
			if !slices.Contains(f.Names(), name) {
				continue
			}
			b, ok := f.(interface{ IsBoolFlag() bool })
			return !ok || !b.IsBoolFlag()
		}
	}
	return false
}
