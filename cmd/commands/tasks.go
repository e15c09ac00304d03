package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/todo/internal/tasks"
)

// NewAddCommand returns the add subcommand.
func NewAddCommand() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Add a task",
		ArgsUsage: "<title...>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "description",
				Aliases: []string{"d"},
				Usage:   "Optional task description (Markdown)",
			},
		},
		Action: action(runAdd),
	}
}

// NewListCommand returns the list subcommand.
func NewListCommand() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List all tasks",
		Action:  action(runList),
	}
}

// NewShowCommand returns the show subcommand.
func NewShowCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show task details",
		ArgsUsage: "<id>",
		Action:    action(runShow),
	}
}

// NewUpdateCommand returns the update subcommand.
func NewUpdateCommand() *cli.Command {
	return &cli.Command{
		Name:      "update",
		Aliases:   []string{"edit"},
		Usage:     "Change the title or description of a task",
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "title",
				Aliases: []string{"t"},
				Usage:   "New title",
			},
			&cli.StringFlag{
				Name:    "description",
				Aliases: []string{"d"},
				Usage:   "New description",
			},
			&cli.BoolFlag{
				Name:  "clear-description",
				Usage: "Remove the description",
			},
		},
		Action: action(runUpdate),
	}
}

// NewDeleteCommand returns the delete subcommand.
func NewDeleteCommand() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Aliases:   []string{"rm"},
		Usage:     "Delete a task",
		ArgsUsage: "<id>",
		Action:    action(runDelete),
	}
}

// NewCompleteCommand returns the complete subcommand.
func NewCompleteCommand() *cli.Command {
	return &cli.Command{
		Name:      "complete",
		Aliases:   []string{"done"},
		Usage:     "Mark a task as complete",
		ArgsUsage: "<id>",
		Action:    action(runComplete),
	}
}

// NewIncompleteCommand returns the incomplete subcommand.
func NewIncompleteCommand() *cli.Command {
	return &cli.Command{
		Name:      "incomplete",
		Aliases:   []string{"undo"},
		Usage:     "Mark a task as incomplete",
		ArgsUsage: "<id>",
		Action:    action(runIncomplete),
	}
}

func runAdd(ctx context.Context, cmd *cli.Command, s *session) error {
	words := typedArgs(cmd)
	title := strings.TrimSpace(strings.Join(words, " "))
	description := cmd.String("description")

	if len(words) == 0 {
		if !s.canPrompt() {
			return usageErrorf("todo add [--description D] <title...>")
		}
		var err error
		title, err = ask(ctx, s.console, "Title: ", s.cfg.Prompt.MaxAttempts, tasks.ValidateTitle)
		if err != nil {
			return err
		}
		if !cmd.IsSet("description") {
			description, err = s.console.readLine(ctx, "Description (optional): ")
			if err != nil {
				return err
			}
		}
	}

	t, err := s.repo.Create(title, description)
	if err != nil {
		return fmt.Errorf("add task: %w", err)
	}
	s.logger.Debug("task created", "id", t.ID, "session_id", s.id)

	th, err := s.theme(cmd)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out(), "%s Task %d added: %s\n", th.success.Render(glyphDone), t.ID, t.Title)
	return nil
}

func runList(_ context.Context, cmd *cli.Command, s *session) error {
	format, err := s.outputFormat(cmd)
	if err != nil {
		return err
	}
	th, err := s.theme(cmd)
	if err != nil {
		return err
	}
	return renderList(s.out(), th, format, s.repo.List())
}

func runShow(ctx context.Context, cmd *cli.Command, s *session) error {
	format, err := s.outputFormat(cmd)
	if err != nil {
		return err
	}
	th, err := s.theme(cmd)
	if err != nil {
		return err
	}

	id, err := s.resolveID(ctx, cmd, "show")
	if err != nil {
		return err
	}
	t, ok := s.repo.Get(id)
	if !ok {
		return notFound(id)
	}
	return renderTask(s.out(), th, format, s.cfg.Output.MarkdownEnabled(), terminalWidth(s.out()), t)
}

func runUpdate(ctx context.Context, cmd *cli.Command, s *session) error {
	if cmd.IsSet("description") && cmd.Bool("clear-description") {
		return usageErrorf("--description and --clear-description are mutually exclusive")
	}

	id, err := s.resolveID(ctx, cmd, "update")
	if err != nil {
		return err
	}

	var u tasks.TaskUpdate
	if cmd.IsSet("title") {
		title := strings.TrimSpace(cmd.String("title"))
		u.Title = &title
	}
	if cmd.IsSet("description") {
		description := cmd.String("description")
		u.Description = &description
	}
	if cmd.Bool("clear-description") {
		empty := ""
		u.Description = &empty
	}

	if u.IsEmpty() {
		if !s.canPrompt() {
			return usageErrorf("todo update [--title T] [--description D | --clear-description] <id>")
		}
		current, ok := s.repo.Get(id)
		if !ok {
			return notFound(id)
		}
		u, err = promptUpdate(ctx, s, current)
		if err != nil {
			return err
		}
	}

	updated, err := s.repo.Update(id, u)
	if errors.Is(err, tasks.ErrNotFound) {
		return notFound(id)
	}
	if err != nil {
		return fmt.Errorf("update task %d: %w", id, err)
	}
	s.logger.Debug("task updated", "id", updated.ID, "session_id", s.id)

	fmt.Fprintf(s.out(), "Task %d updated.\n", updated.ID)
	return nil
}

// promptUpdate asks for both fields. An empty answer keeps the current value
// and "-" removes the description.
func promptUpdate(ctx context.Context, s *session, current tasks.Task) (tasks.TaskUpdate, error) {
	var u tasks.TaskUpdate

	title, err := ask(ctx, s.console,
		fmt.Sprintf("Title [%s] (enter keeps): ", current.Title),
		s.cfg.Prompt.MaxAttempts,
		func(in string) (*string, error) {
			if in == "" {
				return nil, nil
			}
			v, err := tasks.ValidateTitle(in)
			if err != nil {
				return nil, err
			}
			return &v, nil
		})
	if err != nil {
		return u, err
	}
	u.Title = title

	shown := current.Description
	if shown == "" {
		shown = "none"
	}
	in, err := s.console.readLine(ctx, fmt.Sprintf("Description [%s] (enter keeps, - clears): ", firstLine(shown)))
	if err != nil {
		return u, err
	}
	switch in {
	case "":
	case "-":
		empty := ""
		u.Description = &empty
	default:
		u.Description = &in
	}
	return u, nil
}

func runDelete(ctx context.Context, cmd *cli.Command, s *session) error {
	id, err := s.resolveID(ctx, cmd, "delete")
	if err != nil {
		return err
	}
	if !s.repo.Delete(id) {
		return notFound(id)
	}
	s.logger.Debug("task deleted", "id", id, "session_id", s.id)

	fmt.Fprintf(s.out(), "Task %d deleted.\n", id)
	return nil
}

func runComplete(ctx context.Context, cmd *cli.Command, s *session) error {
	return toggle(ctx, cmd, s, "mark complete", s.repo.MarkComplete)
}

func runIncomplete(ctx context.Context, cmd *cli.Command, s *session) error {
	return toggle(ctx, cmd, s, "mark incomplete", s.repo.MarkIncomplete)
}

func toggle(ctx context.Context, cmd *cli.Command, s *session, verb string, fn func(int) (tasks.Task, bool)) error {
	id, err := s.resolveID(ctx, cmd, verb)
	if err != nil {
		return err
	}
	t, ok := fn(id)
	if !ok {
		return notFound(id)
	}
	s.logger.Debug("task toggled", "id", t.ID, "completed", t.Completed, "session_id", s.id)

	fmt.Fprintf(s.out(), "Task %d marked as %s.\n", t.ID, statusLabel(t))
	return nil
}
