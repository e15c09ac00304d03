package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/charmbracelet/glamour"
	"gopkg.in/yaml.v3"

	"github.com/dohr-michael/todo/internal/config"
	"github.com/dohr-michael/todo/internal/tasks"
)

const (
	glyphDone    = "✓"
	glyphPending = "○"
)

// theme holds the styles for console output. The zero-attribute styles of a
// colourless theme render text unchanged.
type theme struct {
	color   bool
	done    lipgloss.Style
	pending lipgloss.Style
	header  lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	border  lipgloss.Style
}

func newTheme(color bool) theme {
	if !color {
		plain := lipgloss.NewStyle()
		return theme{done: plain, pending: plain, header: plain, muted: plain, success: plain, border: plain}
	}
	return theme{
		color:   true,
		done:    lipgloss.NewStyle().Foreground(lipgloss.Color("#7EE2B8")),
		pending: lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")),
		header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#79C0FF")),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")),
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("#7EE2B8")).Bold(true),
		border:  lipgloss.NewStyle().Foreground(lipgloss.Color("#374151")),
	}
}

func (th theme) glyph(t tasks.Task) string {
	if t.Completed {
		return th.done.Render(glyphDone)
	}
	return th.pending.Render(glyphPending)
}

func statusLabel(t tasks.Task) string {
	if t.Completed {
		return "complete"
	}
	return "incomplete"
}

// renderList writes the whole list in the requested format.
func renderList(w io.Writer, th theme, format string, list []tasks.Task) error {
	switch format {
	case config.FormatJSON:
		return writeJSON(w, list)
	case config.FormatYAML:
		return writeYAML(w, list)
	}

	if len(list) == 0 {
		fmt.Fprintln(w, "No tasks found.")
		return nil
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(th.border).
		Headers("ID", "", "TITLE", "DESCRIPTION").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return th.header.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, task := range list {
		t.Row(strconv.Itoa(task.ID), th.glyph(task), task.Title, th.muted.Render(firstLine(task.Description)))
	}
	fmt.Fprintln(w, t.Render())

	suffix := "s"
	if len(list) == 1 {
		suffix = ""
	}
	fmt.Fprintf(w, "Total: %d task%s\n", len(list), suffix)
	return nil
}

// renderTask writes one task in the requested format. In table format the
// description goes through glamour when markdown is enabled.
func renderTask(w io.Writer, th theme, format string, markdown bool, width int, t tasks.Task) error {
	switch format {
	case config.FormatJSON:
		return writeJSON(w, t)
	case config.FormatYAML:
		return writeYAML(w, t)
	}

	fmt.Fprintf(w, "%s %s\n", th.header.Render("ID:    "), strconv.Itoa(t.ID))
	fmt.Fprintf(w, "%s %s\n", th.header.Render("Title: "), t.Title)
	fmt.Fprintf(w, "%s %s %s\n", th.header.Render("Status:"), th.glyph(t), statusLabel(t))

	if t.Description == "" {
		return nil
	}
	fmt.Fprintf(w, "\n%s\n", th.header.Render("Description:"))
	if markdown && th.color {
		rendered, err := renderMarkdown(t.Description, width)
		if err == nil {
			fmt.Fprint(w, rendered)
			return nil
		}
	}
	fmt.Fprintln(w, t.Description)
	return nil
}

// renderChoices prints the compact list shown before an ID prompt.
func renderChoices(w io.Writer, th theme, list []tasks.Task) {
	for _, t := range list {
		fmt.Fprintf(w, "  %s [%d] %s\n", th.glyph(t), t.ID, t.Title)
	}
}

func renderMarkdown(src string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	return r.Render(src)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
