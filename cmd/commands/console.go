package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/term"
)

// console reads lines from the session input and writes prompts and
// messages to the session output. Lines are read by a background goroutine
// so a blocked read never outlives a cancelled context.
type console struct {
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
	tty    bool

	once    sync.Once
	lines   chan string
	readErr error
}

func newConsole(in io.Reader, out, errOut io.Writer) *console {
	return &console{
		in:     bufio.NewReader(in),
		out:    out,
		errOut: errOut,
		tty:    isTerminal(in),
		lines:  make(chan string),
	}
}

func (c *console) start() {
	go func() {
		defer close(c.lines)
		for {
			line, err := c.in.ReadString('\n')
			if line != "" {
				c.lines <- strings.TrimRight(line, "\r\n")
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					c.readErr = err
				}
				return
			}
		}
	}()
}

// readLine prints label and waits for the next input line.
func (c *console) readLine(ctx context.Context, label string) (string, error) {
	c.once.Do(c.start)
	if label != "" {
		fmt.Fprint(c.out, label)
	}

	select {
	case line, ok := <-c.lines:
		if !ok {
			if c.readErr != nil {
				return "", fmt.Errorf("read input: %w", c.readErr)
			}
			return "", errInputClosed
		}
		return line, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func terminalWidth(v any) int {
	if f, ok := v.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return 80
}

// ask runs a read-validate-retry loop: parse is called on every line until it
// succeeds or maxAttempts lines have been rejected.
func ask[T any](ctx context.Context, c *console, label string, maxAttempts int, parse func(string) (T, error)) (T, error) {
	var zero T
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		line, err := c.readLine(ctx, label)
		if err != nil {
			return zero, err
		}
		v, err := parse(line)
		if err == nil {
			return v, nil
		}
		fmt.Fprintf(c.out, "  %v\n", err)
	}
	return zero, fmt.Errorf("%s: %w", strings.TrimSpace(strings.TrimSuffix(label, ": ")), errTooManyAttempts)
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", errInvalidID, s)
	}
	return id, nil
}
