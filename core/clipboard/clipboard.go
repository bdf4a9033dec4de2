// Package clipboard delivers exported markdown to wherever the user pastes
// from: the system clipboard, the terminal (OSC 52), a command or a file.
package clipboard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	sysclip "github.com/atotto/clipboard"
	"github.com/muesli/termenv"
)

// Clipboard writes text somewhere the user can paste it from.
type Clipboard interface {
	Name() string
	Copy(ctx context.Context, text string) error
}

var (
	ErrUnsupported = errors.New("no clipboard utility available")
	ErrNoCommand   = errors.New("no clipboard command configured")
	ErrNoFile      = errors.New("no output file configured")
)

// System uses the platform clipboard (xclip, xsel, wl-copy, pbcopy or the
// Windows API).
type System struct{}

func (System) Name() string { return "system" }

func (System) Copy(ctx context.Context, text string) error {
	if sysclip.Unsupported {
		return ErrUnsupported
	}
	done := make(chan error, 1)
	go func() { done <- sysclip.WriteAll(text) }()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// OSC52 asks the terminal emulator to set the clipboard. It works over SSH,
// but terminals that ignore OSC 52 drop the text silently.
type OSC52 struct {
	Out io.Writer
}

func (OSC52) Name() string { return "osc52" }

func (o OSC52) Copy(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	w := &errWriter{w: o.Out}
	if w.w == nil {
		w.w = os.Stdout
	}
	termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii)).Copy(text)
	return w.err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// Command pipes the text into an external program, e.g. "wl-copy" or
// "xclip -selection clipboard".
type Command struct {
	Args []string
}

// ParseCommand splits a command line on whitespace.
func ParseCommand(line string) Command {
	return Command{Args: strings.Fields(line)}
}

func (Command) Name() string { return "command" }

func (c Command) Copy(ctx context.Context, text string) error {
	if len(c.Args) == 0 {
		return ErrNoCommand
	}
	cmd := exec.CommandContext(ctx, c.Args[0], c.Args[1:]...)
	cmd.Stdin = strings.NewReader(text)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w: %s", c.Args[0], err, msg)
		}
		return fmt.Errorf("%s: %w", c.Args[0], err)
	}
	return nil
}

// File writes the text to a file, replacing its content.
type File struct {
	Path string
}

func (File) Name() string { return "file" }

func (f File) Copy(ctx context.Context, text string) error {
	if f.Path == "" {
		return ErrNoFile
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if dir := filepath.Dir(f.Path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return os.WriteFile(f.Path, []byte(text), 0644)
}
