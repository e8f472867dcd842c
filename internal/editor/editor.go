// Package editor launches the user's preferred text editor.
package editor

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/woicw/wr-ai/internal/errors"
)

// Streams are the terminal streams handed to the editor process.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the process's own streams.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// Open edits path and waits for the editor to exit. The editor command may
// carry arguments, as in EDITOR="code --wait".
func Open(ctx context.Context, path string, s Streams) error {
	argv := strings.Fields(detectEditor())
	if len(argv) == 0 {
		return errors.New("no editor configured")
	}

	cmd := exec.CommandContext(ctx, argv[0], append(argv[1:], path)...)
	cmd.Stdin = s.In
	cmd.Stdout = s.Out
	cmd.Stderr = s.Err

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %s", argv[0])
	}
	return nil
}

// detectEditor picks $EDITOR, then $VISUAL, then nano, then vi.
func detectEditor() string {
	if editor := strings.TrimSpace(os.Getenv("EDITOR")); editor != "" {
		return editor
	}
	if visual := strings.TrimSpace(os.Getenv("VISUAL")); visual != "" {
		return visual
	}
	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}
	return "vi"
}
