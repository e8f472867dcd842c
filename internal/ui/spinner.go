package ui

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

var defaultFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner animates a message on a terminal while a long operation runs. On
// anything other than a terminal it prints the message once and stays
// silent.
type Spinner struct {
	w       io.Writer
	message string
	frames  []string
	tty     bool

	done    chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
	current int
	running bool
}

// NewSpinner creates a spinner writing to w.
func NewSpinner(w io.Writer, message string) *Spinner {
	return &Spinner{
		w:       w,
		message: message,
		frames:  defaultFrames,
		tty:     IsTerminal(w),
	}
}

// IsTerminal reports whether w is a terminal file.
func IsTerminal(w any) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// StdinIsTerminal reports whether standard input is interactive.
func StdinIsTerminal() bool {
	return IsTerminal(os.Stdin)
}

// Start begins the animation. Calling Start on a running spinner does
// nothing; a stopped spinner can be started again.
func (s *Spinner) Start() {
	if !s.tty {
		fmt.Fprintf(s.w, "%s...\n", s.message)
		return
	}

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	done := make(chan struct{})
	s.done = done
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				fmt.Fprint(s.w, "\r\033[K")
				return
			case <-ticker.C:
				s.mu.Lock()
				frame := s.frames[s.current%len(s.frames)]
				s.current++
				s.mu.Unlock()
				fmt.Fprintf(s.w, "\r%s %s", Bold.Render(frame), s.message)
			}
		}
	}()
}

// Stop ends the animation and clears the line. It is safe to call more
// than once.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.done)
	s.mu.Unlock()
	s.wg.Wait()
}

// StopWithMessage stops the spinner and prints message on its own line.
func (s *Spinner) StopWithMessage(message string) {
	s.Stop()
	fmt.Fprintln(s.w, message)
}
