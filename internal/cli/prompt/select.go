// Package prompt provides interactive CLI prompts for user input.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/woicw/wr-ai/internal/errors"
)

// Sentinel errors for prompts. ErrSelectionCancelled matches
// errors.ErrCancelled so callers can exit quietly.
var (
	ErrNoOptions          = errors.New("nothing to select from")
	ErrInvalidSelection   = errors.New("invalid selection")
	ErrSelectionCancelled = errors.Mark(errors.New("selection cancelled"), errors.ErrCancelled)
)

// Option is one entry of a multi-select list.
type Option struct {
	// Label is shown to the user.
	Label string
	// Value is returned when the option is picked.
	Value string
}

// findMultiFunc matches fuzzyfinder.FindMulti over a slice of options.
type findMultiFunc func(options []Option, header string) ([]int, error)

// Selector handles interactive prompts.
type Selector struct {
	reader    *bufio.Reader
	writer    io.Writer
	findMulti findMultiFunc
}

// NewSelector creates a new Selector using stdin and stdout.
func NewSelector() *Selector {
	return NewSelectorWithIO(os.Stdin, os.Stdout)
}

// NewSelectorWithIO creates a Selector with custom reader and writer for testing.
func NewSelectorWithIO(r io.Reader, w io.Writer) *Selector {
	return &Selector{
		reader:    bufio.NewReader(r),
		writer:    w,
		findMulti: fuzzyFindMulti,
	}
}

func fuzzyFindMulti(options []Option, header string) ([]int, error) {
	return fuzzyfinder.FindMulti(
		options,
		func(i int) string { return options[i].Label },
		fuzzyfinder.WithHeader(header),
	)
}

// readLine reads one trimmed line. EOF before any input is a cancellation.
func (s *Selector) readLine() (string, error) {
	line, err := s.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line == "" {
			return "", ErrSelectionCancelled
		}
		if !errors.Is(err, io.EOF) {
			return "", errors.Wrap(err, "reading input")
		}
	}
	return strings.TrimSpace(line), nil
}

// SelectSource prompts the user to choose one source directory.
//
// Returns:
//   - ErrNoOptions if the list is empty
//   - The only source if just one exists (auto-selects without prompting)
//   - The selected source based on user input, the first on empty input
//   - ErrInvalidSelection if the selection is out of range
//   - ErrSelectionCancelled if input is EOF (e.g., Ctrl+D)
func (s *Selector) SelectSource(sources []string) (string, error) {
	if len(sources) == 0 {
		return "", ErrNoOptions
	}
	if len(sources) == 1 {
		return sources[0], nil
	}

	fmt.Fprintln(s.writer, "Select a configuration source:")
	for i, name := range sources {
		fmt.Fprintf(s.writer, "  [%d] %s/\n", i+1, name)
	}
	fmt.Fprintf(s.writer, "Select [1]: ")

	input, err := s.readLine()
	if err != nil {
		return "", err
	}
	if input == "" {
		return sources[0], nil
	}

	n, err := strconv.Atoi(input)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidSelection, "%q is not a number", input)
	}
	if n < 1 || n > len(sources) {
		return "", errors.Wrapf(ErrInvalidSelection, "%d is out of range [1-%d]", n, len(sources))
	}
	return sources[n-1], nil
}

// MultiSelect opens a fuzzy finder over options and returns the values the
// user marked, in option order. Aborting the finder returns
// ErrSelectionCancelled. An empty result is not an error.
func (s *Selector) MultiSelect(header string, options []Option) ([]string, error) {
	if len(options) == 0 {
		return nil, ErrNoOptions
	}

	idx, err := s.findMulti(options, header)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, ErrSelectionCancelled
		}
		return nil, errors.Wrap(err, "interactive selection failed")
	}

	picked := make([]bool, len(options))
	for _, i := range idx {
		if i >= 0 && i < len(options) {
			picked[i] = true
		}
	}
	var values []string
	for i, ok := range picked {
		if ok {
			values = append(values, options[i].Value)
		}
	}
	return values, nil
}
