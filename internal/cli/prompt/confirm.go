package prompt

import (
	"fmt"
	"strings"
)

// Confirm asks a yes/no question. Only "y" or "yes" (any case) confirm;
// anything else declines. EOF returns ErrSelectionCancelled.
func (s *Selector) Confirm(message string) (bool, error) {
	fmt.Fprintf(s.writer, "%s [y/N] ", message)

	input, err := s.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(input) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// RetryOrCancel is asked after an empty selection. It returns true to retry
// and false to cancel; empty input retries.
func (s *Selector) RetryOrCancel(message string) (bool, error) {
	fmt.Fprintf(s.writer, "%s [R]etry / [c]ancel: ", message)

	input, err := s.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(input) {
	case "", "r", "retry":
		return true, nil
	default:
		return false, nil
	}
}
