package logging

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether w is a terminal. It accepts *os.File and any
// wrapper exposing Fd().
func IsTTY(w io.Writer) bool {
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// SupportsColor reports whether log output to w should be colorized.
//
// NO_COLOR (https://no-color.org) and TERM=dumb disable color. FORCE_COLOR
// enables it even when w is not a terminal, which helps when piping
// through a pager. Otherwise color follows IsTTY.
func SupportsColor(w io.Writer) bool {
	return supportsColor(IsTTY(w))
}

func supportsColor(isTTY bool) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	if v, ok := os.LookupEnv("FORCE_COLOR"); ok && v != "0" {
		return true
	}
	return isTTY
}
