// Package gate decides whether a merge needs user confirmation before it
// overwrites existing local content.
package gate

import (
	"fmt"
	"os"
	"strings"

	"github.com/woicw/wr-ai/internal/catalog"
	"github.com/woicw/wr-ai/internal/errors"
	"github.com/woicw/wr-ai/internal/selection"
)

// GlobalMessage is returned when the global wildcard meets existing content.
const GlobalMessage = "This merges the remote configuration into .claude (existing files are overwritten, local-only files are kept). Continue?"

// Message returns the confirmation prompt for a select-all of c.
func Message(c catalog.Category) string {
	if c.IsMap() {
		name := strings.ToUpper(c.String())
		return fmt.Sprintf("This merges the remote %s configuration into .claude (existing %s entries are overwritten). Continue?",
			name, name)
	}
	return fmt.Sprintf("This merges the remote %s into .claude (existing files are overwritten, local-only files are kept). Continue?",
		c.Plural())
}

// Check returns the confirmation message for plan against destRoot, or ""
// when none is needed. Only select-all choices can require confirmation,
// and only when the destination already holds something of that category.
// Categories are checked in catalog order after the global wildcard.
func Check(plan *selection.Plan, destRoot string) (string, error) {
	existing := make(map[catalog.Category]bool, len(catalog.All()))
	found := false
	for _, c := range catalog.All() {
		ok, err := hasLocal(c, destRoot)
		if err != nil {
			return "", err
		}
		existing[c] = ok
		found = found || ok
	}

	if plan.All && found {
		return GlobalMessage, nil
	}
	for _, c := range catalog.All() {
		if plan.Selection(c).All && existing[c] {
			return Message(c), nil
		}
	}
	return "", nil
}

// hasLocal reports whether destRoot holds at least one item of c: a
// non-empty category directory, or the map file.
func hasLocal(c catalog.Category, destRoot string) (bool, error) {
	path := c.Path(destRoot)
	if c.IsMap() {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			return true, nil
		case errors.Is(err, os.ErrNotExist):
			return false, nil
		default:
			return false, errors.Wrapf(err, "checking %s", path)
		}
	}

	entries, err := os.ReadDir(path)
	switch {
	case err == nil:
		return len(entries) > 0, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, errors.Wrapf(err, "reading %s", path)
	}
}
