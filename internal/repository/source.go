package repository

import (
	"os"
	"slices"
	"strings"

	"github.com/woicw/wr-ai/internal/errors"
)

// DefaultSource is chosen automatically when a repository contains it.
const DefaultSource = "awesome-claude"

// ErrAmbiguousSource is returned when several sources exist and none can be chosen.
var ErrAmbiguousSource = errors.New("several configuration sources available")

// excluded top-level entries are never offered as configuration sources.
var excluded = []string{
	".git",
	".gitignore",
	"package.json",
	"package-lock.json",
	"node_modules",
	"README.md",
}

// ListSources returns the top-level directories of repoDir that can serve as
// a configuration source, in lexical order. Hidden directories are skipped.
func ListSources(repoDir string) ([]string, error) {
	entries, err := os.ReadDir(repoDir)
	if err != nil {
		return nil, errors.Wrapf(err, "reading repository %s", repoDir)
	}

	var sources []string
	for _, e := range entries {
		name := e.Name()
		if !e.IsDir() || strings.HasPrefix(name, ".") || slices.Contains(excluded, name) {
			continue
		}
		sources = append(sources, name)
	}
	return sources, nil
}

// Chooser picks one source among several. It returns errors.ErrCancelled
// when the user aborts.
type Chooser func(sources []string) (string, error)

// ResolveSource selects the source directory name within repoDir.
//
// An explicit request must name an existing source. Otherwise DefaultSource
// wins when present, a single source is used directly, and several sources
// are handed to choose. A nil choose with several sources is an error that
// lists the alternatives.
func ResolveSource(repoDir, requested string, choose Chooser) (string, error) {
	sources, err := ListSources(repoDir)
	if err != nil {
		return "", err
	}
	if len(sources) == 0 {
		return "", errors.Wrapf(errors.ErrNotFound, "no configuration sources found in repository")
	}

	if requested != "" {
		if slices.Contains(sources, requested) {
			return requested, nil
		}
		return "", &errors.NotFoundError{Token: requested, Category: "source", Alternatives: sources}
	}

	if slices.Contains(sources, DefaultSource) {
		return DefaultSource, nil
	}
	if len(sources) == 1 {
		return sources[0], nil
	}
	if choose == nil {
		return "", errors.WithDetailf(ErrAmbiguousSource,
			"available: %s; pass --source", strings.Join(sources, ", "))
	}
	return choose(sources)
}
