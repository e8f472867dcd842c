// Package pathguard confines file system access to a declared base directory.
package pathguard

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/woicw/wr-ai/internal/errors"
)

// Validate resolves path and baseDir to absolute, cleaned form with symlinks
// evaluated on the longest existing prefix of each, and returns the resolved
// path. It fails with *errors.PathTraversalError unless the resolved path is
// baseDir itself or lies beneath it.
//
// Relative paths are resolved against the working directory, not baseDir.
func Validate(path, baseDir string) (string, error) {
	resolvedBase, err := resolve(baseDir)
	if err != nil {
		return "", errors.Wrapf(err, "resolving base %s", baseDir)
	}
	resolved, err := resolve(path)
	if err != nil {
		return "", errors.Wrapf(err, "resolving %s", path)
	}

	if resolved == resolvedBase || strings.HasPrefix(resolved, withSeparator(resolvedBase)) {
		return resolved, nil
	}
	return "", &errors.PathTraversalError{Path: path, Base: baseDir}
}

func withSeparator(dir string) string {
	if strings.HasSuffix(dir, string(filepath.Separator)) {
		return dir
	}
	return dir + string(filepath.Separator)
}

// resolve makes p absolute and evaluates symlinks on its longest existing
// prefix. The non-existent remainder is appended unchanged, so a destination
// that has not been written yet still resolves through any symlinked parent.
func resolve(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}

	existing := abs
	var rest []string
	for {
		if _, err := os.Lstat(existing); err == nil {
			break
		}
		parent := filepath.Dir(existing)
		if parent == existing {
			return abs, nil
		}
		rest = append(rest, filepath.Base(existing))
		existing = parent
	}

	target, err := filepath.EvalSymlinks(existing)
	if err != nil {
		return "", err
	}
	for i := len(rest) - 1; i >= 0; i-- {
		target = filepath.Join(target, rest[i])
	}
	return target, nil
}

// Guard validates paths against a fixed source and destination root.
type Guard struct {
	SourceRoot string
	DestRoot   string
}

// New returns a Guard for the given roots.
func New(sourceRoot, destRoot string) *Guard {
	return &Guard{SourceRoot: sourceRoot, DestRoot: destRoot}
}

// Source validates a path that is about to be read.
func (g *Guard) Source(p string) (string, error) {
	return Validate(p, g.SourceRoot)
}

// Dest validates a path that is about to be written.
func (g *Guard) Dest(p string) (string, error) {
	return Validate(p, g.DestRoot)
}
