// Package workspace prepares a project directory to receive configuration:
// it creates the .claude directory and keeps it out of version control.
package workspace

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/woicw/wr-ai/internal/errors"
	"github.com/woicw/wr-ai/internal/paths"
	"github.com/woicw/wr-ai/pkg/fileutil"
)

// EnsureClaudeDir creates <projectRoot>/.claude if needed and returns its
// path.
func EnsureClaudeDir(projectRoot string) (string, error) {
	root, err := filepath.Abs(projectRoot)
	if err != nil {
		return "", errors.Wrapf(err, "resolving %s", projectRoot)
	}
	dir := paths.ProjectClaudeDir(root)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "creating %s", dir)
	}
	return dir, nil
}

// UpdateGitignore appends .claude to <projectRoot>/.gitignore when the file
// exists and does not already ignore it. A project without a .gitignore is
// left alone. It reports whether the file was changed.
func UpdateGitignore(projectRoot string) (bool, error) {
	path := filepath.Join(projectRoot, paths.GitignoreFile)

	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "checking %s", path)
	}

	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return false, errors.Wrapf(err, "reading %s", path)
	}
	if Ignores(data) {
		return false, nil
	}

	var buf bytes.Buffer
	buf.Write(data)
	if len(data) > 0 && !bytes.HasSuffix(data, []byte("\n")) {
		buf.WriteByte('\n')
	}
	buf.WriteString(paths.ClaudeDir + "\n")

	if err := fileutil.WriteFile(path, buf.Bytes(), info.Mode().Perm()); err != nil {
		return false, errors.Wrapf(err, "updating %s", path)
	}
	return true, nil
}

// Ignores reports whether gitignore content has a pattern covering the
// top-level .claude directory.
func Ignores(gitignore []byte) bool {
	s := bufio.NewScanner(bytes.NewReader(gitignore))
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		line = strings.TrimPrefix(line, "/")
		line = strings.TrimSuffix(line, "/")
		if line == paths.ClaudeDir {
			return true
		}
	}
	return false
}
