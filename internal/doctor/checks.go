package doctor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/woicw/wr-ai/internal/catalog"
	"github.com/woicw/wr-ai/internal/config"
	"github.com/woicw/wr-ai/internal/errors"
	"github.com/woicw/wr-ai/internal/git"
	"github.com/woicw/wr-ai/internal/logging"
	"github.com/woicw/wr-ai/internal/paths"
	"github.com/woicw/wr-ai/internal/repository"
	"github.com/woicw/wr-ai/internal/workspace"
	"github.com/woicw/wr-ai/pkg/fileutil"
)

// GitCheck verifies that git is on PATH.
type GitCheck struct {
	lookPath func(string) (string, error)
}

var _ Check = (*GitCheck)(nil)

// NewGitCheck creates a GitCheck using exec.LookPath.
func NewGitCheck() *GitCheck {
	return &GitCheck{lookPath: exec.LookPath}
}

// Name returns the unique identifier for this check.
func (c *GitCheck) Name() string { return "git" }

// Category returns the grouping for this check.
func (c *GitCheck) Category() string { return "environment" }

// Run looks up the git executable.
func (c *GitCheck) Run(_ context.Context) *CheckResult {
	result := newResult(c)
	path, err := c.lookPath("git")
	if err != nil {
		result.Status = SeverityError
		result.Message = "git not found on PATH"
		result.FixHint = "install git; templates are fetched with it"
		return result
	}
	result.Details["path"] = path
	result.Message = "git found"
	return result
}

// ConfigCheck validates the config file and its permissions.
type ConfigCheck struct {
	store *config.FileStore
}

var _ Check = (*ConfigCheck)(nil)

// NewConfigCheck creates a check for the config file at path. An empty path
// selects the default location.
func NewConfigCheck(path string) *ConfigCheck {
	return &ConfigCheck{store: config.NewFileStore(path)}
}

// Name returns the unique identifier for this check.
func (c *ConfigCheck) Name() string { return "config-file" }

// Category returns the grouping for this check.
func (c *ConfigCheck) Category() string { return "config" }

// Run loads and validates the config file.
func (c *ConfigCheck) Run(_ context.Context) *CheckResult {
	result := newResult(c)
	path := c.store.Path()
	result.Details["path"] = path

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		result.Status = SeverityInfo
		result.Message = "no config file, defaults in use"
		result.Details["origin"] = config.DefaultOrigin
		return result
	}
	if err != nil {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("cannot stat config file: %v", err)
		return result
	}

	cfg, err := c.store.Read()
	if err != nil {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("cannot read config file: %v", err)
		result.FixHint = "run: wr-ai config edit"
		return result
	}
	if errs := config.Validate(cfg); len(errs) > 0 {
		msgs := make([]string, 0, len(errs))
		for _, e := range errs {
			msgs = append(msgs, e.Error())
		}
		result.Status = SeverityError
		result.Message = strings.Join(msgs, "; ")
		result.FixHint = "run: wr-ai config edit"
		return result
	}

	origin := cfg.Origin
	if origin == "" {
		origin = config.DefaultOrigin
	}
	result.Details["origin"] = logging.MaskURL(origin)

	// The origin may embed a token, so the file should stay private.
	if runtime.GOOS != "windows" && info.Mode().Perm()&0o077 != 0 {
		result.Status = SeverityWarning
		result.Message = fmt.Sprintf("config file is accessible by other users (%04o)", info.Mode().Perm())
		result.FixHint = "chmod 600 " + path
		return result
	}

	result.Message = "config file is valid"
	return result
}

// CacheCheck inspects the cached clone of the configured origin.
type CacheCheck struct {
	dir string
}

var _ Check = (*CacheCheck)(nil)

// NewCacheCheck creates a check for the clone cached in dir.
func NewCacheCheck(dir string) *CacheCheck {
	return &CacheCheck{dir: dir}
}

// Name returns the unique identifier for this check.
func (c *CacheCheck) Name() string { return "template-cache" }

// Category returns the grouping for this check.
func (c *CacheCheck) Category() string { return "cache" }

// Run reports the cached commit and the source directories it offers.
func (c *CacheCheck) Run(ctx context.Context) *CheckResult {
	result := newResult(c)
	result.Details["dir"] = c.dir

	if !fileutil.Exists(c.dir) {
		result.Status = SeverityInfo
		result.Message = "templates not fetched yet"
		result.FixHint = "run: wr-ai update"
		return result
	}
	if err := git.ValidateRemote(c.dir); err != nil {
		result.Status = SeverityWarning
		result.Message = "cache directory is not a git repository"
		result.FixHint = "run: wr-ai update to clone it again"
		return result
	}

	commit, err := git.HeadCommit(ctx, c.dir)
	if err != nil {
		result.Status = SeverityWarning
		result.Message = fmt.Sprintf("cannot read cached commit: %v", err)
		result.FixHint = "run: wr-ai clear, then wr-ai update"
		return result
	}
	result.Details["commit"] = commit

	sources, err := repository.ListSources(c.dir)
	if err == nil {
		result.Details["sources"] = sources
	}
	if len(sources) == 0 {
		result.Status = SeverityWarning
		result.Message = "cached repository has no source directories"
		result.FixHint = "check the origin with: wr-ai config get origin"
		return result
	}

	result.Message = fmt.Sprintf("templates cached at %s", commit)
	return result
}

// fileResult is the validation result for a single project file.
type fileResult struct {
	Path    string `json:"path"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ProjectCheck inspects a project's .claude directory.
type ProjectCheck struct {
	root string
}

var _ Check = (*ProjectCheck)(nil)

// NewProjectCheck creates a check for the project at root.
func NewProjectCheck(root string) *ProjectCheck {
	return &ProjectCheck{root: root}
}

// Name returns the unique identifier for this check.
func (c *ProjectCheck) Name() string { return "project" }

// Category returns the grouping for this check.
func (c *ProjectCheck) Category() string { return "project" }

// Run validates the MCP and LSP files, checks that .claude is writable and
// that .gitignore covers it.
func (c *ProjectCheck) Run(_ context.Context) *CheckResult {
	result := newResult(c)
	dir := paths.ProjectClaudeDir(c.root)
	result.Details["dir"] = dir

	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		result.Status = SeverityInfo
		result.Message = ".claude not present"
		result.FixHint = "run: wr-ai init"
		return result
	}
	if err != nil || !info.IsDir() {
		result.Status = SeverityError
		result.Message = ".claude is not a readable directory"
		return result
	}

	var files []fileResult
	var broken int
	for _, cat := range []catalog.Category{catalog.MCP, catalog.LSP} {
		fr, ok := validateMapFile(cat, cat.Path(dir))
		if !ok {
			continue
		}
		if fr.Status == "error" {
			broken++
		}
		files = append(files, fr)
	}
	result.Details["files"] = files

	switch {
	case broken > 0:
		result.Status = SeverityError
		result.Message = fmt.Sprintf("%d map file(s) are malformed", broken)
		result.FixHint = "fix the file by hand; merges refuse to overwrite malformed files"
		return result
	case !isDirectoryWritable(dir):
		result.Status = SeverityError
		result.Message = ".claude is not writable"
		result.FixHint = "check the permissions of " + dir
		return result
	}

	gitignore := filepath.Join(c.root, paths.GitignoreFile)
	if data, err := os.ReadFile(gitignore); err == nil && !workspace.Ignores(data) {
		result.Status = SeverityWarning
		result.Message = ".gitignore does not cover .claude"
		result.FixHint = "add .claude to " + gitignore
		return result
	}

	result.Message = ".claude is healthy"
	return result
}

// validateMapFile checks one map file. The boolean is false when the file
// does not exist.
func validateMapFile(cat catalog.Category, path string) (fileResult, bool) {
	fr := fileResult{Path: path}

	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fr, false
		}
		fr.Status = "error"
		fr.Message = fmt.Sprintf("read error: %v", err)
		return fr, true
	}

	if res := catalog.ParseMap(cat, data); !res.OK() {
		fr.Status = "error"
		fr.Message = res.Reason
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			fr.Message = formatJSONError(err, data)
		}
		return fr, true
	}
	fr.Status = "pass"
	return fr, true
}

// isDirectoryWritable probes path by creating and removing a temp file.
func isDirectoryWritable(path string) bool {
	f, err := os.CreateTemp(path, ".wr-ai-doctor-*")
	if err != nil {
		return false
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return true
}

// formatJSONError extracts position information from JSON syntax errors.
func formatJSONError(err error, data []byte) string {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		line, col := offsetToLineCol(data, int(syntaxErr.Offset))
		return fmt.Sprintf("JSON syntax error at line %d, column %d: %s", line, col, syntaxErr.Error())
	}
	return fmt.Sprintf("JSON error: %v", err)
}

// offsetToLineCol converts a byte offset to 1-indexed line and column numbers.
func offsetToLineCol(data []byte, offset int) (line, col int) {
	offset = max(0, min(offset, len(data)))

	line = 1
	lineStart := 0
	for i := range offset {
		if data[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return line, offset - lineStart + 1
}
