package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "wr-ai"

// Layout of a source root and of the project destination mirroring it.
const (
	ClaudeDir     = ".claude"
	CommandsDir   = "commands"
	SkillsDir     = "skills"
	AgentsDir     = "agents"
	HooksDir      = "hooks"
	MCPFile       = ".mcp.json"
	LSPFile       = ".lsp.json"
	GitignoreFile = ".gitignore"
	ConfigFile    = "config.yaml"
)

// privateDirPerm is used by EnsureDir when no permission is given.
const privateDirPerm = 0o700

// EnsureDir creates path and its parents. A zero perm means 0700.
// An existing directory is not an error.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = privateDirPerm
	}
	if err := os.MkdirAll(path, perm); err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	return nil
}

// ConfigDir returns <XDG config home>/wr-ai.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// ConfigPath returns the full path of the configuration file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), ConfigFile)
}

// CacheDir returns <XDG cache home>/wr-ai.
func CacheDir() string {
	return filepath.Join(xdg.CacheHome, AppName)
}

// TemplatesCacheDir holds one clone per remote, named by repository.RepoKey.
func TemplatesCacheDir() string {
	return filepath.Join(CacheDir(), "templates")
}

// ProjectClaudeDir returns the destination root for a project.
// Returns an empty string for an empty projectRoot.
func ProjectClaudeDir(projectRoot string) string {
	if projectRoot == "" {
		return ""
	}
	return filepath.Join(projectRoot, ClaudeDir)
}
