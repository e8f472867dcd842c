package commands

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/woicw/wr-ai/internal/catalog/catalogtest"
	"github.com/woicw/wr-ai/internal/cli/prompt"
	"github.com/woicw/wr-ai/internal/repository"
)

// resetFlags restores every package-level flag variable to its default so
// tests do not leak state through rootCmd.
func resetFlags() {
	verbosity = 0
	quiet = false
	logFormat = "text"
	logFile = ""
	configPath = ""
	initOpts = mergeOptions{dir: "."}
	addOpts = mergeOptions{dir: "."}
	listOutput = outputText
	listSource = ""
	listLong = false
	doctorJSON = false
	doctorAll = false
	doctorDir = "."
	genDocDir = ""
	genDocFormat = "markdown"
	versionShort = false
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags()

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(t.Context())
	return stdout.String(), stderr.String(), err
}

// isolate points config and cache at temporary directories and makes the
// session non-interactive.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("WR_AI_CONFIG_DIR", t.TempDir())
	t.Setenv("WR_AI_ORIGIN", "")
	t.Setenv("WR_AI_DEBUG", "")

	cache := t.TempDir()
	origFetcher, origSelector, origTTY := newFetcher, newSelector, stdinIsTerminal
	newFetcher = func(timeout time.Duration, logger *slog.Logger) *repository.Fetcher {
		return repository.NewFetcher(
			repository.WithCacheRoot(cache),
			repository.WithTimeout(timeout),
			repository.WithLogger(logger),
		)
	}
	stdinIsTerminal = func() bool { return false }
	t.Cleanup(func() {
		newFetcher, newSelector, stdinIsTerminal = origFetcher, origSelector, origTTY
	})
}

// answer makes prompts read input as if typed on a terminal.
func answer(t *testing.T, input string) {
	t.Helper()
	stdinIsTerminal = func() bool { return true }
	newSelector = func() *prompt.Selector {
		return prompt.NewSelectorWithIO(strings.NewReader(input), io.Discard)
	}
}

// originRepo commits files under awesome-claude/ in a fresh git repository
// and returns its file:// URL. It skips the test when git is missing.
func originRepo(t *testing.T, files map[string]string) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not on PATH")
	}

	root := filepath.Join(t.TempDir(), "origin")
	catalogtest.WriteTree(t, filepath.Join(root, "awesome-claude"), files)
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("# templates\n"), 0o644))

	for _, args := range [][]string{
		{"init", "--quiet"},
		{"-c", "user.email=t@example.com", "-c", "user.name=T", "add", "."},
		{"-c", "user.email=t@example.com", "-c", "user.name=T", "commit", "--quiet", "-m", "init"},
	} {
		cmd := exec.Command("git", args...)
		cmd.Dir = root
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, string(out))
	}
	return "file://" + root
}

// withOrigin isolates the test and configures a local origin holding files.
func withOrigin(t *testing.T, files map[string]string) {
	t.Helper()
	isolate(t)
	url := originRepo(t, files)
	_, _, err := execute(t, "set", "github", url)
	require.NoError(t, err)
}
