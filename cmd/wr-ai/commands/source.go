package commands

import (
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/woicw/wr-ai/internal/catalog"
	"github.com/woicw/wr-ai/internal/cli/prompt"
	"github.com/woicw/wr-ai/internal/logging"
	"github.com/woicw/wr-ai/internal/repository"
	"github.com/woicw/wr-ai/internal/ui"
)

// Seams replaced in tests.
var (
	newFetcher = func(timeout time.Duration, logger *slog.Logger) *repository.Fetcher {
		return repository.NewFetcher(
			repository.WithTimeout(timeout),
			repository.WithLogger(logger),
		)
	}
	newSelector     = prompt.NewSelector
	stdinIsTerminal = ui.StdinIsTerminal
)

// sourceTree is a fetched repository narrowed to one source directory.
type sourceTree struct {
	RepoDir string
	Name    string
	Root    string
	Catalog *catalog.Catalog
}

// fetchRepo clones or updates the configured remote and returns its local
// directory. Ctrl+C aborts the git process.
func fetchRepo(cmd *cobra.Command) (string, error) {
	logger := logging.FromContext(cmd.Context())

	origin, err := newStore().RemoteURL()
	if err != nil {
		return "", err
	}

	ctx, stop := interruptContext(cmd)
	defer stop()

	fetcher := newFetcher(currentConfig().FetchTimeout, logger)

	spinner := ui.NewSpinner(progressWriter(cmd), "Fetching templates")
	spinner.Start()
	dir, err := fetcher.Fetch(ctx, origin)
	spinner.Stop()
	if err != nil {
		return "", err
	}

	logger.Debug("repository ready", "url", origin, "dir", dir)
	return dir, nil
}

// loadSource fetches the remote, picks the source directory (requested,
// the default, the only one, or a prompt) and builds its catalog.
func loadSource(cmd *cobra.Command, requested string) (*sourceTree, error) {
	repoDir, err := fetchRepo(cmd)
	if err != nil {
		return nil, err
	}

	var choose repository.Chooser
	if stdinIsTerminal() {
		choose = newSelector().SelectSource
	}
	name, err := repository.ResolveSource(repoDir, requested, choose)
	if err != nil {
		return nil, err
	}

	root := filepath.Join(repoDir, name)
	cat, err := catalog.Build(root, catalog.WithLogger(logging.FromContext(cmd.Context())))
	if err != nil {
		return nil, err
	}

	return &sourceTree{RepoDir: repoDir, Name: name, Root: root, Catalog: cat}, nil
}

// progressWriter returns where spinners draw; --quiet silences them.
func progressWriter(cmd *cobra.Command) io.Writer {
	if quiet {
		return io.Discard
	}
	return cmd.ErrOrStderr()
}
