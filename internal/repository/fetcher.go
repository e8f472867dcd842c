package repository

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gosimple/slug"

	"github.com/woicw/wr-ai/internal/errors"
	"github.com/woicw/wr-ai/internal/git"
	"github.com/woicw/wr-ai/internal/paths"
)

// DefaultTimeout bounds a single clone or pull.
const DefaultTimeout = 30 * time.Second

// shorthand matches the owner/repo form accepted for GitHub remotes.
var shorthand = regexp.MustCompile(`^[A-Za-z0-9_.-]+/[A-Za-z0-9_.-]+$`)

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithCacheRoot overrides the directory holding cached clones.
func WithCacheRoot(dir string) Option {
	return func(f *Fetcher) {
		f.cacheRoot = dir
	}
}

// WithTimeout bounds each clone or pull. Non-positive values select DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// WithDepth sets the clone depth. Zero performs a full clone.
func WithDepth(depth int) Option {
	return func(f *Fetcher) {
		f.depth = depth
	}
}

// WithLogger sets the logger for fetch progress.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// Fetcher clones or updates template repositories in a local cache.
type Fetcher struct {
	cacheRoot string
	timeout   time.Duration
	depth     int
	logger    *slog.Logger

	clone func(ctx context.Context, url, dest string, depth int) error
	pull  func(ctx context.Context, dir string) error
}

// NewFetcher returns a Fetcher caching under paths.TemplatesCacheDir.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		cacheRoot: paths.TemplatesCacheDir(),
		timeout:   DefaultTimeout,
		depth:     1,
		logger:    slog.New(slog.DiscardHandler),
		clone:     git.Clone,
		pull:      git.Pull,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CacheRoot returns the directory holding every cached clone.
func (f *Fetcher) CacheRoot() string {
	return f.cacheRoot
}

// CacheDir returns the local directory for the remote at rawURL.
func (f *Fetcher) CacheDir(rawURL string) (string, error) {
	normalized, err := NormalizeURL(rawURL)
	if err != nil {
		return "", err
	}
	return filepath.Join(f.cacheRoot, RepoKey(normalized)), nil
}

// Fetch makes the remote at rawURL available locally and returns its directory.
// The first call clones; later calls pull. A cache directory that is not a
// git repository is removed and cloned again.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	normalized, err := NormalizeURL(rawURL)
	if err != nil {
		return "", &errors.FetchError{URL: rawURL, Op: "validate", Err: err}
	}
	dest := filepath.Join(f.cacheRoot, RepoKey(normalized))

	if err := paths.EnsureDir(f.cacheRoot, 0o755); err != nil {
		return "", &errors.FetchError{URL: normalized, Op: "prepare", Err: err}
	}

	opCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	if _, statErr := os.Stat(dest); statErr == nil {
		if git.ValidateRemote(dest) == nil {
			f.logger.Debug("pulling template repository", "url", normalized, "dir", dest)
			if err := f.pull(opCtx, dest); err != nil {
				return "", f.classify(ctx, normalized, "pull", err)
			}
			return dest, nil
		}
		f.logger.Warn("cache directory is not a git repository, cloning again", "dir", dest)
		if err := os.RemoveAll(dest); err != nil {
			return "", &errors.FetchError{URL: normalized, Op: "prepare", Err: err}
		}
	}

	f.logger.Debug("cloning template repository", "url", normalized, "dir", dest)
	if err := f.clone(opCtx, normalized, dest, f.depth); err != nil {
		// Leave no partial clone behind for the next run to mistake for a cache.
		_ = os.RemoveAll(dest)
		return "", f.classify(ctx, normalized, "clone", err)
	}
	return dest, nil
}

// classify maps a git failure onto the fetch error taxonomy. parent is the
// caller's context: its cancellation is a user interrupt, while a deadline on
// the derived context is a timeout.
func (f *Fetcher) classify(parent context.Context, url, op string, err error) error {
	switch {
	case parent.Err() != nil && errors.Is(parent.Err(), context.Canceled):
		return errors.Wrapf(errors.ErrCancelled, "%s %s", op, url)
	case errors.Is(err, context.DeadlineExceeded):
		return &errors.FetchError{URL: url, Op: op, Err: errors.Wrapf(err, "timed out after %s", f.timeout)}
	default:
		return &errors.FetchError{URL: url, Op: op, Err: err}
	}
}

// Remove deletes every cached clone.
func (f *Fetcher) Remove() error {
	if err := os.RemoveAll(f.cacheRoot); err != nil {
		return errors.Wrapf(err, "removing %s", f.cacheRoot)
	}
	return nil
}

// NormalizeURL expands owner/repo shorthand to a GitHub HTTPS URL, trims
// trailing slashes, and validates the result for use as a git argument.
func NormalizeURL(rawURL string) (string, error) {
	u := strings.TrimSpace(rawURL)
	u = strings.TrimRight(u, "/")
	if shorthand.MatchString(u) && !strings.HasPrefix(u, ".") {
		u = "https://github.com/" + u
	}
	if err := git.ValidateURL(u); err != nil {
		return "", err
	}
	return u, nil
}

// RepoKey derives a cache directory name of the form owner_repo from a
// normalized URL. The .git suffix is ignored so both spellings of a remote
// share one cache.
func RepoKey(normalized string) string {
	p := normalized
	if strings.Contains(p, "://") {
		if u, err := url.Parse(p); err == nil {
			p = u.Path
		}
	} else if i := strings.Index(p, ":"); i >= 0 {
		p = p[i+1:]
	}
	p = strings.TrimSuffix(strings.Trim(p, "/"), ".git")

	var segments []string
	for _, s := range strings.Split(p, "/") {
		if s = slug.Make(s); s != "" {
			segments = append(segments, s)
		}
	}

	switch len(segments) {
	case 0:
		return "default"
	case 1:
		return segments[0]
	default:
		return segments[len(segments)-2] + "_" + segments[len(segments)-1]
	}
}
