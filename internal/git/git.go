// Package git wraps the git executable for cloning and updating template repositories.
package git

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
)

// allowedSchemes are the URL schemes git may be invoked with. Transport helpers
// such as ext:: can run arbitrary commands and are rejected.
var allowedSchemes = map[string]bool{
	"https": true,
	"http":  true,
	"ssh":   true,
	"git":   true,
	"file":  true,
}

// scpLike matches user@host:path/repo, with or without a .git suffix.
var scpLike = regexp.MustCompile(`^[A-Za-z0-9._-]+@[A-Za-z0-9.-]+:[A-Za-z0-9._/~-]+$`)

// ErrInvalidURL is returned by ValidateURL.
var ErrInvalidURL = errors.New("invalid git URL")

// ValidateURL checks that rawURL is safe to pass to git as a positional argument.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return errors.Wrap(ErrInvalidURL, "empty URL")
	}
	if strings.HasPrefix(rawURL, "-") {
		return errors.Wrapf(ErrInvalidURL, "%q looks like a command-line option", rawURL)
	}
	if strings.Contains(rawURL, "::") {
		return errors.Wrapf(ErrInvalidURL, "%q uses a transport helper", rawURL)
	}
	if strings.ContainsAny(rawURL, " \t\r\n") {
		return errors.Wrapf(ErrInvalidURL, "%q contains whitespace", rawURL)
	}

	if strings.Contains(rawURL, "://") {
		u, err := url.Parse(rawURL)
		if err != nil {
			return errors.Wrapf(ErrInvalidURL, "%q: %v", rawURL, err)
		}
		if !allowedSchemes[strings.ToLower(u.Scheme)] {
			return errors.Wrapf(ErrInvalidURL, "unsupported scheme %q", u.Scheme)
		}
		if u.Scheme != "file" && u.Host == "" {
			return errors.Wrapf(ErrInvalidURL, "%q has no host", rawURL)
		}
		return nil
	}

	if scpLike.MatchString(rawURL) {
		return nil
	}
	return errors.Wrapf(ErrInvalidURL, "%q is neither a URL nor user@host:path", rawURL)
}

// command builds a non-interactive git invocation. Credential prompts are
// disabled so a missing token fails fast instead of blocking under a spinner.
func command(ctx context.Context, dir string, args ...string) (*exec.Cmd, *bytes.Buffer) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	return cmd, &stderr
}

func run(ctx context.Context, op string, cmd *exec.Cmd, stderr *bytes.Buffer) error {
	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errors.Wrapf(ctxErr, "git %s interrupted", op)
		}
		err = errors.Wrapf(err, "git %s failed", op)
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = errors.WithDetail(err, msg)
		}
		return err
	}
	return nil
}

// Clone clones a git repository from url to dest with the specified depth.
// A depth of zero or less performs a full clone. When ctx is done the git
// process is killed and the returned error wraps ctx.Err().
func Clone(ctx context.Context, url, dest string, depth int) error {
	if err := ValidateURL(url); err != nil {
		return err
	}
	args := []string{"clone", "--quiet"}
	if depth > 0 {
		args = append(args, fmt.Sprintf("--depth=%d", depth))
	}
	args = append(args, "--", url, dest)

	cmd, stderr := command(ctx, "", args...)
	return run(ctx, "clone", cmd, stderr)
}

// Pull performs a fast-forward-only pull in the specified repository directory.
func Pull(ctx context.Context, repoPath string) error {
	cmd, stderr := command(ctx, repoPath, "pull", "--ff-only", "--quiet")
	return run(ctx, "pull", cmd, stderr)
}

// HeadCommit returns the abbreviated hash of HEAD in repoPath.
func HeadCommit(ctx context.Context, repoPath string) (string, error) {
	cmd, stderr := command(ctx, repoPath, "rev-parse", "--short", "HEAD")
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := run(ctx, "rev-parse", cmd, stderr); err != nil {
		return "", err
	}
	return strings.TrimSpace(stdout.String()), nil
}

// ValidateRemote checks if repoPath is a valid git repository by verifying
// the existence of a .git directory.
func ValidateRemote(repoPath string) error {
	gitDir := filepath.Join(repoPath, ".git")
	info, err := os.Stat(gitDir)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Newf("not a git repository: %s", repoPath)
		}
		return errors.Wrap(err, "checking git directory")
	}
	if !info.IsDir() {
		return errors.Newf(".git is not a directory: %s", gitDir)
	}
	return nil
}
