// Package merge applies a selection plan to a destination directory without
// deleting local-only content.
package merge

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/woicw/wr-ai/internal/catalog"
	"github.com/woicw/wr-ai/internal/errors"
	"github.com/woicw/wr-ai/internal/logging"
	"github.com/woicw/wr-ai/internal/pathguard"
	"github.com/woicw/wr-ai/internal/selection"
	"github.com/woicw/wr-ai/pkg/fileutil"
)

// Report lists what a merge wrote, as slash-separated paths relative to the
// destination root. Skill directories end in "/".
type Report struct {
	Added   []string `json:"added" yaml:"added"`
	Updated []string `json:"updated" yaml:"updated"`
	Copied  []string `json:"copied" yaml:"copied"`
}

func (r *Report) record(rel string, existed bool) {
	if existed {
		r.Updated = append(r.Updated, rel)
	} else {
		r.Added = append(r.Added, rel)
	}
	r.Copied = append(r.Copied, rel)
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. Per-file decisions are logged at LevelTrace.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// Engine merges plans into destination trees. It is not safe for concurrent
// use against the same destination.
type Engine struct {
	logger *slog.Logger
}

// NewEngine returns an Engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Apply merges plan from sourceRoot into destRoot, category by category in
// probe order. Files and skill trees are copied atomically per file; MCP and
// LSP maps are merged with incoming keys winning. Nothing is ever deleted.
//
// Apply stops at the first error; files written before it remain in place.
func (e *Engine) Apply(plan *selection.Plan, sourceRoot, destRoot string) (*Report, error) {
	guard := pathguard.New(sourceRoot, destRoot)
	report := &Report{}

	if err := os.MkdirAll(destRoot, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating %s", destRoot)
	}

	for _, cat := range catalog.All() {
		sel := plan.Selection(cat)
		if sel.Empty() {
			continue
		}
		var err error
		switch cat.Kind() {
		case catalog.FileItem:
			err = e.copyFiles(guard, cat, sel.Names, sourceRoot, destRoot, report)
		case catalog.DirectoryItem:
			err = e.mergeDirs(guard, cat, sel.Names, sourceRoot, destRoot, report)
		case catalog.MapEntry:
			err = e.mergeMap(guard, cat, sel, sourceRoot, destRoot, report)
		}
		if err != nil {
			return report, err
		}
	}
	return report, nil
}

func (e *Engine) trace(msg string, args ...any) {
	e.logger.Log(context.Background(), logging.LevelTrace, msg, args...)
}

func (e *Engine) copyFiles(guard *pathguard.Guard, cat catalog.Category, names []string, src, dst string, report *Report) error {
	for _, name := range names {
		rel := cat.EntryRelPath(name)

		from, err := guard.Source(filepath.Join(src, rel))
		if err != nil {
			return err
		}
		to, err := guard.Dest(filepath.Join(dst, rel))
		if err != nil {
			return err
		}

		existed := fileutil.Exists(to)
		if err := os.MkdirAll(filepath.Dir(to), 0o755); err != nil {
			return errors.Wrapf(err, "creating directory for %s", rel)
		}
		if err := fileutil.CopyFile(from, to); err != nil {
			return errors.Wrapf(err, "copying %s %q", cat, name)
		}

		e.trace("copied file", "category", cat.String(), "path", rel, "existed", existed)
		report.record(filepath.ToSlash(rel), existed)
	}
	return nil
}

func (e *Engine) mergeDirs(guard *pathguard.Guard, cat catalog.Category, names []string, src, dst string, report *Report) error {
	for _, name := range names {
		rel := cat.EntryRelPath(name)

		from, err := guard.Source(filepath.Join(src, rel))
		if err != nil {
			return err
		}
		to, err := guard.Dest(filepath.Join(dst, rel))
		if err != nil {
			return err
		}

		existed := fileutil.Exists(to)
		plan, err := PlanTree(from, to)
		if err != nil {
			return errors.Wrapf(err, "planning %s %q", cat, name)
		}
		for _, s := range plan.Skipped {
			e.logger.Warn("skipping non-regular file in skill", "skill", name, "path", s)
		}
		for _, k := range plan.Keep {
			e.trace("keeping local-only file", "skill", name, "path", k)
		}

		if err := os.MkdirAll(to, 0o755); err != nil {
			return errors.Wrapf(err, "creating %s", rel)
		}
		if err := applyTree(guard, from, to, plan); err != nil {
			return errors.Wrapf(err, "merging %s %q", cat, name)
		}

		e.trace("merged directory", "category", cat.String(), "path", rel,
			"added", len(plan.Add), "overwritten", len(plan.Overwrite), "kept", len(plan.Keep))
		report.record(filepath.ToSlash(rel)+"/", existed)
	}
	return nil
}
