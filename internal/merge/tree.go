package merge

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/woicw/wr-ai/internal/errors"
	"github.com/woicw/wr-ai/internal/pathguard"
	"github.com/woicw/wr-ai/pkg/fileutil"
)

// TreePlan classifies the files of a directory merge. Paths are relative to
// the tree roots, use forward slashes, and are sorted.
type TreePlan struct {
	// Add lists source files with no destination counterpart.
	Add []string
	// Overwrite lists files present on both sides; the source copy wins.
	Overwrite []string
	// Keep lists destination-only files. They are never touched.
	Keep []string
	// Skipped lists source entries that are neither regular files nor
	// directories, such as symlinks.
	Skipped []string
}

// Writes returns Add and Overwrite in sorted order.
func (p *TreePlan) Writes() []string {
	w := append(slices.Clone(p.Add), p.Overwrite...)
	slices.Sort(w)
	return w
}

// PlanTree lists src and dst and classifies every file. A missing dst is
// treated as empty. Nothing is written.
func PlanTree(src, dst string) (*TreePlan, error) {
	srcFiles, skipped, err := listTree(src)
	if err != nil {
		return nil, errors.Wrapf(err, "listing %s", src)
	}
	dstFiles, _, err := listTree(dst)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrapf(err, "listing %s", dst)
	}

	p := &TreePlan{Skipped: skipped}
	for _, rel := range srcFiles {
		if _, ok := slices.BinarySearch(dstFiles, rel); ok {
			p.Overwrite = append(p.Overwrite, rel)
		} else {
			p.Add = append(p.Add, rel)
		}
	}
	for _, rel := range dstFiles {
		if _, ok := slices.BinarySearch(srcFiles, rel); !ok {
			p.Keep = append(p.Keep, rel)
		}
	}
	return p, nil
}

// listTree returns the sorted slash-separated relative paths of every file
// under root, plus the paths of entries that are not regular files.
func listTree(root string) (files, skipped []string, err error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, nil, err
	}
	if !info.IsDir() {
		return nil, nil, errors.Newf("%s is not a directory", root)
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root || d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if d.Type().IsRegular() {
			files = append(files, rel)
		} else {
			skipped = append(skipped, rel)
		}
		return nil
	})
	slices.Sort(files)
	slices.Sort(skipped)
	return files, skipped, err
}

// applyTree writes every Add and Overwrite file of plan from src to dst,
// validating each source read and destination write against guard.
func applyTree(guard *pathguard.Guard, src, dst string, plan *TreePlan) error {
	for _, rel := range plan.Writes() {
		from, err := guard.Source(filepath.Join(src, filepath.FromSlash(rel)))
		if err != nil {
			return err
		}
		to, err := guard.Dest(filepath.Join(dst, filepath.FromSlash(rel)))
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(to), 0o755); err != nil {
			return errors.Wrapf(err, "creating directory for %s", to)
		}
		if err := fileutil.CopyFile(from, to); err != nil {
			return errors.Wrapf(err, "copying %s", rel)
		}
	}
	return nil
}
