// Package fileutil holds the file primitives used when writing into a
// project: bounded reads and replace-by-rename writes.
package fileutil

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/woicw/wr-ai/internal/errors"
)

// tempPattern names in-flight temp files; they never match a catalog extension.
const tempPattern = ".wr-ai-*.tmp"

// replace streams body into a temp file in path's directory and renames it
// over path, so readers see the old content or the new content in full.
// The parent directory must already exist.
func replace(path string, perm os.FileMode, body func(io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), tempPattern)
	if err != nil {
		return errors.Wrapf(err, "creating temp file for %s", path)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = body(tmp); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	if err = tmp.Chmod(perm); err != nil {
		return errors.Wrapf(err, "setting mode on %s", path)
	}
	if err = tmp.Sync(); err != nil {
		return errors.Wrapf(err, "syncing %s", path)
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", path)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "replacing %s", path)
	}
	return nil
}

// WriteFile atomically replaces path with data.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	return replace(path, perm, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// CopyFile atomically replaces dst with the contents and mode of src.
// Only regular files are copied; anything else yields ErrNotRegular.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrap(err, "opening source file")
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return errors.Wrapf(err, "stat %s", src)
	}
	if !info.Mode().IsRegular() {
		return errors.Wrapf(ErrNotRegular, "%s", src)
	}
	return replace(dst, info.Mode().Perm(), func(w io.Writer) error {
		_, err := io.Copy(w, in)
		return err
	})
}

// WriteJSON atomically writes v as two-space indented JSON with a trailing
// newline and the given mode. HTML is left unescaped so URLs and shell
// snippets survive.
func WriteJSON(path string, v any, perm os.FileMode) error {
	return replace(path, perm, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(v), "encoding JSON")
	})
}

// WriteYAML atomically writes v as YAML with the given mode.
func WriteYAML(path string, v any, perm os.FileMode) error {
	return replace(path, perm, func(w io.Writer) (err error) {
		// yaml.v3 panics on values it cannot represent, such as funcs.
		defer func() {
			if r := recover(); r != nil {
				err = errors.Newf("encoding YAML: %v", r)
			}
		}()
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "encoding YAML")
		}
		return enc.Close()
	})
}
