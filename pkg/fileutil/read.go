package fileutil

import (
	"io"
	"os"

	"github.com/woicw/wr-ai/internal/errors"
)

// MaxFileSize bounds every configuration file wr-ai reads into memory.
const MaxFileSize = 1 << 20

var (
	// ErrFileTooLarge indicates that a file exceeded MaxFileSize.
	ErrFileTooLarge = errors.Newf("file exceeds maximum size of %d bytes", MaxFileSize)

	// ErrNotRegular indicates a path that is a directory, device, or pipe.
	ErrNotRegular = errors.New("not a regular file")
)

// ReadFileWithLimit reads the regular file at path, refusing files larger
// than MaxFileSize. The size is checked again while reading since the file
// may grow after the stat.
func ReadFileWithLimit(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, "inspecting %s", path)
	}
	switch {
	case !info.Mode().IsRegular():
		return nil, errors.Wrapf(ErrNotRegular, "reading %s", path)
	case info.Size() > MaxFileSize:
		return nil, errors.Wrapf(ErrFileTooLarge, "reading %s", path)
	}

	data, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	if len(data) > MaxFileSize {
		return nil, errors.Wrapf(ErrFileTooLarge, "reading %s", path)
	}
	return data, nil
}

// Exists reports whether path exists, following symlinks.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
