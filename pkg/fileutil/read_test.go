package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/woicw/wr-ai/internal/errors"
)

func sizedFile(t *testing.T, dir string, size int64) string {
	t.Helper()
	path := filepath.Join(dir, "map.json")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := f.Truncate(size); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadFileWithLimit(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantLen int
		wantErr error
	}{
		{
			name:    "small file",
			path:    func(t *testing.T) string { return sizedFile(t, t.TempDir(), 100) },
			wantLen: 100,
		},
		{
			name:    "exactly at the limit",
			path:    func(t *testing.T) string { return sizedFile(t, t.TempDir(), MaxFileSize) },
			wantLen: MaxFileSize,
		},
		{
			name:    "one byte over",
			path:    func(t *testing.T) string { return sizedFile(t, t.TempDir(), MaxFileSize+1) },
			wantErr: ErrFileTooLarge,
		},
		{
			name:    "directory",
			path:    func(t *testing.T) string { return t.TempDir() },
			wantErr: ErrNotRegular,
		},
		{
			name:    "missing",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent.json") },
			wantErr: os.ErrNotExist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFileWithLimit(tt.path(t))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ReadFileWithLimit() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadFileWithLimit() unexpected error: %v", err)
			}
			if len(data) != tt.wantLen {
				t.Errorf("ReadFileWithLimit() read %d bytes, want %d", len(data), tt.wantLen)
			}
		})
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	if !Exists(dir) {
		t.Errorf("Exists(%q) = false, want true", dir)
	}
	if Exists(filepath.Join(dir, "nope")) {
		t.Error("Exists() = true for a missing path")
	}

	link := filepath.Join(dir, "dangling")
	if err := os.Symlink(filepath.Join(dir, "target"), link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	if Exists(link) {
		t.Error("Exists() = true for a dangling symlink")
	}
}
