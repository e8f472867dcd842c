package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woicw/wr-ai/internal/errors"
)

func makeRepo(t *testing.T, dirs ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, d), 0o755))
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("# templates\n"), 0o644))
	return root
}

func TestListSources(t *testing.T) {
	root := makeRepo(t, ".git", "node_modules", ".github", "team", "awesome-claude")

	got, err := ListSources(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"awesome-claude", "team"}, got)
}

func TestResolveSource(t *testing.T) {
	chooseSecond := func(s []string) (string, error) { return s[1], nil }

	tests := []struct {
		name      string
		dirs      []string
		requested string
		choose    Chooser
		want      string
		wantErr   error
	}{
		{"default preferred", []string{"alpha", "awesome-claude"}, "", chooseSecond, "awesome-claude", nil},
		{"single source", []string{"team"}, "", nil, "team", nil},
		{"explicit request", []string{"alpha", "awesome-claude"}, "alpha", nil, "alpha", nil},
		{"unknown request", []string{"alpha"}, "beta", nil, "", errors.ErrNotFound},
		{"chooser used", []string{"alpha", "beta"}, "", chooseSecond, "beta", nil},
		{"no chooser", []string{"alpha", "beta"}, "", nil, "", ErrAmbiguousSource},
		{"empty repository", nil, "", nil, "", errors.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := makeRepo(t, tt.dirs...)
			got, err := ResolveSource(root, tt.requested, tt.choose)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveSource_ChooserCancel(t *testing.T) {
	root := makeRepo(t, "alpha", "beta")
	_, err := ResolveSource(root, "", func([]string) (string, error) {
		return "", errors.ErrCancelled
	})
	assert.True(t, errors.Is(err, errors.ErrCancelled))
}
