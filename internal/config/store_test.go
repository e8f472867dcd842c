package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woicw/wr-ai/internal/errors"
)

func TestFileStore_RemoteURL_Default(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "config.yaml"))

	url, err := store.RemoteURL()
	require.NoError(t, err)
	assert.Equal(t, DefaultOrigin, url)
}

func TestFileStore_RemoteURL_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("origin: https://github.com/acme/agents\n"), 0o600))
	t.Setenv("WR_AI_ORIGIN", "https://github.com/acme/override")

	url, err := NewFileStore(path).RemoteURL()
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/acme/override", url)
}

func TestFileStore_SetRemoteURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	store := NewFileStore(path)

	require.NoError(t, store.SetRemoteURL("https://github.com/acme/agents"))

	url, err := store.RemoteURL()
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/acme/agents", url)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fetch_timeout: 30s")
}

func TestFileStore_SetRemoteURL_KeepsOtherKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1\nfetch_timeout: 2m\n"), 0o600))
	store := NewFileStore(path)

	require.NoError(t, store.SetRemoteURL("https://github.com/acme/agents"))

	cfg, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Minute, cfg.FetchTimeout)
	assert.Equal(t, "https://github.com/acme/agents", cfg.Origin)
}

func TestFileStore_SetRemoteURL_RejectsInjection(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "config.yaml"))

	err := store.SetRemoteURL("--upload-pack=touch /tmp/pwned")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
}

func TestFileStore_Set(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "config.yaml"))

	require.NoError(t, store.Set(KeyFetchTimeout, "45s"))
	cfg, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, 45*time.Second, cfg.FetchTimeout)

	err = store.Set("colour", "blue")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidConfig))

	err = store.Set(KeyFetchTimeout, "soon")
	require.Error(t, err)
}

func TestFileStore_Set_RepairsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 7\nfetch_timeout: 10s\n"), 0o600))
	store := NewFileStore(path)

	Init()
	_, err := Load(path)
	require.Error(t, err)

	require.NoError(t, store.Set(KeyVersion, "1"))

	cfg, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
}

func TestGet(t *testing.T) {
	cfg := Default()

	v, ok := Get(cfg, KeyFetchTimeout)
	assert.True(t, ok)
	assert.Equal(t, "30s", v)

	v, ok = Get(cfg, KeyVersion)
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	_, ok = Get(cfg, "missing")
	assert.False(t, ok)
}
