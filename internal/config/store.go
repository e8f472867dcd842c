package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/woicw/wr-ai/internal/paths"
	"github.com/woicw/wr-ai/pkg/fileutil"
)

// Store persists the remote template repository URL.
type Store interface {
	RemoteURL() (string, error)
	SetRemoteURL(url string) error
}

// FileStore is a Store backed by a YAML file.
type FileStore struct {
	path string
}

var _ Store = (*FileStore)(nil)

// NewFileStore returns a store for the config file at path.
// An empty path selects config.yaml under [Dir].
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = filepath.Join(Dir(), paths.ConfigFile)
	}
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Read loads the file through a private viper instance so the store never
// mixes in flags or environment overrides. A missing file yields defaults.
// The result is not validated; Write validates before persisting.
func (s *FileStore) Read() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)

	if _, err := os.Stat(s.path); err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Wrapf(err, "checking config file %s", s.path)
	}
	v.SetConfigFile(s.path)

	return read(v, s.path)
}

// Write validates cfg and persists it atomically.
func (s *FileStore) Write(cfg *Config) error {
	if errs := Validate(cfg); len(errs) > 0 {
		return errors.Wrap(errs[0], "validating config")
	}
	if err := paths.EnsureDir(filepath.Dir(s.path), 0); err != nil {
		return errors.Wrap(err, "creating config directory")
	}
	if err := fileutil.WriteYAML(s.path, cfg, 0o600); err != nil {
		return errors.Wrapf(err, "writing config file %s", s.path)
	}
	return nil
}

// RemoteURL returns the configured origin. WR_AI_ORIGIN overrides the
// file; an unset origin falls back to DefaultOrigin.
func (s *FileStore) RemoteURL() (string, error) {
	if v := os.Getenv(originEnv); v != "" {
		return v, nil
	}
	cfg, err := s.Read()
	if err != nil {
		return "", err
	}
	if cfg.Origin == "" {
		return DefaultOrigin, nil
	}
	return cfg.Origin, nil
}

// SetRemoteURL records url as the origin, keeping other settings.
func (s *FileStore) SetRemoteURL(url string) error {
	cfg, err := s.Read()
	if err != nil {
		return err
	}
	cfg.Origin = url
	return s.Write(cfg)
}

// Set assigns a single key from its string form.
func (s *FileStore) Set(key, value string) error {
	cfg, err := s.Read()
	if err != nil {
		return err
	}

	switch key {
	case KeyVersion:
		n, err := strconv.Atoi(value)
		if err != nil {
			return errors.Wrapf(invalid(err), "parsing %s", key)
		}
		cfg.Version = n
	case KeyOrigin:
		cfg.Origin = value
	case KeyFetchTimeout:
		d, err := time.ParseDuration(value)
		if err != nil {
			return errors.Wrapf(invalid(err), "parsing %s", key)
		}
		cfg.FetchTimeout = d
	default:
		return errors.WithDetailf(invalid(errors.Newf("unknown config key %q", key)),
			"Valid keys: %v", Keys)
	}

	return s.Write(cfg)
}

// Get returns the string form of a single key.
func Get(cfg *Config, key string) (string, bool) {
	switch key {
	case KeyVersion:
		return formatValue(cfg.Version), true
	case KeyOrigin:
		return cfg.Origin, true
	case KeyFetchTimeout:
		return formatValue(cfg.FetchTimeout), true
	default:
		return "", false
	}
}

func formatValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case time.Duration:
		return t.String()
	case int:
		return strconv.Itoa(t)
	default:
		return fmt.Sprint(v)
	}
}
