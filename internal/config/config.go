// Package config provides configuration management for wr-ai using Viper.
package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/woicw/wr-ai/internal/paths"
)

// EnvPrefix is the prefix for environment variable overrides (WR_AI_ORIGIN, ...).
const EnvPrefix = "WR_AI"

// configDirEnv overrides the directory searched for config.yaml.
const configDirEnv = EnvPrefix + "_CONFIG_DIR"

// originEnv overrides the configured origin for a single invocation.
const originEnv = EnvPrefix + "_ORIGIN"

// Defaults.
const (
	DefaultVersion      = 1
	DefaultOrigin       = "https://github.com/woicw/ai-config.git"
	DefaultFetchTimeout = 30 * time.Second
)

// Config keys.
const (
	KeyVersion      = "version"
	KeyOrigin       = "origin"
	KeyFetchTimeout = "fetch_timeout"
)

// Keys lists every recognised configuration key in display order.
var Keys = []string{KeyVersion, KeyOrigin, KeyFetchTimeout}

// Config represents the top-level configuration structure.
type Config struct {
	Version      int           `mapstructure:"version" yaml:"version"`
	Origin       string        `mapstructure:"origin" yaml:"origin"`
	FetchTimeout time.Duration `mapstructure:"fetch_timeout" yaml:"fetch_timeout"`
}

// Default returns a configuration populated with default values.
func Default() *Config {
	return &Config{
		Version:      DefaultVersion,
		Origin:       DefaultOrigin,
		FetchTimeout: DefaultFetchTimeout,
	}
}

// Dir returns the directory holding config.yaml, honoring WR_AI_CONFIG_DIR.
func Dir() string {
	if dir := os.Getenv(configDirEnv); dir != "" {
		return dir
	}
	return paths.ConfigDir()
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
// Calling it again discards any previously loaded state.
func Init() {
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(Dir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	setDefaults(viper.GetViper())
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyVersion, DefaultVersion)
	v.SetDefault(KeyOrigin, DefaultOrigin)
	v.SetDefault(KeyFetchTimeout, DefaultFetchTimeout.String())
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}
	return load(viper.GetViper(), path)
}

func load(v *viper.Viper, path string) (*Config, error) {
	cfg, err := read(v, path)
	if err != nil {
		return nil, err
	}
	if errs := Validate(cfg); len(errs) > 0 {
		return nil, errors.Wrap(errs[0], "validating config")
	}
	return cfg, nil
}

// read loads and unmarshals without validating, so a store can repair an
// invalid file one key at a time.
func read(v *viper.Viper, path string) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// Implicit load falls back to defaults.
		case errors.As(err, &notFound) || stderrors.Is(err, fs.ErrNotExist):
			return nil, errors.Wrapf(err, "config file not found at %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}
	return &cfg, nil
}
