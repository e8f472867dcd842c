package config

import (
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"

	wrerrors "github.com/woicw/wr-ai/internal/errors"
)

// Field validation failures, wrapped in a FieldError by Validate.
var (
	ErrUnsupportedVersion = errors.New("unsupported config version")
	ErrInvalidOrigin      = errors.New("invalid origin")
	ErrInvalidTimeout     = errors.New("invalid fetch_timeout")
)

// FieldError ties a validation failure to the offending key. Value is the
// rendered value as it would appear in `wr-ai config get`.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string { return e.Err.Error() + ": " + e.Value }

func (e *FieldError) Unwrap() error { return e.Err }

// Validate returns one error per invalid field, in key order. Each error
// is marked with errors.ErrInvalidConfig.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	checks := []struct {
		key   string
		value any
		err   error
	}{
		{KeyVersion, cfg.Version, when(cfg.Version != DefaultVersion, ErrUnsupportedVersion)},
		{KeyOrigin, cfg.Origin, ValidateOrigin(cfg.Origin)},
		{KeyFetchTimeout, cfg.FetchTimeout, when(cfg.FetchTimeout <= 0, ErrInvalidTimeout)},
	}

	var errs []error
	for _, c := range checks {
		if c.err != nil {
			fe := &FieldError{Field: c.key, Value: formatValue(c.value), Err: c.err}
			errs = append(errs, invalid(fe))
		}
	}
	return errs
}

func when(bad bool, err error) error {
	if bad {
		return err
	}
	return nil
}

// ValidateOrigin rejects values git would read as an option or that carry
// whitespace or control characters. Empty means the default origin.
func ValidateOrigin(origin string) error {
	if strings.HasPrefix(origin, "-") {
		return ErrInvalidOrigin
	}
	if strings.IndexFunc(origin, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	}) >= 0 {
		return ErrInvalidOrigin
	}
	return nil
}

// invalid marks err so the CLI reports it as a configuration mistake.
func invalid(err error) error {
	return wrerrors.Mark(err, wrerrors.ErrInvalidConfig)
}
