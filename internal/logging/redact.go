package logging

import (
	"fmt"
	"net/url"
	"strings"
)

// secretKeyPatterns are substrings of attribute keys whose values are masked.
// Matching is case-insensitive.
var secretKeyPatterns = []string{
	"TOKEN",
	"SECRET",
	"PASSWORD",
	"API_KEY",
	"APIKEY",
	"CREDENTIAL",
	"AUTH",
}

// tokenPrefixes identify values that are credentials regardless of key name.
var tokenPrefixes = []string{
	"ghp_",
	"gho_",
	"ghu_",
	"ghs_",
	"github_pat_",
	"glpat-",
	"sk-",
	"AKIA",
	"xoxb-",
	"xoxp-",
}

// ShouldMask reports whether the key name suggests sensitive data.
func ShouldMask(key string) bool {
	upper := strings.ToUpper(key)
	for _, pattern := range secretKeyPatterns {
		if strings.Contains(upper, pattern) {
			return true
		}
	}
	return false
}

// ContainsTokenPrefix reports whether the value starts with a known token prefix.
func ContainsTokenPrefix(value string) bool {
	for _, prefix := range tokenPrefixes {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return false
}

// MaskValue hides all but the last four characters of a value.
// Values of four characters or fewer are fully masked.
func MaskValue(value string) string {
	if len(value) <= 4 {
		return "********"
	}
	return "****" + value[len(value)-4:]
}

// MaskURL masks the userinfo of a URL. Remote template URLs may embed a
// personal access token as the user or password component.
// Strings that do not parse as URLs with userinfo are returned unchanged.
func MaskURL(rawURL string) string {
	if !strings.Contains(rawURL, "@") || !strings.Contains(rawURL, "://") {
		return rawURL
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.User == nil {
		return rawURL
	}

	var masked string
	username := parsed.User.Username()
	if password, ok := parsed.User.Password(); ok && password != "" {
		masked = username + ":" + MaskValue(password)
	} else if username != "" {
		masked = MaskValue(username)
	} else {
		return rawURL
	}

	parsed.User = nil
	rest := parsed.String()
	scheme := parsed.Scheme + "://"
	return scheme + masked + "@" + strings.TrimPrefix(rest, scheme)
}

// redact returns the display form of an attribute value.
func redact(key string, value any) any {
	if ShouldMask(key) {
		return MaskValue(stringify(value))
	}
	s, ok := value.(string)
	if !ok {
		return value
	}
	if ContainsTokenPrefix(s) {
		return MaskValue(s)
	}
	return MaskURL(s)
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if s, ok := v.(interface{ String() string }); ok {
		return s.String()
	}
	return strings.TrimSpace(strings.ReplaceAll(fmt.Sprint(v), "\n", " "))
}
