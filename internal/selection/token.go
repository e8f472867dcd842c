package selection

import (
	"strings"

	"github.com/woicw/wr-ai/internal/catalog"
)

// Wildcards selecting every category.
const (
	AllToken      = "__all__"
	AllShorthand  = "*"
	categorySplit = ":"
)

// TokenKind classifies a raw selection token.
type TokenKind int

// Token kinds.
const (
	// GlobalWildcard selects every entry of every category.
	GlobalWildcard TokenKind = iota
	// CategoryWildcard selects every entry of one category.
	CategoryWildcard
	// Qualified selects one entry of one category.
	Qualified
	// Bare selects the first entry named Name in probe order.
	Bare
)

// Token is a parsed selection token.
type Token struct {
	Raw      string
	Kind     TokenKind
	Category catalog.Category
	Name     string
}

// ParseToken classifies raw. A prefix that is not a known category makes the
// whole string a bare name.
func ParseToken(raw string) Token {
	t := Token{Raw: raw}
	if raw == AllToken || raw == AllShorthand {
		t.Kind = GlobalWildcard
		return t
	}

	if cat, ok := catalog.ParseAllToken(raw); ok {
		t.Kind = CategoryWildcard
		t.Category = cat
		return t
	}

	if prefix, name, ok := strings.Cut(raw, categorySplit); ok {
		if cat, known := catalog.ParsePrefix(prefix); known {
			t.Category = cat
			if name == "" || name == AllShorthand {
				t.Kind = CategoryWildcard
				return t
			}
			t.Kind = Qualified
			t.Name = name
			return t
		}
	}

	t.Kind = Bare
	t.Name = raw
	return t
}
