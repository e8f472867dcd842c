package selection

import (
	"github.com/woicw/wr-ai/internal/catalog"
	"github.com/woicw/wr-ai/internal/errors"
)

// NotFound builds the error for a token that resolved to nothing. A
// qualified token lists the names of its category; any other token lists
// every file-category entry as a qualified reference.
func NotFound(cat *catalog.Catalog, raw string) *errors.NotFoundError {
	t := ParseToken(raw)
	if t.Kind == Qualified {
		return &errors.NotFoundError{
			Token:        t.Name,
			Category:     t.Category.String(),
			Alternatives: cat.Names(t.Category),
		}
	}

	var alternatives []string
	for _, c := range []catalog.Category{catalog.Command, catalog.Skill, catalog.Agent, catalog.Hook} {
		for _, e := range cat.Entries(c) {
			alternatives = append(alternatives, e.Ref())
		}
	}
	return &errors.NotFoundError{Token: raw, Alternatives: alternatives}
}

// CheckResolved returns a NotFoundError for the first unresolved token of p.
func CheckResolved(cat *catalog.Catalog, p *Plan) error {
	if len(p.Unresolved) == 0 {
		return nil
	}
	return NotFound(cat, p.Unresolved[0])
}
