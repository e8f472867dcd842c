// Package selection resolves user tokens against a catalog into a merge plan.
package selection

import (
	"strings"

	"github.com/woicw/wr-ai/internal/catalog"
)

// Selection is what a plan takes from one category.
type Selection struct {
	// All is set by a global or per-category wildcard. For map categories it
	// means "merge the entire remote map" even when Names is empty.
	All bool
	// Names are the selected entries in catalog order.
	Names []string
}

// Empty reports whether nothing is selected.
func (s Selection) Empty() bool {
	return !s.All && len(s.Names) == 0
}

// Plan is the resolved selection for one merge.
type Plan struct {
	// All records the global wildcard.
	All bool
	// Unresolved lists tokens that matched nothing, in input order.
	Unresolved []string

	selections map[catalog.Category]Selection
}

// Selection returns what the plan takes from cat.
func (p *Plan) Selection(cat catalog.Category) Selection {
	return p.selections[cat]
}

// Names returns the selected names of cat in catalog order.
func (p *Plan) Names(cat catalog.Category) []string {
	return p.selections[cat].Names
}

// Empty reports whether the plan selects nothing at all.
func (p *Plan) Empty() bool {
	for _, cat := range catalog.All() {
		if !p.selections[cat].Empty() {
			return false
		}
	}
	return true
}

// Count returns the number of selected names across categories.
func (p *Plan) Count() int {
	n := 0
	for _, s := range p.selections {
		n += len(s.Names)
	}
	return n
}

// Refs returns category:name for every selected entry, in probe order.
func (p *Plan) Refs() []string {
	var refs []string
	for _, cat := range catalog.All() {
		for _, name := range p.selections[cat].Names {
			refs = append(refs, cat.Prefix()+":"+name)
		}
	}
	return refs
}

// resolver accumulates token matches before ordering them by catalog.
type resolver struct {
	cat        *catalog.Catalog
	all        map[catalog.Category]bool
	chosen     map[catalog.Category]map[string]bool
	global     bool
	unresolved []string
}

// Resolve maps tokens onto cat. Tokens are additive and duplicates collapse.
// A token matching nothing is recorded in Plan.Unresolved and contributes
// nothing, so a plan never names an entry absent from cat. Empty and
// whitespace-only tokens are ignored.
//
// A bare name probes Command, Skill, Agent, Hook, MCP entry, the word "mcp",
// LSP entry, then the word "lsp", and stops at the first match.
func Resolve(tokens []string, cat *catalog.Catalog) *Plan {
	r := &resolver{
		cat:    cat,
		all:    map[catalog.Category]bool{},
		chosen: map[catalog.Category]map[string]bool{},
	}
	for _, raw := range tokens {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if !r.apply(ParseToken(raw)) {
			r.unresolved = append(r.unresolved, raw)
		}
	}
	return r.plan()
}

func (r *resolver) apply(t Token) bool {
	switch t.Kind {
	case GlobalWildcard:
		r.global = true
		for _, c := range catalog.All() {
			r.all[c] = true
		}
		return true
	case CategoryWildcard:
		r.all[t.Category] = true
		return true
	case Qualified:
		return r.choose(t.Category, t.Name)
	default:
		return r.probe(t.Name)
	}
}

func (r *resolver) probe(name string) bool {
	for _, c := range []catalog.Category{catalog.Command, catalog.Skill, catalog.Agent, catalog.Hook} {
		if r.choose(c, name) {
			return true
		}
	}
	for _, c := range []catalog.Category{catalog.MCP, catalog.LSP} {
		if r.choose(c, name) {
			return true
		}
		// The bare category word merges the whole map file when it exists.
		if name == c.Prefix() && r.cat.HasMapFile(c) {
			r.all[c] = true
			return true
		}
	}
	return false
}

func (r *resolver) choose(c catalog.Category, name string) bool {
	if !r.cat.Has(c, name) {
		return false
	}
	if r.chosen[c] == nil {
		r.chosen[c] = map[string]bool{}
	}
	r.chosen[c][name] = true
	return true
}

func (r *resolver) plan() *Plan {
	p := &Plan{
		All:        r.global,
		Unresolved: r.unresolved,
		selections: make(map[catalog.Category]Selection, len(catalog.All())),
	}
	for _, c := range catalog.All() {
		s := Selection{All: r.all[c]}
		for _, name := range r.cat.Names(c) {
			if s.All || r.chosen[c][name] {
				s.Names = append(s.Names, name)
			}
		}
		p.selections[c] = s
	}
	return p
}
