package catalog

import (
	"path/filepath"

	"github.com/woicw/wr-ai/internal/errors"
	"github.com/woicw/wr-ai/internal/paths"
)

// Category is one of the six kinds of configuration item.
type Category int

// Categories in bare-name probe order. The order is also the display order.
const (
	Command Category = iota
	Skill
	Agent
	Hook
	MCP
	LSP

	numCategories = iota
)

// Kind describes how an entry is stored.
type Kind int

// Entry kinds.
const (
	// FileItem is a single file copied as a unit.
	FileItem Kind = iota
	// DirectoryItem is a directory tree merged file by file.
	DirectoryItem
	// MapEntry is one key of a JSON map file.
	MapEntry
)

func (k Kind) String() string {
	switch k {
	case FileItem:
		return "file"
	case DirectoryItem:
		return "directory"
	case MapEntry:
		return "map-entry"
	default:
		return "unknown"
	}
}

// MarshalText renders the kind by name in JSON, YAML and TOML output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

type categoryInfo struct {
	label  string // singular display name
	prefix string // qualifier in category:name tokens
	plural string // directory-style name used in __all_<plural>__
	kind   Kind
	dir    string // directory under the source root, file categories only
	ext    string // required file extension, file categories only
	file   string // map file under the source root, map categories only
}

// categories is the single table driving prefix dispatch and layout.
var categories = [numCategories]categoryInfo{
	Command: {label: "command", prefix: "cmd", plural: "commands", kind: FileItem, dir: paths.CommandsDir, ext: ".md"},
	Skill:   {label: "skill", prefix: "skill", plural: "skills", kind: DirectoryItem, dir: paths.SkillsDir},
	Agent:   {label: "agent", prefix: "agent", plural: "agents", kind: FileItem, dir: paths.AgentsDir, ext: ".md"},
	Hook:    {label: "hook", prefix: "hook", plural: "hooks", kind: FileItem, dir: paths.HooksDir, ext: ".json"},
	MCP:     {label: "mcp", prefix: "mcp", plural: "mcp", kind: MapEntry, file: paths.MCPFile},
	LSP:     {label: "lsp", prefix: "lsp", plural: "lsp", kind: MapEntry, file: paths.LSPFile},
}

// All returns every category in probe order.
func All() []Category {
	return []Category{Command, Skill, Agent, Hook, MCP, LSP}
}

// ParsePrefix maps a token qualifier such as "cmd" to its category.
func ParsePrefix(prefix string) (Category, bool) {
	for c, info := range categories {
		if info.prefix == prefix {
			return Category(c), true
		}
	}
	return 0, false
}

// ParseAllToken maps a per-category wildcard such as "__all_commands__".
func ParseAllToken(token string) (Category, bool) {
	for c := range categories {
		if Category(c).AllToken() == token {
			return Category(c), true
		}
	}
	return 0, false
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return c >= 0 && c < numCategories
}

func (c Category) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return categories[c].label
}

// MarshalText renders the category by name.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, errors.Newf("unknown category %d", int(c))
	}
	return []byte(c.String()), nil
}

// Prefix returns the qualifier used in category:name tokens.
func (c Category) Prefix() string {
	return categories[c].prefix
}

// Plural returns the plural display name, for example "commands".
func (c Category) Plural() string {
	return categories[c].plural
}

// AllToken returns the per-category wildcard, for example "__all_commands__".
func (c Category) AllToken() string {
	return "__all_" + categories[c].plural + "__"
}

// Kind returns how entries of c are stored.
func (c Category) Kind() Kind {
	return categories[c].kind
}

// IsMap reports whether entries of c are keys of a JSON map file.
func (c Category) IsMap() bool {
	return categories[c].kind == MapEntry
}

// Ext returns the required file extension for FileItem categories.
func (c Category) Ext() string {
	return categories[c].ext
}

// RelPath returns the category's directory or map file relative to a root.
func (c Category) RelPath() string {
	if c.IsMap() {
		return categories[c].file
	}
	return categories[c].dir
}

// Path joins RelPath onto root.
func (c Category) Path(root string) string {
	return filepath.Join(root, c.RelPath())
}

// EntryRelPath returns where the named entry lives relative to a root.
// Map entries share their category's map file.
func (c Category) EntryRelPath(name string) string {
	switch c.Kind() {
	case FileItem:
		return filepath.Join(categories[c].dir, name+categories[c].ext)
	case DirectoryItem:
		return filepath.Join(categories[c].dir, name)
	default:
		return categories[c].file
	}
}
