// Package catalog enumerates the configuration items available in a source tree.
package catalog

import (
	"encoding/json"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/woicw/wr-ai/internal/errors"
	"github.com/woicw/wr-ai/pkg/fileutil"
)

// Entry is one configuration item.
type Entry struct {
	Category Category `json:"category" yaml:"category" toml:"category"`
	Name     string   `json:"name" yaml:"name" toml:"name"`
	Kind     Kind     `json:"kind" yaml:"kind" toml:"kind"`

	// Path is the absolute source path for file and directory items.
	Path string `json:"path,omitempty" yaml:"path,omitempty" toml:"path,omitempty"`

	// Value is the raw JSON configuration of a map entry.
	Value json.RawMessage `json:"value,omitempty" yaml:"-" toml:"-"`
}

// Ref returns the qualified token that selects exactly this entry.
func (e Entry) Ref() string {
	return e.Category.Prefix() + ":" + e.Name
}

// Catalog is an immutable inventory of a source root.
type Catalog struct {
	root    string
	entries [numCategories][]Entry
	index   [numCategories]map[string]int
	hasMap  [numCategories]bool
}

// Option configures Build.
type Option func(*builder)

type builder struct {
	logger *slog.Logger
}

// WithLogger receives warnings about unreadable directories and malformed map files.
func WithLogger(logger *slog.Logger) Option {
	return func(b *builder) {
		b.logger = logger
	}
}

// Build scans sourceRoot. Missing category directories and map files yield
// empty categories; a malformed map file is logged and treated as empty.
// Only an unusable sourceRoot is an error.
func Build(sourceRoot string, opts ...Option) (*Catalog, error) {
	b := &builder{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(b)
	}

	info, err := os.Stat(sourceRoot)
	if err != nil {
		return nil, errors.Wrapf(err, "reading source root %s", sourceRoot)
	}
	if !info.IsDir() {
		return nil, errors.Newf("source root %s is not a directory", sourceRoot)
	}

	c := &Catalog{root: sourceRoot}
	for _, cat := range All() {
		var entries []Entry
		switch cat.Kind() {
		case FileItem:
			entries = b.scanFiles(sourceRoot, cat)
		case DirectoryItem:
			entries = b.scanDirs(sourceRoot, cat)
		case MapEntry:
			entries, c.hasMap[cat] = b.scanMap(sourceRoot, cat)
		}
		c.entries[cat] = entries
		c.index[cat] = make(map[string]int, len(entries))
		for i, e := range entries {
			c.index[cat][e.Name] = i
		}
	}
	return c, nil
}

// readDir lists a category directory, returning nil when it does not exist.
func (b *builder) readDir(root string, cat Category) []os.DirEntry {
	dir := cat.Path(root)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			b.logger.Warn("skipping unreadable directory", "category", cat.Plural(), "dir", dir, "error", err)
		}
		return nil
	}
	return entries
}

func (b *builder) scanFiles(root string, cat Category) []Entry {
	var out []Entry
	for _, de := range b.readDir(root, cat) {
		name := de.Name()
		if !de.Type().IsRegular() {
			continue
		}
		base, ok := strings.CutSuffix(name, cat.Ext())
		if !ok || base == "" {
			continue
		}
		out = append(out, Entry{
			Category: cat,
			Name:     base,
			Kind:     FileItem,
			Path:     filepath.Join(cat.Path(root), name),
		})
	}
	return out
}

func (b *builder) scanDirs(root string, cat Category) []Entry {
	var out []Entry
	for _, de := range b.readDir(root, cat) {
		name := de.Name()
		if !de.IsDir() {
			continue
		}
		out = append(out, Entry{
			Category: cat,
			Name:     name,
			Kind:     DirectoryItem,
			Path:     filepath.Join(cat.Path(root), name),
		})
	}
	return out
}

// scanMap reads a map file. The boolean reports whether the file exists,
// independently of whether it parsed.
func (b *builder) scanMap(root string, cat Category) ([]Entry, bool) {
	path := cat.Path(root)
	if _, err := os.Stat(path); err != nil {
		return nil, false
	}

	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		b.logger.Warn("ignoring unreadable map file", "path", path, "error", err)
		return nil, true
	}

	res := ParseMap(cat, data)
	if !res.OK() {
		b.logger.Warn("ignoring malformed map file", "path", path,
			"error", &errors.JSONParseError{Path: path, Err: errors.New(res.Reason)})
		return nil, true
	}

	keys := res.Keys()
	out := make([]Entry, 0, len(keys))
	for _, k := range keys {
		out = append(out, Entry{Category: cat, Name: k, Kind: MapEntry, Value: res.Entries[k]})
	}
	return out, true
}

// Root returns the scanned source root.
func (c *Catalog) Root() string {
	return c.root
}

// Entries returns a copy of the entries of cat in discovery order.
func (c *Catalog) Entries(cat Category) []Entry {
	if !cat.Valid() {
		return nil
	}
	return slices.Clone(c.entries[cat])
}

// Names returns the entry names of cat in discovery order.
func (c *Catalog) Names(cat Category) []string {
	if !cat.Valid() {
		return nil
	}
	names := make([]string, len(c.entries[cat]))
	for i, e := range c.entries[cat] {
		names[i] = e.Name
	}
	return names
}

// Lookup finds an entry by exact, case-sensitive name.
func (c *Catalog) Lookup(cat Category, name string) (Entry, bool) {
	if !cat.Valid() {
		return Entry{}, false
	}
	i, ok := c.index[cat][name]
	if !ok {
		return Entry{}, false
	}
	return c.entries[cat][i], true
}

// Has reports whether cat contains name.
func (c *Catalog) Has(cat Category, name string) bool {
	_, ok := c.Lookup(cat, name)
	return ok
}

// HasMCPFile reports whether the source root contains .mcp.json, even if empty or malformed.
func (c *Catalog) HasMCPFile() bool {
	return c.hasMap[MCP]
}

// HasLSPFile reports whether the source root contains .lsp.json, even if empty or malformed.
func (c *Catalog) HasLSPFile() bool {
	return c.hasMap[LSP]
}

// HasMapFile reports whether the map file of cat exists.
func (c *Catalog) HasMapFile(cat Category) bool {
	return cat.Valid() && c.hasMap[cat]
}

// Len returns the number of entries across all categories.
func (c *Catalog) Len() int {
	n := 0
	for _, e := range c.entries {
		n += len(e)
	}
	return n
}
