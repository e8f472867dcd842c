// Package catalogtest builds source and destination trees for tests.
package catalogtest

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// WriteTree creates root and writes every file in files, keyed by slash
// separated path relative to root. Parent directories are created as needed.
func WriteTree(t testing.TB, root string, files map[string]string) string {
	t.Helper()
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("creating %s: %v", root, err)
	}
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("creating parent of %s: %v", path, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("writing %s: %v", path, err)
		}
	}
	return root
}

// ReadTree returns every regular file under root keyed by slash separated
// relative path. A missing root yields an empty map.
func ReadTree(t testing.TB, root string) map[string]string {
	t.Helper()
	out := map[string]string{}
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == root {
				return filepath.SkipDir
			}
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		out[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("reading tree %s: %v", root, err)
	}
	return out
}

// Keys returns the sorted keys of a tree.
func Keys(tree map[string]string) []string {
	keys := make([]string, 0, len(tree))
	for k := range tree {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Sample is a source root exercising every category.
var Sample = map[string]string{
	"commands/review.md":         "# review\n",
	"commands/commit.md":         "# commit\n",
	"commands/notes.txt":         "ignored\n",
	"commands/.hidden.md":        "ignored\n",
	"agents/planner.md":          "# planner\n",
	"hooks/pre-commit.json":      "{\"event\":\"PreToolUse\"}\n",
	"hooks/readme.md":            "ignored\n",
	"skills/pdf/SKILL.md":        "# pdf\n",
	"skills/pdf/scripts/fill.py": "print('fill')\n",
	"skills/review/SKILL.md":     "# review skill\n",
	".mcp.json":                  `{"mcpServers":{"github":{"command":"gh-mcp"},"fetch":{"url":"https://fetch.example"}}}`,
	".lsp.json":                  `{"gopls":{"command":"gopls"}}`,
}
