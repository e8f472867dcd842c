package catalog

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/woicw/wr-ai/pkg/frontmatter"
)

// skillManifest is the file inside a skill directory carrying its header.
const skillManifest = "SKILL.md"

// Describe returns a one-line summary of e: the frontmatter description of
// Markdown items, or the launch command or URL of a map entry. Items without
// a readable description yield "".
func Describe(e Entry) string {
	switch e.Kind {
	case DirectoryItem:
		return describeMarkdown(filepath.Join(e.Path, skillManifest))
	case FileItem:
		if filepath.Ext(e.Path) != ".md" {
			return ""
		}
		return describeMarkdown(e.Path)
	case MapEntry:
		var server struct {
			Command string `json:"command"`
			URL     string `json:"url"`
		}
		if json.Unmarshal(e.Value, &server) != nil {
			return ""
		}
		if server.Command != "" {
			return server.Command
		}
		return server.URL
	}
	return ""
}

func describeMarkdown(path string) string {
	m, err := frontmatter.ReadMeta(path)
	if err != nil {
		return ""
	}
	return strings.Join(strings.Fields(m.Description), " ")
}
