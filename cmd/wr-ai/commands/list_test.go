package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/woicw/wr-ai/internal/catalog"
	"github.com/woicw/wr-ai/internal/catalog/catalogtest"
)

func sampleCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Build(catalogtest.WriteTree(t, t.TempDir(), catalogtest.Sample))
	require.NoError(t, err)
	return c
}

func TestWriteListing_Structured(t *testing.T) {
	c := sampleCatalog(t)
	want := listing{
		Source:   "awesome-claude",
		Commands: []string{"commit", "review"},
		Skills:   []string{"pdf", "review"},
		Agents:   []string{"planner"},
		Hooks:    []string{"pre-commit"},
		MCP:      []string{"fetch", "github"},
		LSP:      []string{"gopls"},
	}

	decoders := map[string]func([]byte, any) error{
		outputJSON: json.Unmarshal,
		outputYAML: yaml.Unmarshal,
		outputTOML: toml.Unmarshal,
	}
	for format, decode := range decoders {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, writeListing(&buf, format, "awesome-claude", c, false))

			var got listing
			require.NoError(t, decode(buf.Bytes(), &got))
			assert.Equal(t, want, got)
		})
	}
}

func TestWriteListing_EmptyCategoriesAreArrays(t *testing.T) {
	c, err := catalog.Build(catalogtest.WriteTree(t, t.TempDir(), map[string]string{
		"commands/review.md": "x",
	}))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeListing(&buf, outputJSON, "team", c, false))
	assert.Contains(t, buf.String(), `"skills": []`)
}

func TestWriteListing_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeListing(&buf, outputText, "awesome-claude", sampleCatalog(t), false))

	out := buf.String()
	for _, want := range []string{"awesome-claude", "Commands", "planner", "MCP servers", "gopls", "wr-ai add"} {
		assert.Contains(t, out, want)
	}
}

func TestWriteListing_TextLong(t *testing.T) {
	c, err := catalog.Build(catalogtest.WriteTree(t, t.TempDir(), map[string]string{
		"commands/review.md": "---\ndescription: Review staged changes\n---\n",
		".mcp.json":          `{"mcpServers":{"github":{"command":"gh-mcp"}}}`,
	}))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeListing(&buf, outputText, "team", c, true))
	assert.Contains(t, buf.String(), "Review staged changes")
	assert.Contains(t, buf.String(), "gh-mcp")
}

func TestWriteListing_TextEmpty(t *testing.T) {
	c, err := catalog.Build(t.TempDir())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeListing(&buf, outputText, "team", c, false))
	assert.Contains(t, buf.String(), "no configuration")
}

func TestListCommand(t *testing.T) {
	withOrigin(t, catalogtest.Sample)

	stdout, _, err := execute(t, "list", "-o", "json")
	require.NoError(t, err)

	var got listing
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "awesome-claude", got.Source)
	assert.Equal(t, []string{"commit", "review"}, got.Commands)
}

func TestListCommand_InvalidFormat(t *testing.T) {
	isolate(t)

	_, _, err := execute(t, "list", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestShorten(t *testing.T) {
	assert.Equal(t, "short", shorten("short", 10))
	assert.Equal(t, "abcdefg...", shorten("abcdefghijklmnop", 10))
	assert.Equal(t, "日本語日本語日...", shorten("日本語日本語日本語日本語", 10))
}
