package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woicw/wr-ai/internal/catalog/catalogtest"
)

func TestDescribe(t *testing.T) {
	root := catalogtest.WriteTree(t, t.TempDir(), map[string]string{
		"commands/review.md":    "---\ndescription: Review the\n  staged diff\n---\n# review\n",
		"commands/plain.md":     "# no header\n",
		"skills/pdf/SKILL.md":   "---\nname: pdf\ndescription: Fill PDF forms\n---\n",
		"skills/bare/notes.txt": "x",
		"hooks/pre-commit.json": "{}",
		".mcp.json":             `{"mcpServers":{"github":{"command":"gh-mcp"},"fetch":{"url":"https://fetch.example"},"odd":[]}}`,
		"agents/broken.md":      "---\ndescription: open\n",
	})
	c, err := Build(root)
	require.NoError(t, err)

	describe := func(cat Category, name string) string {
		e, ok := c.Lookup(cat, name)
		require.True(t, ok, "%s %s", cat, name)
		return Describe(e)
	}

	assert.Equal(t, "Review the staged diff", describe(Command, "review"))
	assert.Empty(t, describe(Command, "plain"))
	assert.Equal(t, "Fill PDF forms", describe(Skill, "pdf"))
	assert.Empty(t, describe(Skill, "bare"))
	assert.Empty(t, describe(Hook, "pre-commit"))
	assert.Equal(t, "gh-mcp", describe(MCP, "github"))
	assert.Equal(t, "https://fetch.example", describe(MCP, "fetch"))
	assert.Empty(t, describe(MCP, "odd"))
	assert.Empty(t, describe(Agent, "broken"))
}
