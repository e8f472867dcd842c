package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woicw/wr-ai/internal/catalog"
	"github.com/woicw/wr-ai/internal/catalog/catalogtest"
	"github.com/woicw/wr-ai/internal/selection"
)

func plan(t *testing.T, tokens ...string) *selection.Plan {
	t.Helper()
	c, err := catalog.Build(catalogtest.WriteTree(t, t.TempDir(), catalogtest.Sample))
	require.NoError(t, err)
	return selection.Resolve(tokens, c)
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name   string
		local  map[string]string
		tokens []string
		want   string
	}{
		{
			name:   "all commands with local commands",
			local:  map[string]string{"commands/mine.md": "x"},
			tokens: []string{"__all_commands__"},
			want:   Message(catalog.Command),
		},
		{
			name:   "two named commands never ask",
			local:  map[string]string{"commands/review.md": "x", "commands/commit.md": "y"},
			tokens: []string{"cmd:review", "cmd:commit"},
		},
		{
			name:   "all commands into empty destination",
			tokens: []string{"cmd:*"},
		},
		{
			name:   "global wildcard with any local content",
			local:  map[string]string{".lsp.json": "{}"},
			tokens: []string{"__all__"},
			want:   GlobalMessage,
		},
		{
			name:   "global wildcard into empty destination",
			tokens: []string{"*"},
		},
		{
			name:   "all skills with local commands only",
			local:  map[string]string{"commands/mine.md": "x"},
			tokens: []string{"__all_skills__"},
		},
		{
			name:   "commands take precedence over skills",
			local:  map[string]string{"commands/mine.md": "x", "skills/mine/SKILL.md": "x"},
			tokens: []string{"__all_skills__", "__all_commands__"},
			want:   Message(catalog.Command),
		},
		{
			name:   "hidden files count as content",
			local:  map[string]string{"agents/.keep": ""},
			tokens: []string{"agent:*"},
			want:   Message(catalog.Agent),
		},
		{
			name:   "mcp word with local file",
			local:  map[string]string{".mcp.json": "{}"},
			tokens: []string{"mcp"},
			want:   Message(catalog.MCP),
		},
		{
			name:   "named mcp server never asks",
			local:  map[string]string{".mcp.json": "{}"},
			tokens: []string{"mcp:github"},
		},
		{
			name:   "all lsp with local file",
			local:  map[string]string{".lsp.json": "{}"},
			tokens: []string{"__all_lsp__"},
			want:   Message(catalog.LSP),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := catalogtest.WriteTree(t, t.TempDir(), tt.local)

			got, err := Check(plan(t, tt.tokens...), dst)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheck_DotfileOnlyDirectory(t *testing.T) {
	dst := catalogtest.WriteTree(t, t.TempDir(), map[string]string{"commands/.keep": ""})
	p := plan(t, "__all_commands__")

	got, err := Check(p, dst)
	require.NoError(t, err)
	assert.Equal(t, Message(catalog.Command), got)

	got, err = Check(p, t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMessage(t *testing.T) {
	assert.Contains(t, Message(catalog.Skill), "remote skills")
	assert.Contains(t, Message(catalog.MCP), "remote MCP configuration")
	assert.Contains(t, Message(catalog.LSP), "existing LSP entries")
}
