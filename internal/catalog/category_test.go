package catalog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrefix(t *testing.T) {
	tests := []struct {
		prefix string
		want   Category
		ok     bool
	}{
		{"cmd", Command, true},
		{"skill", Skill, true},
		{"agent", Agent, true},
		{"hook", Hook, true},
		{"mcp", MCP, true},
		{"lsp", LSP, true},
		{"command", 0, false},
		{"CMD", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParsePrefix(tt.prefix)
		assert.Equal(t, tt.ok, ok, tt.prefix)
		if tt.ok {
			assert.Equal(t, tt.want, got, tt.prefix)
		}
	}
}

func TestParseAllToken(t *testing.T) {
	for _, cat := range All() {
		got, ok := ParseAllToken(cat.AllToken())
		assert.True(t, ok, cat.AllToken())
		assert.Equal(t, cat, got)
	}
	assert.Equal(t, "__all_commands__", Command.AllToken())
	assert.Equal(t, "__all_mcp__", MCP.AllToken())

	_, ok := ParseAllToken("__all__")
	assert.False(t, ok)
}

func TestCategory_EntryRelPath(t *testing.T) {
	assert.Equal(t, filepath.Join("commands", "review.md"), Command.EntryRelPath("review"))
	assert.Equal(t, filepath.Join("hooks", "pre.json"), Hook.EntryRelPath("pre"))
	assert.Equal(t, filepath.Join("skills", "pdf"), Skill.EntryRelPath("pdf"))
	assert.Equal(t, ".mcp.json", MCP.EntryRelPath("github"))
	assert.Equal(t, ".lsp.json", LSP.EntryRelPath("gopls"))
}

func TestCategory_MarshalText(t *testing.T) {
	b, err := Skill.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "skill", string(b))

	_, err = Category(42).MarshalText()
	assert.Error(t, err)
}
