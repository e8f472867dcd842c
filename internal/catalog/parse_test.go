package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMCP(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantKeys []string
		wantOK   bool
	}{
		{"servers", `{"mcpServers":{"b":{},"a":{}}}`, []string{"a", "b"}, true},
		{"no servers key", `{"other":1}`, []string{}, true},
		{"empty servers", `{"mcpServers":{}}`, []string{}, true},
		{"servers is array", `{"mcpServers":[]}`, []string{}, false},
		{"servers is null", `{"mcpServers":null}`, []string{}, true},
		{"servers is null with spaces", `{"mcpServers": null }`, []string{}, true},
		{"top is array", `[1]`, []string{}, false},
		{"invalid", `{"mcpServers":`, []string{}, false},
		{"empty file", ``, []string{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ParseMCP([]byte(tt.data))
			assert.Equal(t, tt.wantOK, res.OK(), res.Reason)
			assert.Equal(t, tt.wantKeys, res.Keys())
		})
	}
}

func TestParseLSP(t *testing.T) {
	res := ParseLSP([]byte(`{"gopls":{"command":"gopls"},"rust-analyzer":{}}`))
	assert.True(t, res.OK())
	assert.Equal(t, []string{"gopls", "rust-analyzer"}, res.Keys())

	res = ParseLSP([]byte(`"gopls"`))
	assert.False(t, res.OK())
	assert.Equal(t, "top level is not an object", res.Reason)
	assert.Empty(t, res.Entries)
}
