package catalog

import (
	"bytes"
	"encoding/json"
	"maps"
	"slices"
)

// mcpServersKey wraps the server map inside .mcp.json.
const mcpServersKey = "mcpServers"

// MapResult is the outcome of checking a map file's shape. Reason is empty
// on success; otherwise Entries is empty and Reason says why.
type MapResult struct {
	Entries map[string]json.RawMessage
	Reason  string
}

// OK reports whether the file had the expected shape.
func (r MapResult) OK() bool {
	return r.Reason == ""
}

// Keys returns the entry names in sorted order.
func (r MapResult) Keys() []string {
	keys := make([]string, 0, len(r.Entries))
	keys = append(keys, slices.Sorted(maps.Keys(r.Entries))...)
	return keys
}

// ParseObject decodes data as a JSON object, keeping member values raw.
func ParseObject(data []byte) (map[string]json.RawMessage, string) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, "file is empty"
	}
	if !json.Valid(trimmed) {
		return nil, "invalid JSON"
	}
	if trimmed[0] != '{' {
		return nil, "top level is not an object"
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil, err.Error()
	}
	return obj, ""
}

// IsNull reports whether a raw member value is the JSON literal null.
func IsNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// ParseMCP checks the {"mcpServers": {...}} shape of an .mcp.json file.
// A missing or null mcpServers key is valid and yields no entries.
func ParseMCP(data []byte) MapResult {
	top, reason := ParseObject(data)
	if reason != "" {
		return MapResult{Entries: map[string]json.RawMessage{}, Reason: reason}
	}
	raw, ok := top[mcpServersKey]
	if !ok || IsNull(raw) {
		return MapResult{Entries: map[string]json.RawMessage{}}
	}
	servers, reason := ParseObject(raw)
	if reason != "" {
		return MapResult{Entries: map[string]json.RawMessage{}, Reason: mcpServersKey + " is not an object"}
	}
	return MapResult{Entries: servers}
}

// ParseLSP checks the flat {name: config} shape of an .lsp.json file.
func ParseLSP(data []byte) MapResult {
	top, reason := ParseObject(data)
	if reason != "" {
		return MapResult{Entries: map[string]json.RawMessage{}, Reason: reason}
	}
	return MapResult{Entries: top}
}

// ParseMap dispatches to ParseMCP or ParseLSP.
func ParseMap(c Category, data []byte) MapResult {
	if c == MCP {
		return ParseMCP(data)
	}
	return ParseLSP(data)
}
