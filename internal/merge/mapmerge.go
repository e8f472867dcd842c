package merge

import (
	"encoding/json"
	"maps"
	"os"
	"path/filepath"

	"github.com/woicw/wr-ai/internal/catalog"
	"github.com/woicw/wr-ai/internal/errors"
	"github.com/woicw/wr-ai/internal/pathguard"
	"github.com/woicw/wr-ai/internal/selection"
	"github.com/woicw/wr-ai/pkg/fileutil"
)

// mcpServersKey wraps the server map inside .mcp.json.
const mcpServersKey = "mcpServers"

// MergeMaps returns local with incoming laid over it. Incoming keys win;
// local-only keys are preserved. Neither input is modified.
func MergeMaps(local, incoming map[string]json.RawMessage) map[string]json.RawMessage {
	merged := make(map[string]json.RawMessage, len(local)+len(incoming))
	maps.Copy(merged, local)
	maps.Copy(merged, incoming)
	return merged
}

// readObject reads and parses a JSON object file. Any failure is a
// *errors.JSONParseError because the user explicitly targeted this file.
func readObject(path string) (map[string]json.RawMessage, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, &errors.JSONParseError{Path: path, Err: err}
	}
	obj, reason := catalog.ParseObject(data)
	if reason != "" {
		return nil, &errors.JSONParseError{Path: path, Err: errors.New(reason)}
	}
	return obj, nil
}

// servers extracts the mcpServers object from an .mcp.json document. A
// missing or null key yields an empty map.
func servers(path string, doc map[string]json.RawMessage) (map[string]json.RawMessage, error) {
	raw, ok := doc[mcpServersKey]
	if !ok || catalog.IsNull(raw) {
		return map[string]json.RawMessage{}, nil
	}
	obj, reason := catalog.ParseObject(raw)
	if reason != "" {
		return nil, &errors.JSONParseError{Path: path, Err: errors.Newf("%s: %s", mcpServersKey, reason)}
	}
	return obj, nil
}

// mapOf returns the mergeable map of a parsed document: the mcpServers
// object for MCP, the document itself for LSP.
func mapOf(cat catalog.Category, path string, doc map[string]json.RawMessage) (map[string]json.RawMessage, error) {
	if cat == catalog.MCP {
		return servers(path, doc)
	}
	return doc, nil
}

func (e *Engine) mergeMap(guard *pathguard.Guard, cat catalog.Category, sel selection.Selection, src, dst string, report *Report) error {
	rel := cat.RelPath()

	from, err := guard.Source(filepath.Join(src, rel))
	if err != nil {
		return err
	}
	if !fileutil.Exists(from) {
		e.logger.Debug("no map file in source, skipping", "category", cat.String(), "path", rel)
		return nil
	}
	to, err := guard.Dest(filepath.Join(dst, rel))
	if err != nil {
		return err
	}

	remoteDoc, err := readObject(from)
	if err != nil {
		return err
	}
	remote, err := mapOf(cat, from, remoteDoc)
	if err != nil {
		return err
	}

	incoming := remote
	if !sel.All && len(sel.Names) > 0 {
		incoming = make(map[string]json.RawMessage, len(sel.Names))
		for _, name := range sel.Names {
			if v, ok := remote[name]; ok {
				incoming[name] = v
			}
		}
	}

	existed := fileutil.Exists(to)
	localDoc := map[string]json.RawMessage{}
	perm := os.FileMode(0o644)
	if existed {
		info, err := os.Stat(to)
		if err != nil {
			return errors.Wrapf(err, "stat %s", rel)
		}
		perm = info.Mode().Perm()
		if localDoc, err = readObject(to); err != nil {
			return err
		}
	}
	local, err := mapOf(cat, to, localDoc)
	if err != nil {
		return err
	}

	merged := MergeMaps(local, incoming)

	out := merged
	if cat == catalog.MCP {
		// Keep any other top-level keys of the local file.
		out = maps.Clone(localDoc)
		raw, err := json.Marshal(merged)
		if err != nil {
			return errors.Wrap(err, "encoding mcpServers")
		}
		out[mcpServersKey] = raw
	}

	if err := os.MkdirAll(filepath.Dir(to), 0o755); err != nil {
		return errors.Wrapf(err, "creating directory for %s", rel)
	}
	if err := fileutil.WriteJSON(to, out, perm); err != nil {
		return errors.Wrapf(err, "writing %s", rel)
	}

	for name := range incoming {
		_, had := local[name]
		e.trace("merged map entry", "category", cat.String(), "name", name, "replaced", had)
	}
	report.record(filepath.ToSlash(rel), existed)
	return nil
}
