// Package paths resolves the directories wr-ai reads and writes.
//
// Configuration and cache locations follow the XDG Base Directory
// Specification through github.com/adrg/xdg:
//
//	paths.ConfigPath()        // <ConfigHome>/wr-ai/config.yaml
//	paths.TemplatesCacheDir() // <CacheHome>/wr-ai/templates/
//
// The layout constants name the entries of a template source root, which the
// project's .claude directory mirrors:
//
//	commands/*.md  agents/*.md  hooks/*.json  skills/<name>/**
//	.mcp.json      .lsp.json
package paths
