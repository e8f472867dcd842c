// Package config provides configuration management for the wr-ai CLI.
//
// The configuration file lives at <ConfigHome>/wr-ai/config.yaml (override
// the directory with WR_AI_CONFIG_DIR) and has the following structure:
//
//	version: 1
//	origin: https://github.com/woicw/ai-config.git
//	fetch_timeout: 30s
//
// Every key can also be overridden from the environment with the WR_AI_
// prefix, for example WR_AI_FETCH_TIMEOUT=1m.
//
// # Loading Configuration
//
// Call [Init] once at startup, then [Load] with an explicit path or "" to
// search the default location:
//
//	config.Init()
//	cfg, err := config.Load("")
//
// # Remote URL Store
//
// Commands that only need the template repository URL depend on the [Store]
// interface. [FileStore] implements it over the same YAML file and persists
// changes with an atomic write:
//
//	store := config.NewFileStore("")
//	url, err := store.RemoteURL()
package config
