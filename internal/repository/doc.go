// Package repository fetches the remote template repository into a local
// cache and locates the configuration source directories inside it.
//
// A [Fetcher] clones the repository on first use and fast-forwards it on
// every later call:
//
//	f := repository.NewFetcher(repository.WithTimeout(cfg.FetchTimeout))
//	dir, err := f.Fetch(ctx, url)
//
// Each remote gets its own cache directory, named from the owner and
// repository segments of its URL (see [RepoKey]). Failures are reported as
// *errors.FetchError; an interrupt delivered through ctx is reported as
// errors.ErrCancelled so the CLI can exit cleanly.
//
// A template repository holds one or more source directories, each laid out
// as commands/, skills/, agents/, hooks/, .mcp.json and .lsp.json. Use
// [ListSources] and [ResolveSource] to pick one.
package repository
