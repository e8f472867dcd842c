// Package logging configures log/slog for the wr-ai CLI.
//
// Console output uses [Handler], a compact colored line format, or JSON when
// --log-format=json is given. --log-file adds a JSON copy of every record
// through [MultiHandler]. The -v flag is counted and mapped through
// [LevelFromVerbosity]; three or more enable [LevelTrace], which logs every
// file the merge engine touches.
//
// Attribute values whose key looks like a secret, values carrying a known
// token prefix, and URLs with embedded credentials are masked in every
// format, since origin URLs may embed access tokens.
//
// Commands store the logger in their context with [NewContext] and packages
// retrieve it with [FromContext]. Tests use [ForTest].
package logging
