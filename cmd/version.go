// Package cmd holds build metadata injected via ldflags:
//
//	go build -ldflags "-X github.com/woicw/wr-ai/cmd.Version=v1.2.0"
package cmd

import "fmt"

var (
	// Version is the semantic version of the build.
	Version = "dev"
	// Commit is the git commit SHA of the build.
	Commit = "none"
	// Date is the build date.
	Date = "unknown"
)

// BuildInfo formats the version block printed by `wr-ai version`.
func BuildInfo() string {
	return fmt.Sprintf("wr-ai version %s\n  commit: %s\n  built:  %s\n", Version, Commit, Date)
}
