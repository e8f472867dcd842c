// Package main is the entry point for the wr-ai CLI.
package main

import (
	"os"

	"github.com/woicw/wr-ai/cmd/wr-ai/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(commands.ReportError(os.Stderr, err))
	}
}
