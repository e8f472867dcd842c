package commands

import (
	"github.com/spf13/cobra"
)

var addOpts mergeOptions

func init() {
	addOpts.register(addCmd)
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <name>...",
	Short: "Merge named items into ./.claude",
	Long: `Merge specific items from the configured repository into the
project's .claude directory.

A bare name is looked up among commands, skills, agents, and hooks first,
then MCP and LSP server names; qualify it (cmd:, skill:, agent:, hook:,
mcp:, lsp:) to pick a category explicitly. Any name that matches nothing
aborts the whole add and lists what is available.`,
	Example: `  # A command and a skill
  wr-ai add review skill:pdf

  # One MCP server, merged into .claude/.mcp.json
  wr-ai add mcp:github

  # Every hook
  wr-ai add __all_hooks__ --yes

  See Also: wr-ai init, wr-ai list`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	src, err := loadSource(cmd, addOpts.source)
	if err != nil {
		return err
	}
	return runMerge(cmd, &addOpts, src, args, newSelector())
}
