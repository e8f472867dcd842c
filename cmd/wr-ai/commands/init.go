package commands

import (
	"github.com/spf13/cobra"

	"github.com/woicw/wr-ai/internal/errors"
)

var initOpts mergeOptions

func init() {
	initOpts.register(initCmd)
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init [tokens...]",
	Short: "Pick configuration to merge into ./.claude",
	Long: `Fetch the configured repository and merge a selection into the
project's .claude directory.

Without tokens, an interactive fuzzy finder lists everything available.
Tokens select items directly:

  __all__ or *            everything
  __all_<category>__      every item of a category (e.g. __all_skills__)
  <prefix>:*              same, by prefix (cmd, skill, agent, hook, mcp, lsp)
  <prefix>:<name>         one item (e.g. cmd:review, mcp:github)
  <name>                  first match among commands, skills, agents,
                          hooks, MCP servers, then LSP servers
  mcp, lsp                the whole MCP or LSP map

Selecting a whole category that already has local content asks for
confirmation first; pass --yes to skip it.`,
	Example: `  # Choose interactively
  wr-ai init

  # Everything, without prompting
  wr-ai init __all__ --yes

  # From a different source directory
  wr-ai init --source team-frontend

  See Also: wr-ai add, wr-ai list`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !stdinIsTerminal() {
		return errors.NewUserError(errors.New("no selection given and stdin is not a terminal"),
			"Pass tokens, e.g.: wr-ai init __all__ --yes")
	}

	src, err := loadSource(cmd, initOpts.source)
	if err != nil {
		return err
	}
	if src.Catalog.Len() == 0 {
		return errors.NewUserError(errors.Newf("source %q has no configuration", src.Name),
			"Check the repository layout with: wr-ai list")
	}

	sel := newSelector()
	tokens := args
	if len(tokens) == 0 {
		if tokens, err = selectInteractively(sel, src.Catalog); err != nil {
			return err
		}
	}
	return runMerge(cmd, &initOpts, src, tokens, sel)
}
