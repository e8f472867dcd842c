package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/woicw/wr-ai/internal/git"
	"github.com/woicw/wr-ai/internal/logging"
	"github.com/woicw/wr-ai/internal/ui"
)

func init() {
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Fetch the latest configuration repository",
	Long: `Clone the configured repository, or fast-forward the cached clone,
without merging anything.`,
	Example: `  wr-ai update

  See Also: wr-ai set github, wr-ai clear`,
	Args: cobra.NoArgs,
	RunE: runUpdate,
}

func runUpdate(cmd *cobra.Command, _ []string) error {
	dir, err := fetchRepo(cmd)
	if err != nil {
		return err
	}

	msg := "Templates up to date"
	if head, err := git.HeadCommit(cmd.Context(), dir); err == nil && head != "" {
		msg = fmt.Sprintf("Templates up to date at %.12s", head)
	} else if err != nil {
		logging.FromContext(cmd.Context()).Debug("reading HEAD", "dir", dir, "error", err)
	}
	fmt.Fprintln(out(cmd), ui.Success(msg))
	fmt.Fprintln(out(cmd), ui.Hint("  "+dir))
	return nil
}
