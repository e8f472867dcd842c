package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/woicw/wr-ai/internal/config"
	"github.com/woicw/wr-ai/internal/errors"
	"github.com/woicw/wr-ai/internal/repository"
	"github.com/woicw/wr-ai/internal/ui"
)

func init() {
	setCmd.AddCommand(setGithubCmd)
	rootCmd.AddCommand(setCmd)
}

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Set wr-ai options",
}

var setGithubCmd = &cobra.Command{
	Use:   "github <url>",
	Short: "Set the configuration repository",
	Long: `Record the git repository wr-ai fetches configuration from.

Accepts any git URL (https, ssh, scp-like git@host:owner/repo.git) or
GitHub owner/repo shorthand.`,
	Example: `  wr-ai set github acme/ai-config
  wr-ai set github git@github.com:acme/ai-config.git

  See Also: wr-ai config get origin`,
	Args: cobra.ExactArgs(1),
	RunE: runSetGithub,
}

func runSetGithub(cmd *cobra.Command, args []string) error {
	return setRemote(cmd, newStore(), args[0])
}

// setRemote validates url and records it in store.
func setRemote(cmd *cobra.Command, store config.Store, url string) error {
	normalized, err := repository.NormalizeURL(url)
	if err != nil {
		return errors.NewUserError(err, "Use an https, ssh, or owner/repo address")
	}
	if err := store.SetRemoteURL(normalized); err != nil {
		return err
	}
	fmt.Fprintln(out(cmd), ui.Success("Repository set to "+normalized))
	return nil
}
