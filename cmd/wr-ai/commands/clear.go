package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/woicw/wr-ai/internal/config"
	"github.com/woicw/wr-ai/internal/errors"
	"github.com/woicw/wr-ai/internal/paths"
	"github.com/woicw/wr-ai/internal/ui"
)

func init() {
	rootCmd.AddCommand(clearCmd)
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove wr-ai configuration and cached templates",
	Long: `Delete the wr-ai configuration directory and the cached template
repositories. Project .claude directories are not touched.`,
	Example: `  wr-ai clear

  See Also: wr-ai update`,
	Args: cobra.NoArgs,
	RunE: runClear,
}

// clearDirs lists what clear removes.
var clearDirs = func() []string {
	return []string{config.Dir(), paths.CacheDir()}
}

func runClear(cmd *cobra.Command, _ []string) error {
	w := out(cmd)
	removed := 0
	for _, dir := range clearDirs() {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			continue
		}
		if err := os.RemoveAll(dir); err != nil {
			return errors.NewSystemError(errors.Wrapf(err, "removing %s", dir), "Check the directory permissions")
		}
		fmt.Fprintln(w, ui.Success("Removed "+dir))
		removed++
	}
	if removed == 0 {
		fmt.Fprintln(w, ui.Info("Nothing to clear"))
	}
	return nil
}
