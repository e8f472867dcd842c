package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/woicw/wr-ai/cmd"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Args:  cobra.NoArgs,
	Run: func(c *cobra.Command, _ []string) {
		if versionShort {
			fmt.Fprintln(c.OutOrStdout(), cmd.Version)
			return
		}
		fmt.Fprint(c.OutOrStdout(), cmd.BuildInfo())
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "print only the version number")
	rootCmd.AddCommand(versionCmd)
}
