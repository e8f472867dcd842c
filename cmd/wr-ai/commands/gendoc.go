package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/woicw/wr-ai/cmd"
	"github.com/woicw/wr-ai/internal/errors"
)

var (
	genDocDir    string
	genDocFormat string
)

// gen-doc is used by the release pipeline and stays out of --help.
var genDocCmd = &cobra.Command{
	Use:    "gen-doc",
	Short:  "Generate reference documentation for the CLI",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE:   runGenDoc,
}

func init() {
	genDocCmd.Flags().StringVarP(&genDocDir, "dir", "d", "", "output directory")
	genDocCmd.Flags().StringVar(&genDocFormat, "format", "markdown", "markdown or man")
	rootCmd.AddCommand(genDocCmd)
}

func runGenDoc(c *cobra.Command, _ []string) error {
	if genDocDir == "" {
		return errors.NewUserError(errors.New("output directory is required"), "Pass --dir <path>")
	}
	if err := os.MkdirAll(genDocDir, 0o755); err != nil {
		return errors.Wrapf(err, "creating %s", genDocDir)
	}

	var err error
	switch genDocFormat {
	case "markdown", "md":
		err = doc.GenMarkdownTreeCustom(rootCmd, genDocDir, docFrontMatter, docLink)
	case "man":
		err = doc.GenManTree(rootCmd, &doc.GenManHeader{
			Title:   "WR-AI",
			Section: "1",
			Source:  "wr-ai " + cmd.Version,
		}, genDocDir)
	default:
		return errors.NewUserError(errors.Newf("unknown doc format %q", genDocFormat), "Use --format markdown or --format man")
	}
	if err != nil {
		return errors.Wrapf(err, "generating %s docs", genDocFormat)
	}

	fmt.Fprintf(c.OutOrStdout(), "Documentation written to %s\n", genDocDir)
	return nil
}

// docFrontMatter titles wr-ai_config_show.md as "wr-ai config show".
func docFrontMatter(filename string) string {
	title := strings.ReplaceAll(strings.TrimSuffix(filepath.Base(filename), ".md"), "_", " ")
	return "---\ntitle: \"" + title + "\"\ndescription: \"Reference for " + title + "\"\n---\n"
}

func docLink(name string) string {
	return strings.TrimSuffix(name, ".md") + "/"
}
