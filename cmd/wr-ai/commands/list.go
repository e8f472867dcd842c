package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/woicw/wr-ai/internal/catalog"
	"github.com/woicw/wr-ai/internal/errors"
	"github.com/woicw/wr-ai/internal/ui"
)

// Output formats for list.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
	outputTOML = "toml"
)

var (
	listOutput string
	listSource string
	listLong   bool
)

func init() {
	listCmd.Flags().StringVarP(&listOutput, "output", "o", outputText, "output format: text, json, yaml, toml")
	listCmd.Flags().BoolVarP(&listLong, "long", "l", false, "show descriptions in text output")
	listCmd.Flags().StringVar(&listSource, "source", "", "source directory inside the repository (default: awesome-claude)")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available configuration",
	Long: `Fetch the configured repository and list every command, skill,
agent, hook, MCP server, and LSP server in the chosen source directory.`,
	Example: `  # Human-readable listing
  wr-ai list

  # With descriptions from frontmatter
  wr-ai list --long

  # Machine-readable
  wr-ai list -o json

  See Also: wr-ai add, wr-ai init`,
	Args: cobra.NoArgs,
	RunE: runList,
}

// listing is the structured form of a catalog.
type listing struct {
	Source   string   `json:"source" yaml:"source" toml:"source"`
	Commands []string `json:"commands" yaml:"commands" toml:"commands"`
	Skills   []string `json:"skills" yaml:"skills" toml:"skills"`
	Agents   []string `json:"agents" yaml:"agents" toml:"agents"`
	Hooks    []string `json:"hooks" yaml:"hooks" toml:"hooks"`
	MCP      []string `json:"mcp" yaml:"mcp" toml:"mcp"`
	LSP      []string `json:"lsp" yaml:"lsp" toml:"lsp"`
}

func newListing(source string, cat *catalog.Catalog) *listing {
	names := func(c catalog.Category) []string {
		n := cat.Names(c)
		if n == nil {
			return []string{}
		}
		return n
	}
	return &listing{
		Source:   source,
		Commands: names(catalog.Command),
		Skills:   names(catalog.Skill),
		Agents:   names(catalog.Agent),
		Hooks:    names(catalog.Hook),
		MCP:      names(catalog.MCP),
		LSP:      names(catalog.LSP),
	}
}

func runList(cmd *cobra.Command, _ []string) error {
	switch listOutput {
	case outputText, outputJSON, outputYAML, outputTOML:
	default:
		return errors.NewUserError(errors.Newf("invalid output format %q", listOutput),
			"Valid formats: text, json, yaml, toml")
	}

	src, err := loadSource(cmd, listSource)
	if err != nil {
		return err
	}
	return writeListing(cmd.OutOrStdout(), listOutput, src.Name, src.Catalog, listLong)
}

func writeListing(w io.Writer, format, source string, cat *catalog.Catalog, long bool) error {
	l := newListing(source, cat)

	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(l), "encoding JSON")
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(l); err != nil {
			return errors.Wrap(err, "encoding YAML")
		}
		return errors.Wrap(enc.Close(), "encoding YAML")
	case outputTOML:
		return errors.Wrap(toml.NewEncoder(w).Encode(l), "encoding TOML")
	}

	if cat.Len() == 0 {
		fmt.Fprintln(w, ui.Info(fmt.Sprintf("Source %q has no configuration", source)))
		return nil
	}

	titles := []string{"Commands", "Skills", "Agents", "Hooks", "MCP servers", "LSP servers"}
	groups := make([]ui.Group, 0, len(titles))
	for i, c := range catalog.All() {
		groups = append(groups, ui.Group{Title: titles[i], Items: labels(cat, c, long)})
	}
	fmt.Fprintln(w, ui.Boxed(source, ui.Tree(groups)))
	fmt.Fprintln(w)
	fmt.Fprintln(w, ui.Hint("  wr-ai add <name>   merge specific items"))
	fmt.Fprintln(w, ui.Hint("  wr-ai init         choose interactively"))
	return nil
}

const maxDescription = 60

// shorten cuts s to at most n runes, marking the cut with "...".
func shorten(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// labels returns the display lines for c, with descriptions when long is set.
func labels(cat *catalog.Catalog, c catalog.Category, long bool) []string {
	if !long {
		return cat.Names(c)
	}
	entries := cat.Entries(c)
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		label := e.Name
		if desc := catalog.Describe(e); desc != "" {
			label += "  " + ui.Muted.Render(shorten(desc, maxDescription))
		}
		out = append(out, label)
	}
	return out
}
