package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/woicw/wr-ai/internal/catalog"
	"github.com/woicw/wr-ai/internal/cli/prompt"
	"github.com/woicw/wr-ai/internal/errors"
	"github.com/woicw/wr-ai/internal/gate"
	"github.com/woicw/wr-ai/internal/logging"
	"github.com/woicw/wr-ai/internal/merge"
	"github.com/woicw/wr-ai/internal/paths"
	"github.com/woicw/wr-ai/internal/selection"
	"github.com/woicw/wr-ai/internal/ui"
	"github.com/woicw/wr-ai/internal/workspace"
)

// mergeOptions are the flags shared by init and add.
type mergeOptions struct {
	yes    bool
	source string
	dir    string
}

func (o *mergeOptions) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&o.yes, "yes", "y", false, "merge without asking for confirmation")
	cmd.Flags().StringVar(&o.source, "source", "", "source directory inside the repository (default: awesome-claude)")
	cmd.Flags().StringVar(&o.dir, "dir", ".", "project root that receives .claude")
}

// runMerge resolves tokens against src, asks for confirmation when a
// select-all would touch existing content, merges into <dir>/.claude and
// updates .gitignore.
func runMerge(cmd *cobra.Command, opts *mergeOptions, src *sourceTree, tokens []string, sel *prompt.Selector) error {
	logger := logging.FromContext(cmd.Context())
	w := out(cmd)

	plan := selection.Resolve(tokens, src.Catalog)
	if err := selection.CheckResolved(src.Catalog, plan); err != nil {
		return errors.NewUserError(err, "Run 'wr-ai list' to see what is available")
	}
	if plan.Empty() {
		fmt.Fprintln(w, ui.Info("Nothing to merge"))
		return nil
	}

	projectRoot, err := filepath.Abs(opts.dir)
	if err != nil {
		return errors.Wrapf(err, "resolving %s", opts.dir)
	}
	dest := paths.ProjectClaudeDir(projectRoot)

	msg, err := gate.Check(plan, dest)
	if err != nil {
		return err
	}
	if msg != "" && !opts.yes {
		if err := confirm(sel, msg); err != nil {
			return err
		}
	}

	if _, err := workspace.EnsureClaudeDir(projectRoot); err != nil {
		return err
	}

	logger.Info("merging", "source", src.Name, "items", plan.Count(), "dest", dest)
	report, err := merge.NewEngine(merge.WithLogger(logger)).Apply(plan, src.Root, dest)
	if err != nil {
		return err
	}
	printReport(w, report)

	changed, err := workspace.UpdateGitignore(projectRoot)
	if err != nil {
		logger.Warn("could not update .gitignore", "error", err)
	} else if changed {
		fmt.Fprintln(w, ui.Info("Added .claude to .gitignore"))
	}
	return nil
}

// confirm asks msg interactively. Without a terminal the merge is refused
// rather than silently overwriting.
func confirm(sel *prompt.Selector, msg string) error {
	if sel == nil || !stdinIsTerminal() {
		return errors.NewUserError(errors.New("confirmation required to overwrite existing files"),
			"Re-run with --yes to merge without prompting")
	}
	ok, err := sel.Confirm(msg)
	if err != nil {
		return err
	}
	if !ok {
		return errors.ErrCancelled
	}
	return nil
}

func printReport(w io.Writer, r *merge.Report) {
	fmt.Fprintln(w, ui.Success(fmt.Sprintf("Merged %d item(s) into .claude/ (%d added, %d updated):",
		len(r.Copied), len(r.Added), len(r.Updated))))
	fmt.Fprint(w, ui.BulletList(r.Copied))
}

// selectionOptions lists the interactive choices: everything, each
// non-empty category, then every entry.
func selectionOptions(cat *catalog.Catalog) []prompt.Option {
	options := []prompt.Option{{Label: "Everything", Value: selection.AllToken}}
	for _, c := range catalog.All() {
		names := cat.Names(c)
		if len(names) == 0 {
			continue
		}
		options = append(options, prompt.Option{
			Label: fmt.Sprintf("All %s (%d)", c.Plural(), len(names)),
			Value: c.AllToken(),
		})
	}
	for _, c := range catalog.All() {
		for _, name := range cat.Names(c) {
			options = append(options, prompt.Option{
				Label: c.String() + ": " + name,
				Value: c.Prefix() + ":" + name,
			})
		}
	}
	return options
}

// selectInteractively runs the fuzzy multi-select, offering a retry when
// nothing was marked.
func selectInteractively(sel *prompt.Selector, cat *catalog.Catalog) ([]string, error) {
	options := selectionOptions(cat)
	for {
		values, err := sel.MultiSelect("Tab marks items, Enter merges them", options)
		if err != nil {
			return nil, err
		}
		if len(values) > 0 {
			return values, nil
		}
		retry, err := sel.RetryOrCancel("Nothing selected.")
		if err != nil {
			return nil, err
		}
		if !retry {
			return nil, errors.ErrCancelled
		}
	}
}
