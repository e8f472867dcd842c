package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/woicw/wr-ai/internal/doctor"
	"github.com/woicw/wr-ai/internal/errors"
	"github.com/woicw/wr-ai/internal/logging"
	"github.com/woicw/wr-ai/internal/ui"
)

var (
	doctorJSON bool
	doctorAll  bool
	doctorDir  string
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output results as JSON")
	doctorCmd.Flags().BoolVarP(&doctorAll, "all", "a", false, "show passing checks too")
	doctorCmd.Flags().StringVar(&doctorDir, "dir", ".", "project root to inspect")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose configuration issues",
	Long: `Run diagnostic checks on the wr-ai installation and the current project.

Checks that git is available, the config file is valid and private, the
template cache is usable, and the project's .claude directory has well-formed
MCP and LSP files and is covered by .gitignore.

Exit codes:
  0 - No errors or warnings
  1 - Warnings present, no errors
  2 - Errors present`,
	Example: `  wr-ai doctor
  wr-ai doctor --all
  wr-ai doctor --json`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	logger := logging.FromContext(cmd.Context())

	projectRoot, err := filepath.Abs(doctorDir)
	if err != nil {
		return errors.Wrapf(err, "resolving %s", doctorDir)
	}

	runner := doctor.NewRunner(
		doctor.NewGitCheck(),
		doctor.NewConfigCheck(configPath),
	)
	if origin, err := newStore().RemoteURL(); err == nil {
		fetcher := newFetcher(currentConfig().FetchTimeout, logger)
		if dir, err := fetcher.CacheDir(origin); err == nil {
			runner.AddCheck(doctor.NewCacheCheck(dir))
		}
	}
	runner.AddCheck(doctor.NewProjectCheck(projectRoot))

	report := runner.Run(cmd.Context())

	if doctorJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return errors.Wrap(err, "encoding JSON")
		}
	} else {
		writeDoctorText(out(cmd), report, doctorAll)
	}

	switch {
	case report.HasErrors():
		return &errors.ExitError{Err: errors.Newf("%d check(s) failed", report.Summary.Errors), Code: errors.ExitSystem}
	case report.HasWarnings():
		return &errors.ExitError{Err: errors.Newf("%d check(s) raised warnings", report.Summary.Warnings), Code: errors.ExitUser}
	}
	return nil
}

func writeDoctorText(w io.Writer, report *doctor.Report, all bool) {
	for _, r := range report.Results {
		if !all && r.Status != doctor.SeverityError && r.Status != doctor.SeverityWarning {
			continue
		}
		line := fmt.Sprintf("[%s] %s: %s", r.Category, r.Name, r.Message)
		switch r.Status {
		case doctor.SeverityError:
			fmt.Fprintln(w, ui.Error(line))
		case doctor.SeverityWarning:
			fmt.Fprintln(w, ui.Warning(line))
		case doctor.SeverityInfo:
			fmt.Fprintln(w, ui.Info(line))
		default:
			fmt.Fprintln(w, ui.Success(line))
		}
		if r.FixHint != "" && r.Status != doctor.SeverityPass {
			fmt.Fprintln(w, ui.Hint("  hint: "+r.FixHint))
		}
	}

	fmt.Fprintf(w, "Summary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)
}
