// Package doctor runs diagnostic checks on the wr-ai installation and on a
// project's .claude directory.
package doctor

import (
	"context"
	"time"
)

// Severity orders check outcomes from harmless to blocking.
type Severity int

const (
	SeverityPass Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
)

var severityNames = [...]string{"pass", "info", "warning", "error"}

func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return "unknown"
	}
	return severityNames[s]
}

// MarshalText encodes the severity by name so reports read well as JSON.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Check is a single diagnostic. Run never returns nil.
type Check interface {
	Name() string
	Category() string
	Run(ctx context.Context) *CheckResult
}

// CheckResult is the outcome of one Check. FixHint is only shown for
// results that are not passing.
type CheckResult struct {
	Name     string         `json:"name"`
	Category string         `json:"category"`
	Status   Severity       `json:"status"`
	Message  string         `json:"message"`
	Details  map[string]any `json:"details,omitempty"`
	FixHint  string         `json:"fix_hint,omitempty"`
}

func newResult(c Check) *CheckResult {
	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{},
	}
}

// Summary counts results per severity.
type Summary struct {
	Passed   int `json:"passed"`
	Info     int `json:"info"`
	Warnings int `json:"warnings"`
	Errors   int `json:"errors"`
}

func (s *Summary) count(status Severity) {
	switch status {
	case SeverityPass:
		s.Passed++
	case SeverityInfo:
		s.Info++
	case SeverityWarning:
		s.Warnings++
	case SeverityError:
		s.Errors++
	}
}

// Report is what a Runner produces.
type Report struct {
	Timestamp time.Time      `json:"timestamp"`
	Results   []*CheckResult `json:"results"`
	Summary   Summary        `json:"summary"`
}

// HasErrors reports whether any check failed outright.
func (r *Report) HasErrors() bool { return r.Summary.Errors > 0 }

// HasWarnings reports whether any check raised a warning.
func (r *Report) HasWarnings() bool { return r.Summary.Warnings > 0 }

// Runner runs checks sequentially in registration order.
type Runner struct {
	checks []Check
}

// NewRunner returns a runner for checks.
func NewRunner(checks ...Check) *Runner {
	return &Runner{checks: checks}
}

// AddCheck appends c to the run order.
func (r *Runner) AddCheck(c Check) {
	r.checks = append(r.checks, c)
}

// Run executes the checks. Once ctx is done the remaining checks are
// skipped and the partial report is returned.
func (r *Runner) Run(ctx context.Context) *Report {
	report := &Report{Timestamp: time.Now().UTC()}
	report.Results = make([]*CheckResult, 0, len(r.checks))
	for _, c := range r.checks {
		if ctx.Err() != nil {
			break
		}
		res := c.Run(ctx)
		report.Summary.count(res.Status)
		report.Results = append(report.Results, res)
	}
	return report
}
