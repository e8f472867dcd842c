package doctor

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

type stubCheck struct {
	name   string
	status Severity
	ran    *int
}

func (s stubCheck) Name() string     { return s.name }
func (s stubCheck) Category() string { return "test" }

func (s stubCheck) Run(context.Context) *CheckResult {
	if s.ran != nil {
		*s.ran++
	}
	return &CheckResult{Name: s.name, Category: "test", Status: s.status}
}

func TestRunner_Summary(t *testing.T) {
	r := NewRunner(
		stubCheck{name: "a", status: SeverityPass},
		stubCheck{name: "b", status: SeverityInfo},
	)
	r.AddCheck(stubCheck{name: "c", status: SeverityWarning})
	r.AddCheck(stubCheck{name: "d", status: SeverityError})
	r.AddCheck(stubCheck{name: "e", status: SeverityPass})

	report := r.Run(t.Context())

	want := Summary{Passed: 2, Info: 1, Warnings: 1, Errors: 1}
	if report.Summary != want {
		t.Errorf("Summary = %+v, want %+v", report.Summary, want)
	}
	if len(report.Results) != 5 {
		t.Fatalf("len(Results) = %d, want 5", len(report.Results))
	}
	if report.Results[2].Name != "c" {
		t.Errorf("Results[2].Name = %q, want %q", report.Results[2].Name, "c")
	}
	if !report.HasErrors() || !report.HasWarnings() {
		t.Error("HasErrors() and HasWarnings() should both be true")
	}
}

func TestRunner_Empty(t *testing.T) {
	report := NewRunner().Run(t.Context())
	if report.HasErrors() || report.HasWarnings() {
		t.Error("empty runner reported problems")
	}
	if report.Timestamp.IsZero() {
		t.Error("Timestamp not set")
	}
}

func TestRunner_StopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	var ran int
	report := NewRunner(stubCheck{name: "a", ran: &ran}).Run(ctx)
	if ran != 0 || len(report.Results) != 0 {
		t.Errorf("ran %d checks after cancellation, want 0", ran)
	}
}

func TestSeverity_JSON(t *testing.T) {
	data, err := json.Marshal(&CheckResult{Name: "git", Status: SeverityWarning})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"status":"warning"`) {
		t.Errorf("JSON = %s, want status by name", data)
	}
	if got := Severity(42).String(); got != "unknown" {
		t.Errorf("Severity(42).String() = %q, want unknown", got)
	}
}
