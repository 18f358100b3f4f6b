package doctor

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"arduinoenv/pkg/platform"
	"arduinoenv/pkg/settings"
)

func newSettings(t *testing.T, home string) *settings.ArduinoSettings {
	t.Helper()
	s, err := settings.New(
		settings.WithOS(platform.Linux),
		settings.WithHome(func() (string, error) { return home, nil }),
	)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestBuildReport(t *testing.T) {
	report, err := buildReport([]finding{
		{"installation", "error", "no installation found"},
		{"tools", "note", "3 tool path(s) registered"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(report.Runs))
	}

	run := report.Runs[0]
	if run.Tool.Driver.Name != "arduinoenv-doctor" {
		t.Errorf("driver name = %q", run.Tool.Driver.Name)
	}
	if len(run.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(run.Results))
	}

	first := run.Results[0]
	if first.RuleID == nil || *first.RuleID != "installation" {
		t.Errorf("first RuleID = %v", first.RuleID)
	}
	if first.Level == nil || *first.Level != "error" {
		t.Errorf("first Level = %v", first.Level)
	}
	if first.Message.Text == nil || *first.Message.Text != "no installation found" {
		t.Errorf("first Message = %v", first.Message.Text)
	}

	second := run.Results[1]
	if second.RuleID == nil || *second.RuleID != "tools" {
		t.Errorf("second RuleID = %v", second.RuleID)
	}
}

func TestPrintReportUnknownFormat(t *testing.T) {
	report, err := buildReport(nil)
	if err != nil {
		t.Fatal(err)
	}
	err = printReport(report, "yaml")
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "yaml") {
		t.Errorf("error %q should name the format", err)
	}
}

func TestCheckDataDirMissing(t *testing.T) {
	s := newSettings(t, t.TempDir())

	findings := checkDataDir(context.Background(), s)
	if len(findings) != 1 {
		t.Fatalf("findings = %+v, want exactly one", findings)
	}
	if findings[0].level != "warning" {
		t.Errorf("level = %q, want warning", findings[0].level)
	}
}

func TestCheckPreferencesAbsent(t *testing.T) {
	home := t.TempDir()
	if err := os.MkdirAll(filepath.Join(home, ".arduino15"), 0755); err != nil {
		t.Fatal(err)
	}
	s := newSettings(t, home)

	findings := checkPreferences(context.Background(), s)
	if len(findings) != 1 {
		t.Fatalf("findings = %+v, want exactly one", findings)
	}
	if findings[0].level != "note" {
		t.Errorf("level = %q, want note", findings[0].level)
	}
	if !strings.Contains(findings[0].message, "defaults in effect") {
		t.Errorf("message = %q", findings[0].message)
	}
}
