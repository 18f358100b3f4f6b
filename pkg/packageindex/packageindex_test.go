package packageindex

import (
	"os"
	"path/filepath"
	"testing"
)

func writeIndex(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "package_index.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestValidateOK(t *testing.T) {
	path := writeIndex(t, `{
		"packages": [
			{
				"name": "arduino",
				"platforms": [
					{"name": "Arduino AVR Boards", "version": "1.8.6"}
				],
				"tools": [
					{"name": "avr-gcc", "version": "7.3.0-atmel3.6.1-arduino7"}
				]
			}
		]
	}`)

	report, err := Validate(path)
	if err != nil {
		t.Fatal(err)
	}
	if report.Status != StatusOK {
		t.Fatalf("expected ok, got %s (issues: %v)", report.Status, report.Issues)
	}
}

func TestValidateMissingFile(t *testing.T) {
	report, err := Validate(filepath.Join(t.TempDir(), "package_index.json"))
	if err != nil {
		t.Fatal(err)
	}
	if report.Status != StatusSkipped {
		t.Fatalf("expected skipped, got %s", report.Status)
	}
}

func TestValidateInvalid(t *testing.T) {
	for _, tc := range []struct {
		name    string
		content string
	}{
		{"not json", `{"packages": [`},
		{"missing packages", `{}`},
		{"package without name", `{"packages": [{"tools": []}]}`},
		{"tool without version", `{"packages": [{"name": "arduino", "tools": [{"name": "avr-gcc"}]}]}`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			report, err := Validate(writeIndex(t, tc.content))
			if err != nil {
				t.Fatal(err)
			}
			if report.Status != StatusInvalid {
				t.Fatalf("expected invalid, got %s", report.Status)
			}
			if len(report.Issues) == 0 {
				t.Fatal("expected at least one issue")
			}
		})
	}
}
