package doctor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"arduinoenv/pkg/packageindex"
	"arduinoenv/pkg/settings"

	"github.com/owenrumney/go-sarif/v2/sarif"
)

type finding struct {
	rule    string
	level   string // error, warning or note
	message string
}

var checks = []func(context.Context, *settings.ArduinoSettings) []finding{
	checkInstallation,
	checkBuilder,
	checkExamples,
	checkDataDir,
	checkPreferences,
	checkPackageIndex,
	checkTools,
}

func checkInstallation(ctx context.Context, s *settings.ArduinoSettings) []finding {
	if err := s.Initialize(ctx); err != nil {
		return []finding{{"installation", "error", err.Error()}}
	}
	return []finding{{"installation", "note",
		fmt.Sprintf("IDE resolved from %s: %s", s.Source(), s.ArduinoPath())}}
}

func checkBuilder(ctx context.Context, s *settings.ArduinoSettings) []finding {
	if s.ArduinoPath() == "" {
		return nil
	}
	if _, err := os.Stat(s.BuilderPath()); err != nil {
		return []finding{{"builder", "note",
			fmt.Sprintf("arduino-builder not found at %s", s.BuilderPath())}}
	}
	return nil
}

func checkExamples(ctx context.Context, s *settings.ArduinoSettings) []finding {
	if s.ArduinoPath() == "" {
		return nil
	}
	if info, err := os.Stat(s.DefaultExamplePath()); err != nil || !info.IsDir() {
		return []finding{{"examples", "note",
			fmt.Sprintf("bundled examples not found at %s", s.DefaultExamplePath())}}
	}
	return nil
}

func checkDataDir(ctx context.Context, s *settings.ArduinoSettings) []finding {
	pkg := s.PackagePath()
	if pkg == "" {
		return []finding{{"data-dir", "warning", "no per-user data directory could be determined"}}
	}
	if info, err := os.Stat(pkg); err != nil || !info.IsDir() {
		return []finding{{"data-dir", "warning",
			fmt.Sprintf("%s does not exist yet; run the IDE once to create it", pkg)}}
	}
	return nil
}

func checkPreferences(ctx context.Context, s *settings.ArduinoSettings) []finding {
	path := s.PreferencePath()
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return []finding{{"preferences", "note",
			fmt.Sprintf("%s absent, defaults in effect", path)}}
	}
	s.Preferences()
	if n := s.PreferencesMalformed(); n > 0 {
		return []finding{{"preferences", "warning",
			fmt.Sprintf("%d malformed line(s) in %s", n, path)}}
	}
	return nil
}

func checkPackageIndex(ctx context.Context, s *settings.ArduinoSettings) []finding {
	pkg := s.PackagePath()
	if pkg == "" {
		return nil
	}
	report, err := packageindex.Validate(filepath.Join(pkg, "package_index.json"))
	if err != nil {
		return []finding{{"package-index", "warning", err.Error()}}
	}
	switch report.Status {
	case packageindex.StatusSkipped:
		return []finding{{"package-index", "note",
			fmt.Sprintf("%s absent, skipped", report.Path)}}
	case packageindex.StatusInvalid:
		findings := make([]finding, 0, len(report.Issues))
		for _, issue := range report.Issues {
			findings = append(findings, finding{"package-index", "warning", issue})
		}
		return findings
	}
	return nil
}

func checkTools(ctx context.Context, s *settings.ArduinoSettings) []finding {
	scan := s.ToolScan()
	var findings []finding
	for _, w := range scan.Warnings {
		findings = append(findings, finding{"tools", "warning", w})
	}
	for _, p := range scan.SkippedPackages {
		findings = append(findings, finding{"tools", "note",
			fmt.Sprintf("package %s has no tools directory", p)})
	}
	findings = append(findings, finding{"tools", "note",
		fmt.Sprintf("%d tool path(s) registered", scan.Registry.Len())})
	return findings
}

func buildReport(findings []finding) (*sarif.Report, error) {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, err
	}

	run := &sarif.Run{
		Tool: sarif.Tool{
			Driver: &sarif.ToolComponent{
				Name: "arduinoenv-doctor",
			},
		},
		Results: []*sarif.Result{},
	}

	for _, f := range findings {
		rule := f.rule
		level := f.level
		msg := f.message

		run.Results = append(run.Results, &sarif.Result{
			RuleID: &rule,
			Level:  &level,
			Message: sarif.Message{
				Text: &msg,
			},
		})
	}

	report.AddRun(run)
	return report, nil
}
