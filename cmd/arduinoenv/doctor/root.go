package doctor

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"arduinoenv/pkg/session"

	"github.com/owenrumney/go-sarif/v2/sarif"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func GetCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the Arduino environment and report problems",
		RunE: func(c *cobra.Command, args []string) error {
			s, err := session.Open(c.Context())
			if err != nil {
				return err
			}

			bar := progressbar.NewOptions(
				len(checks),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionSetWidth(30),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("doctor"),
				progressbar.OptionThrottle(80*time.Millisecond),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(os.Stderr)
				}),
			)

			var findings []finding
			for _, chk := range checks {
				findings = append(findings, chk(c.Context(), s)...)
				_ = bar.Add(1)
			}

			report, err := buildReport(findings)
			if err != nil {
				return err
			}
			if err := printReport(report, format); err != nil {
				return err
			}

			for _, f := range findings {
				if f.level == "error" {
					return fmt.Errorf("environment has problems")
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, sarif)")
	return cmd
}

func printReport(report *sarif.Report, format string) error {
	switch format {
	case "sarif":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	case "table":
		return printTable(report)
	default:
		return fmt.Errorf("unknown format: %s (supported: table, sarif)", format)
	}
}

func printTable(report *sarif.Report) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CHECK\tLEVEL\tMESSAGE")

	for _, run := range report.Runs {
		for _, res := range run.Results {
			rule := ""
			if res.RuleID != nil {
				rule = *res.RuleID
			}
			level := "unknown"
			if res.Level != nil {
				level = *res.Level
			}
			msg := ""
			if res.Message.Text != nil {
				msg = *res.Message.Text
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", rule, level, msg)
		}
	}
	return w.Flush()
}
