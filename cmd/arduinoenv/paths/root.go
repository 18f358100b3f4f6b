package paths

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"arduinoenv/pkg/session"
	"arduinoenv/pkg/settings"

	"github.com/spf13/cobra"
)

func GetCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Resolve the Arduino installation and print the derived paths",
		RunE: func(c *cobra.Command, args []string) error {
			s, err := session.Open(c.Context())
			if err != nil {
				return err
			}
			if err := s.Initialize(c.Context()); err != nil {
				return err
			}

			rows := pathRows(s)

			if asJSON {
				out := make(map[string]string, len(rows))
				for _, r := range rows {
					out[r.name] = r.value
				}
				enc := json.NewEncoder(c.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			w := tabwriter.NewWriter(c.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, r := range rows {
				fmt.Fprintf(w, "%s\t%s\n", r.name, r.value)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

type row struct {
	name  string
	value string
}

func pathRows(s *settings.ArduinoSettings) []row {
	return []row{
		{"os", string(s.OS())},
		{"source", string(s.Source())},
		{"root", s.ArduinoPath()},
		{"command", s.CommandPath()},
		{"builder", s.BuilderPath()},
		{"examples", s.DefaultExamplePath()},
		{"hardware", s.DefaultPackagePath()},
		{"libraries", s.DefaultLibPath()},
		{"packages", s.PackagePath()},
		{"preferences", s.PreferencePath()},
		{"sketchbook", s.SketchbookPath()},
	}
}
