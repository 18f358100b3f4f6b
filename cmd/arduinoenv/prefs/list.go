package prefs

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"arduinoenv/pkg/session"

	"github.com/spf13/cobra"
)

func init() {
	Registry.Register(func(c *cobra.Command) {
		var asJSON bool

		cmd := &cobra.Command{
			Use:   "list",
			Short: "List preferences from preferences.txt",
			RunE: func(c *cobra.Command, args []string) error {
				s, err := session.Open(c.Context())
				if err != nil {
					return err
				}

				// Preferences live under the per-user data dir, which
				// resolves even without an installed IDE.
				values := s.Preferences()
				if n := s.PreferencesMalformed(); n > 0 {
					slog.Warn("preferences contain malformed lines", "count", n)
				}

				if asJSON {
					return json.NewEncoder(c.OutOrStdout()).Encode(values)
				}

				keys := make([]string, 0, len(values))
				for k := range values {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				for _, k := range keys {
					fmt.Fprintf(c.OutOrStdout(), "%s=%s\n", k, values[k])
				}
				return nil
			},
		}
		cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
		c.AddCommand(cmd)
	})
}
