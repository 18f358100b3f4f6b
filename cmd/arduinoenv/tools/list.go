package tools

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"text/tabwriter"

	"arduinoenv/pkg/semver"
	"arduinoenv/pkg/session"

	"github.com/spf13/cobra"
)

func init() {
	Registry.Register(func(c *cobra.Command) {
		var asJSON bool
		var sorted bool

		cmd := &cobra.Command{
			Use:   "list",
			Short: "List discovered tools and their paths",
			RunE: func(c *cobra.Command, args []string) error {
				s, err := session.Open(c.Context())
				if err != nil {
					return err
				}
				if err := s.Initialize(c.Context()); err != nil {
					// Package tools still resolve without an IDE.
					slog.Warn("installation not resolved, bundled tools unavailable", "error", err)
				}

				scan := s.ToolScan()
				for _, w := range scan.Warnings {
					slog.Warn(w)
				}

				entries := scan.Registry.Entries()
				if sorted {
					sort.SliceStable(entries, func(i, j int) bool {
						if entries[i].Name != entries[j].Name {
							return entries[i].Name < entries[j].Name
						}
						a := semver.Parse(entries[i].Version)
						b := semver.Parse(entries[j].Version)
						return a.Compare(b) < 0
					})
				}

				if asJSON {
					return json.NewEncoder(c.OutOrStdout()).Encode(entries)
				}

				w := tabwriter.NewWriter(c.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "NAME\tVERSION\tPATH")
				for _, e := range entries {
					fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, e.Version, e.Path)
				}
				return w.Flush()
			},
		}
		cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
		cmd.Flags().BoolVar(&sorted, "sort", false, "Sort by name, then version")
		c.AddCommand(cmd)
	})
}
