package tools

import (
	"fmt"
	"log/slog"
	"strings"

	"arduinoenv/pkg/session"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"
)

func init() {
	Registry.Register(func(c *cobra.Command) {
		c.AddCommand(&cobra.Command{
			Use:   "pick [query]",
			Short: "Pick a tool with a fuzzy finder and print its path",
			RunE: func(c *cobra.Command, args []string) error {
				s, err := session.Open(c.Context())
				if err != nil {
					return err
				}
				if err := s.Initialize(c.Context()); err != nil {
					slog.Warn("installation not resolved, bundled tools unavailable", "error", err)
				}

				reg := s.ToolRegistry()
				entries := reg.Entries()
				if len(entries) == 0 {
					return fmt.Errorf("no tools found")
				}

				options := []fuzzyfinder.Option{
					fuzzyfinder.WithPreviewWindow(func(i int, width int, height int) string {
						if i == -1 {
							return ""
						}
						e := entries[i]
						current := reg.Path(e.Name)
						return fmt.Sprintf("Tool:    %s\nVersion: %s\nPath:    %s\nCurrent: %s",
							e.Name, e.Version, e.Path, current)
					}),
				}

				if len(args) > 0 {
					query := strings.Join(args, " ")
					query = strings.Trim(query, "'\"")
					if query != "" {
						options = append(options, fuzzyfinder.WithQuery(query))
					}
				}

				idx, err := fuzzyfinder.Find(
					entries,
					func(i int) string {
						return fmt.Sprintf("%s %s", entries[i].Name, entries[i].Version)
					},
					options...,
				)

				if err != nil {
					if err == fuzzyfinder.ErrAbort {
						return nil
					}
					return fmt.Errorf("fuzzy finder failed: %w", err)
				}

				fmt.Fprintln(c.OutOrStdout(), entries[idx].Path)
				return nil
			},
		})
	})
}
