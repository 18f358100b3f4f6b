package prefs

import (
	"fmt"

	"arduinoenv/pkg/session"

	"github.com/spf13/cobra"
)

func init() {
	Registry.FromGetter(func() *cobra.Command {
		return &cobra.Command{
			Use:   "path",
			Short: "Print the preferences.txt location",
			RunE: func(c *cobra.Command, args []string) error {
				s, err := session.Open(c.Context())
				if err != nil {
					return err
				}

				path := s.PreferencePath()
				if path == "" {
					return fmt.Errorf("no per-user data directory on this system")
				}
				fmt.Fprintln(c.OutOrStdout(), path)
				return nil
			},
		}
	})
}
