package prefs

import (
	"fmt"

	"arduinoenv/pkg/session"

	"github.com/spf13/cobra"
)

func init() {
	Registry.FromGetter(func() *cobra.Command {
		return &cobra.Command{
			Use:   "get <key>",
			Short: "Print one preference value",
			Args:  cobra.ExactArgs(1),
			RunE: func(c *cobra.Command, args []string) error {
				s, err := session.Open(c.Context())
				if err != nil {
					return err
				}

				value, ok := s.Preferences()[args[0]]
				if !ok {
					return fmt.Errorf("preference %q not set", args[0])
				}
				fmt.Fprintln(c.OutOrStdout(), value)
				return nil
			},
		}
	})
}
