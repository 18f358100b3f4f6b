package drivers

import (
	"fmt"
	"text/tabwriter"

	"arduinoenv/pkg/driver"

	"github.com/spf13/cobra"
)

func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "drivers",
		Short: "List registered providers and their effective weights",
		RunE: func(c *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(c.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tKIND\tWEIGHT")
			for _, info := range driver.Infos() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", info.ID, info.Name, info.Kind, info.Weight)
			}
			return w.Flush()
		},
	}
}
