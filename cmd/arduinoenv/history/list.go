package history

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"arduinoenv/pkg/config"
	"arduinoenv/pkg/db"

	"github.com/spf13/cobra"
)

func init() {
	Registry.Register(func(c *cobra.Command) {
		cmd := &cobra.Command{
			Use:   "list",
			Short: "List recorded installation resolutions",
			RunE: func(c *cobra.Command, args []string) error {
				limit, _ := c.Flags().GetInt("limit")
				asJSON, _ := c.Flags().GetBool("json")

				database, err := db.Open(config.Get().History.Path)
				if err != nil {
					return err
				}
				defer database.Close()

				resolutions, err := database.ListResolutions(c.Context(), limit)
				if err != nil {
					return err
				}

				if asJSON {
					return json.NewEncoder(c.OutOrStdout()).Encode(resolutions)
				}

				w := tabwriter.NewWriter(c.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "WHEN\tOS\tSOURCE\tVALID\tPATH")
				for _, r := range resolutions {
					t := time.Unix(r.Timestamp, 0).Format("2006-01-02 15:04:05")
					path := r.Path
					if !r.Valid && r.Error != "" {
						path = r.Error
					}
					fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%s\n", t, r.OS, r.Source, r.Valid, path)
				}
				return w.Flush()
			},
		}
		cmd.Flags().Int("limit", 50, "Limit number of entries")
		cmd.Flags().Bool("json", false, "Output as JSON")
		c.AddCommand(cmd)
	})
}
