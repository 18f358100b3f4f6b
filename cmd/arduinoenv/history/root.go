package history

import (
	"arduinoenv/pkg/registry"

	"github.com/spf13/cobra"
)

var Registry registry.CommandRegistry

func GetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Resolution history",
	}
	Registry.FillCommands(cmd)
	return cmd
}
