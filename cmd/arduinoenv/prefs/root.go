package prefs

import (
	"arduinoenv/pkg/registry"

	"github.com/spf13/cobra"
)

var Registry registry.CommandRegistry

func GetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Inspect IDE preferences",
	}
	Registry.FillCommands(cmd)
	return cmd
}
