package tools

import (
	"arduinoenv/pkg/registry"

	"github.com/spf13/cobra"
)

var Registry registry.CommandRegistry

func GetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "Inspect bundled and installed toolchains",
	}
	Registry.FillCommands(cmd)
	return cmd
}
