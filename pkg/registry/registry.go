package registry

import (
	"github.com/spf13/cobra"
)

// CommandRegistry collects subcommand registration functions from a
// package's init() functions so the parent command can be assembled in
// one place. The zero value is ready to use.
type CommandRegistry struct {
	fillers []func(*cobra.Command)
}

// Register adds a function that attaches subcommands to the parent.
func (r *CommandRegistry) Register(fn func(*cobra.Command)) {
	r.fillers = append(r.fillers, fn)
}

// FromGetter registers a getter whose returned command is added to the
// parent.
func (r *CommandRegistry) FromGetter(getter func() *cobra.Command) {
	r.Register(func(c *cobra.Command) {
		c.AddCommand(getter())
	})
}

// FillCommands applies every registered function to cmd and returns it.
func (r *CommandRegistry) FillCommands(cmd *cobra.Command) *cobra.Command {
	for _, fn := range r.fillers {
		fn(cmd)
	}
	return cmd
}

// GetCommand is an alias for FillCommands.
func (r *CommandRegistry) GetCommand(cmd *cobra.Command) *cobra.Command {
	return r.FillCommands(cmd)
}
