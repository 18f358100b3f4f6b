package registry

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestFillCommands(t *testing.T) {
	var r CommandRegistry

	r.Register(func(c *cobra.Command) {
		c.AddCommand(&cobra.Command{Use: "one"})
	})
	r.FromGetter(func() *cobra.Command {
		return &cobra.Command{Use: "two"}
	})

	parent := &cobra.Command{Use: "parent"}
	got := r.FillCommands(parent)

	if got != parent {
		t.Error("FillCommands should return the command it was given")
	}
	if len(parent.Commands()) != 2 {
		t.Fatalf("got %d subcommands, want 2", len(parent.Commands()))
	}

	names := map[string]bool{}
	for _, c := range parent.Commands() {
		names[c.Use] = true
	}
	if !names["one"] || !names["two"] {
		t.Errorf("missing registered subcommands: %v", names)
	}
}

func TestZeroValueUsable(t *testing.T) {
	var r CommandRegistry
	parent := &cobra.Command{Use: "parent"}
	if got := r.GetCommand(parent); got != parent {
		t.Error("GetCommand on empty registry should still return the parent")
	}
	if len(parent.Commands()) != 0 {
		t.Errorf("empty registry added commands: %d", len(parent.Commands()))
	}
}
