package stack

import (
	"fmt"
	"text/tabwriter"

	"github.com/danieljhkim/stack-select/internal/stacks"
	"github.com/spf13/cobra"
)

// NewStackCmd creates the stack command with all subcommands
func NewStackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stack",
		Short: "Inspect built-in stacks",
		Long: `Inspect the built-in stacks offered by the service selection.

A custom stack can be supplied as a YAML catalog with --catalog or the
'catalog' setting; 'stack show' prints a built-in stack in that format.`,
	}

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newShowCmd())

	return cmd
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List built-in stacks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := stacks.NewRegistry()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, name := range registry.List() {
				s, err := registry.Get(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", s.Name, s.Version, s.Description)
			}
			return w.Flush()
		},
	}

	return cmd
}

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <stack-name>",
		Short: "Print a built-in stack as a YAML catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := stacks.NewRegistry().Get(args[0])
			if err != nil {
				return err
			}
			return s.Encode(cmd.OutOrStdout())
		},
	}

	return cmd
}
