package services

import (
	"fmt"

	"github.com/danieljhkim/stack-select/internal/util"
	"github.com/spf13/cobra"
)

func newListCmd(pathsGetter PathsGetter, opts *options) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the service selection",
		Long: `Show every service of the stack and whether it is selected, after
applying the selection flags and dependency derivation.

Use -o yaml to print the resulting selection as a stack catalog.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stack, step, err := loadStep(pathsGetter(), opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch output {
			case "table":
				util.Section(out, "%s (stack version %s)", stack.Name, step.StackVersion())
				rows := make([]util.SelectionRow, 0, len(step.Records()))
				for _, r := range step.Records() {
					rows = append(rows, util.SelectionRow{
						Name:        r.Name,
						DisplayName: r.DisplayName,
						Selected:    r.Selected,
						Installed:   r.Installed,
						Locked:      !r.CanBeSelected || r.Disabled,
					})
				}
				util.SelectionTable(out, rows)
				return nil
			case "yaml":
				return stack.WithRecords(step.Records()).Encode(out)
			default:
				return fmt.Errorf("unknown output format %q (supported: table, yaml)", output)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format (table, yaml)")

	return cmd
}
