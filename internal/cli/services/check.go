package services

import (
	"errors"
	"fmt"

	"github.com/danieljhkim/stack-select/internal/selection"
	"github.com/danieljhkim/stack-select/internal/util"
	"github.com/spf13/cobra"
)

func newCheckCmd(pathsGetter PathsGetter, opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report selection predicates and the pending action",
		Long: `Report the aggregate selection predicates and the action that must be
resolved before the selection can be submitted.

The file system checks need an HDFS service. Without one they are skipped
with a warning, and the command fails only if the pending action depends on
them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, step, err := loadStep(pathsGetter(), opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			status, err := step.Status()
			if err != nil {
				return err
			}

			records := step.Records()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "submit-disabled=%t\n", status.SubmitDisabled)
			fmt.Fprintf(out, "all-selected=%t\n", status.AllSelected)
			fmt.Fprintf(out, "minimum-selected=%t\n", status.MinimumSelected)
			fmt.Fprintf(out, "need-mapreduce=%t\n", records.NeedToAddMapReduce())

			// Both file system checks share the HDFS precondition.
			needHDFS, err := records.NeedToAddHDFS()
			switch {
			case errors.Is(err, selection.ErrCatalogIntegrity):
				util.Warn(cmd.ErrOrStderr(), "file system checks skipped: %v", err)
			case err != nil:
				return err
			default:
				multipleDFS, err := records.MultipleDFSs()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "need-hdfs=%t\n", needHDFS)
				fmt.Fprintf(out, "multiple-dfs=%t\n", multipleDFS)
			}

			fmt.Fprintf(out, "pending=%s\n", status.Pending)
			return nil
		},
	}

	return cmd
}
