package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/danieljhkim/stack-select/internal/selection"
	"github.com/danieljhkim/stack-select/internal/util"
	"github.com/danieljhkim/stack-select/internal/wizard"
	"github.com/spf13/cobra"
)

// ErrSubmitDisabled is returned when no selected service still needs to be
// installed.
var ErrSubmitDisabled = errors.New("submit disabled: select at least one service that is not installed")

func newSubmitCmd(pathsGetter PathsGetter, opts *options) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Resolve pending confirmations and finish the selection",
		Long: `Submit the service selection.

If MapReduce, HDFS or a single file system is needed, a confirmation is
shown first and accepting it fixes the selection. The monitoring
confirmation always follows. Declining any confirmation keeps the current
selection and exits without advancing.

Use --yes to accept every confirmation without prompting.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, step, err := loadStep(pathsGetter(), opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			var confirmer wizard.Confirmer = wizard.AutoConfirmer{Accept: true}
			if !yes {
				if !util.IsTerminal(cmd.InOrStdin()) {
					util.Warn(cmd.ErrOrStderr(), "stdin is not a terminal; reading confirmations from input (use --yes to accept all)")
				}
				confirmer = wizard.NewPromptConfirmer(cmd.InOrStdin(), cmd.OutOrStdout())
			}

			outcome, err := step.Submit(cmd.Context(), confirmer)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case outcome.Blocked:
				return ErrSubmitDisabled
			case outcome.Advanced:
				for _, a := range outcome.Resolved {
					if a != selection.ActionConfirmMonitoring {
						fmt.Fprintf(out, "Resolved %s.\n", a)
					}
				}
				fmt.Fprintf(out, "Selected services: %s\n", strings.Join(selectedNames(step.Records()), ", "))
				fmt.Fprintln(out, "Selection confirmed.")
			default:
				fmt.Fprintf(out, "Declined %s; staying on service selection.\n", outcome.Declined)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Accept all confirmations")

	return cmd
}

func selectedNames(records selection.Records) []string {
	var names []string
	for _, r := range records {
		if r.Selected {
			names = append(names, r.Name)
		}
	}
	return names
}
