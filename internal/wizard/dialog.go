package wizard

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/danieljhkim/stack-select/internal/selection"
)

// Dialog is a confirmation shown to the user before the step can advance.
type Dialog struct {
	Action selection.PendingAction
	Header string
	Body   string
}

var dialogs = map[selection.PendingAction]Dialog{
	selection.ActionNeedMapReduce: {
		Header: "MapReduce Needed",
		Body:   "You did not select MapReduce, but it is needed by other services you selected. MapReduce will be added automatically.",
	},
	selection.ActionNeedHDFS: {
		Header: "HDFS Needed",
		Body:   "You did not select HDFS or HCFS, but a distributed file system is needed by the services you selected. HDFS will be added automatically.",
	},
	selection.ActionMultipleDFS: {
		Header: "Multiple File Systems Selected",
		Body:   "You selected more than one distributed file system. Only HDFS will be kept and HCFS will be removed.",
	},
	selection.ActionConfirmMonitoring: {
		Header: "Limited Functionality Warning",
		Body:   "If Ganglia and Nagios are not both selected, monitoring and alerts will not function properly.",
	},
}

// DialogFor returns the confirmation dialog for an action. ok is false for
// ActionNone and unknown actions.
func DialogFor(action selection.PendingAction) (Dialog, bool) {
	d, ok := dialogs[action]
	if !ok {
		return Dialog{}, false
	}
	d.Action = action
	return d, true
}

// Confirmer asks the user to accept or decline a dialog.
type Confirmer interface {
	Confirm(ctx context.Context, d Dialog) (bool, error)
}

// AutoConfirmer answers every dialog with the same value.
type AutoConfirmer struct {
	Accept bool
}

// Confirm implements Confirmer.
func (a AutoConfirmer) Confirm(ctx context.Context, d Dialog) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return a.Accept, nil
}

// PromptConfirmer asks on a terminal. Anything other than "y" or "yes",
// including end of input, declines.
type PromptConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPromptConfirmer creates a confirmer reading answers from in and writing
// prompts to out.
func NewPromptConfirmer(in io.Reader, out io.Writer) *PromptConfirmer {
	return &PromptConfirmer{in: bufio.NewReader(in), out: out}
}

// Confirm implements Confirmer.
func (p *PromptConfirmer) Confirm(ctx context.Context, d Dialog) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	fmt.Fprintf(p.out, "\n%s\n%s\n", d.Header, d.Body)
	fmt.Fprint(p.out, "Is this OK? [y/N]: ")

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read %s confirmation: %w", d.Action, err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
