// Package wizard drives the service selection step of the install wizard.
//
// A Step owns the records of one session. Every mutation is followed by an
// explicit dependency derivation pass, and Submit walks the resolution chain:
// at most one fixup dialog (MapReduce, HDFS or multiple file systems), then
// the monitoring confirmation.
package wizard

import (
	"context"
	"fmt"

	"github.com/danieljhkim/stack-select/internal/selection"
)

// Status is a snapshot of the aggregate predicates of a step.
type Status struct {
	SubmitDisabled  bool
	AllSelected     bool
	MinimumSelected bool
	Pending         selection.PendingAction
}

// Outcome describes how a submit attempt ended.
type Outcome struct {
	Advanced bool                      // Monitoring confirmed, step may advance
	Blocked  bool                      // Nothing new selected, no dialog shown
	Resolved []selection.PendingAction // Dialogs accepted, in order
	Declined selection.PendingAction   // Dialog that stopped the chain, if any
}

// Step holds the selection state of one wizard session.
type Step struct {
	records   selection.Records
	validator *selection.Validator
}

// NewStep validates the records and stack version and runs an initial
// derivation pass over the freshly loaded collection.
func NewStep(records selection.Records, stackVersion string) (*Step, error) {
	if err := records.Validate(); err != nil {
		return nil, err
	}
	v, err := selection.NewValidator(stackVersion)
	if err != nil {
		return nil, err
	}

	s := &Step{records: records, validator: v}
	s.derive()
	return s, nil
}

// Records returns the records of this step.
func (s *Step) Records() selection.Records {
	return s.records
}

// StackVersion returns the stack version the step was created with.
func (s *Step) StackVersion() string {
	return s.validator.StackVersion()
}

// Select sets the selection of a single service.
func (s *Step) Select(name string, selected bool) error {
	r := s.records.Find(name)
	if r == nil {
		return fmt.Errorf("unknown service: %s", name)
	}
	r.Selected = selected
	s.derive()
	return nil
}

// SelectAll selects every selectable service.
func (s *Step) SelectAll() {
	s.records.SelectAll()
	s.derive()
}

// SelectMinimum unselects every service that is not disabled.
func (s *Step) SelectMinimum() {
	s.records.SelectMinimum()
	s.derive()
}

// Status returns the current aggregate predicates and pending action.
func (s *Step) Status() (Status, error) {
	pending, err := s.records.ClassifyPendingAction()
	if err != nil {
		return Status{}, err
	}
	return Status{
		SubmitDisabled:  s.records.SubmitDisabled(),
		AllSelected:     s.records.AllSelected(),
		MinimumSelected: s.records.MinimumSelected(),
		Pending:         pending,
	}, nil
}

// Submit runs the resolution chain. A declined dialog leaves the step where
// it is; an accepted fixup dialog applies its fixup and continues with the
// monitoring confirmation without re-checking the other rules.
func (s *Step) Submit(ctx context.Context, c Confirmer) (Outcome, error) {
	var out Outcome

	action, err := s.records.ClassifyPendingAction()
	if err != nil {
		return out, err
	}
	if action == selection.ActionNone {
		out.Blocked = true
		return out, nil
	}

	if action != selection.ActionConfirmMonitoring {
		ok, err := s.confirm(ctx, c, action)
		if err != nil {
			return out, err
		}
		if !ok {
			out.Declined = action
			return out, nil
		}
		if err := s.applyFixup(action); err != nil {
			return out, err
		}
		out.Resolved = append(out.Resolved, action)
	}

	ok, err := s.confirm(ctx, c, selection.ActionConfirmMonitoring)
	if err != nil {
		return out, err
	}
	if !ok {
		out.Declined = selection.ActionConfirmMonitoring
		return out, nil
	}
	out.Resolved = append(out.Resolved, selection.ActionConfirmMonitoring)
	out.Advanced = true
	return out, nil
}

func (s *Step) confirm(ctx context.Context, c Confirmer, action selection.PendingAction) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	d, ok := DialogFor(action)
	if !ok {
		return false, fmt.Errorf("no dialog for action %s", action)
	}
	return c.Confirm(ctx, d)
}

func (s *Step) applyFixup(action selection.PendingAction) error {
	switch action {
	case selection.ActionNeedMapReduce:
		return s.Select(selection.MapReduce, true)
	case selection.ActionNeedHDFS:
		return s.Select(selection.HDFS, true)
	case selection.ActionMultipleDFS:
		if err := s.Select(selection.HDFS, true); err != nil {
			return err
		}
		return s.Select(selection.HCFS, false)
	default:
		return nil
	}
}

func (s *Step) derive() {
	s.validator.DeriveDependencies(s.records)
}
