package selection

// PendingAction is the confirmation a user must resolve before the step can
// advance.
type PendingAction int

const (
	ActionNone PendingAction = iota
	ActionNeedMapReduce
	ActionNeedHDFS
	ActionMultipleDFS
	ActionConfirmMonitoring
)

func (a PendingAction) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionNeedMapReduce:
		return "need-mapreduce"
	case ActionNeedHDFS:
		return "need-hdfs"
	case ActionMultipleDFS:
		return "multiple-dfs"
	case ActionConfirmMonitoring:
		return "confirm-monitoring"
	default:
		return "unknown"
	}
}

// ClassifyPendingAction returns the highest-priority action the caller must
// resolve. It returns ActionNone while submission is disabled. Otherwise the
// checks run in order MapReduce, HDFS, multiple file systems, and fall
// through to the monitoring confirmation, which is always requested.
func (rs Records) ClassifyPendingAction() (PendingAction, error) {
	if rs.SubmitDisabled() {
		return ActionNone, nil
	}

	if rs.NeedToAddMapReduce() {
		return ActionNeedMapReduce, nil
	}

	needHDFS, err := rs.NeedToAddHDFS()
	if err != nil {
		return ActionNone, err
	}
	if needHDFS {
		return ActionNeedHDFS, nil
	}

	multiple, err := rs.MultipleDFSs()
	if err != nil {
		return ActionNone, err
	}
	if multiple {
		return ActionMultipleDFS, nil
	}

	return ActionConfirmMonitoring, nil
}
