package types

// DeleteOutcome is the terminal state of a delete request.
type DeleteOutcome int

const (
	// DeleteAborted means the user declined the confirmation prompt.
	DeleteAborted DeleteOutcome = iota
	// DeleteSucceeded means the symlink was removed.
	DeleteSucceeded
)

func (o DeleteOutcome) String() string {
	if o == DeleteSucceeded {
		return "succeeded"
	}
	return "aborted"
}

// DeleteStatus is the result of a delete. Pair is only set when the delete
// succeeded.
type DeleteStatus struct {
	Outcome DeleteOutcome
	Pair    LinkPair
}

// Aborted returns the status for a declined delete.
func Aborted() DeleteStatus {
	return DeleteStatus{Outcome: DeleteAborted}
}

// Succeeded returns the status for a completed delete of pair.
func Succeeded(pair LinkPair) DeleteStatus {
	return DeleteStatus{Outcome: DeleteSucceeded, Pair: pair}
}

// IsAborted reports whether the user declined the delete.
func (s DeleteStatus) IsAborted() bool {
	return s.Outcome == DeleteAborted
}
