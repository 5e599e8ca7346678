package staged

// Status is the lifecycle state of a stage.
type Status int

const (
	// StatusUnlinked is a non-terminal stage with no downstream yet.
	StatusUnlinked Status = iota
	// StatusLinked is a stage that is wired into a pipeline that has not run.
	StatusLinked
	// StatusRunning is a stage whose pipeline is currently running.
	StatusRunning
	// StatusCompleted is a stage whose pipeline ran to the end of its source.
	StatusCompleted
	// StatusFailed is a stage whose pipeline stopped on a push error.
	StatusFailed
)

// String returns the lower-case name of the status.
func (s Status) String() string {
	switch s {
	case StatusUnlinked:
		return "unlinked"
	case StatusLinked:
		return "linked"
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Done reports whether the pipeline has finished running.
func (s Status) Done() bool {
	return s == StatusCompleted || s == StatusFailed
}
