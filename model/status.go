package model

// SessionStatus is the backend-reported state of an analysis job.
type SessionStatus string

const (
	StatusPending    SessionStatus = "pending"
	StatusInProgress SessionStatus = "in_progress"
	StatusCompleted  SessionStatus = "completed"
	StatusFailed     SessionStatus = "failed"
)

// Terminal reports whether no further transitions can occur.
func (s SessionStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Rank orders statuses along the forward-only transition path.
// A reply with a lower rank than one already observed is stale.
func (s SessionStatus) Rank() int {
	switch s {
	case StatusPending:
		return 0
	case StatusInProgress:
		return 1
	case StatusCompleted, StatusFailed:
		return 2
	default:
		return -1
	}
}

// Progress maps a status to a display percentage.
func (s SessionStatus) Progress() int {
	switch s {
	case StatusPending:
		return 10
	case StatusInProgress:
		return 50
	case StatusCompleted:
		return 100
	default:
		return 0
	}
}

// Label is the human-readable status line shown while polling.
func (s SessionStatus) Label() string {
	switch s {
	case StatusPending:
		return "Waiting for analysis to start"
	case StatusInProgress:
		return "Analysis in progress"
	case StatusCompleted:
		return "Analysis complete"
	case StatusFailed:
		return "Analysis failed"
	default:
		return string(s)
	}
}
