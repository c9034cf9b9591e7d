package reservation

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsActive reports whether the reservation still occupies its equipment's
// time window for conflict checking.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusApproved
}

func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusCompleted
}

// CanTransitionTo encodes the transition table. Self-loops are not modeled
// edges and report false.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusApproved || next == StatusRejected
	case StatusApproved:
		// rejecting an approved reservation is an administrative override
		return next == StatusCompleted || next == StatusRejected
	default:
		return false
	}
}
