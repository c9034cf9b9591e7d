package maintenance

type Type string

const (
	TypePreventive Type = "preventive"
	TypeCorrective Type = "corrective"
)

func (t Type) IsValid() bool {
	switch t {
	case TypePreventive, TypeCorrective:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusScheduled:
		return next == StatusInProgress
	case StatusInProgress:
		return next == StatusCompleted
	default:
		return false
	}
}
