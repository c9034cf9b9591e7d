package equipment

type Status string

const (
	StatusAvailable   Status = "available"
	StatusInUse       Status = "in-use"
	StatusMaintenance Status = "maintenance"
	StatusReserved    Status = "reserved"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusInUse, StatusMaintenance, StatusReserved:
		return true
	default:
		return false
	}
}
