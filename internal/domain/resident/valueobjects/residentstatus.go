package valueobjects

type ResidentStatus string

const (
	ResidentStatusRegistered ResidentStatus = "registered"
	ResidentStatusAssigned   ResidentStatus = "assigned"
	ResidentStatusCheckedIn  ResidentStatus = "checked_in"
	ResidentStatusCheckedOut ResidentStatus = "checked_out"
)

func (s ResidentStatus) IsValid() bool {
	switch s {
	case ResidentStatusRegistered, ResidentStatusAssigned, ResidentStatusCheckedIn, ResidentStatusCheckedOut:
		return true
	default:
		return false
	}
}

func (s ResidentStatus) IsActive() bool {
	return s == ResidentStatusAssigned || s == ResidentStatusCheckedIn
}

func (s ResidentStatus) String() string {
	return string(s)
}
