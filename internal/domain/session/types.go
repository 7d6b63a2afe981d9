package session

type Status string

const (
	// StatusActive and StatusBooked survive as synonyms for StatusOccupied in
	// records written by older terminals; treat all three as "has an active
	// booking". New sessions are written as occupied.
	StatusActive   Status = "active"
	StatusBooked   Status = "booked"
	StatusOccupied Status = "occupied"
	StatusExtended Status = "extended"
	StatusClosed   Status = "closed"
	StatusDeleted  Status = "deleted"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusBooked, StatusOccupied, StatusExtended, StatusClosed, StatusDeleted:
		return true
	default:
		return false
	}
}

// IsLive reports whether the session still occupies its station. Closed is
// absorbing; deleted is a soft tombstone.
func (s Status) IsLive() bool {
	switch s {
	case StatusActive, StatusBooked, StatusOccupied, StatusExtended:
		return true
	default:
		return false
	}
}
