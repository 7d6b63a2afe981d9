package station

import "errors"

var (
	ErrNotOpen      = errors.New("station is not open")
	ErrInvalidState = errors.New("invalid station status")
)

type Status string

const (
	StatusOpen        Status = "open"
	StatusBooked      Status = "booked"
	StatusOccupied    Status = "occupied"
	StatusUnavailable Status = "unavailable"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusBooked, StatusOccupied, StatusUnavailable:
		return true
	default:
		return false
	}
}

// Station is a rentable device. Its status is a cached projection of "does a
// live session reference me". The session side is the source of truth, which
// is why availability reads reconcile against sessions instead of trusting
// this field alone.
type Station struct {
	id       string
	name     string
	branchID string
	status   Status
}

func Reconstruct(id, name, branchID string, status Status) *Station {
	return &Station{id: id, name: name, branchID: branchID, status: status}
}

func (s *Station) IsOpen() bool {
	return s.status == StatusOpen
}

// Book claims the station. A busy flag with no live session behind it is a
// leftover from a failed release leg, so a booked or occupied station may be
// re-claimed; the caller establishes the no-live-session part before booking.
// Only unavailable refuses outright. Booked and occupied are used as synonyms
// by the terminals; booked is what gets written.
func (s *Station) Book() error {
	if s.status == StatusUnavailable {
		return ErrNotOpen
	}
	s.status = StatusBooked
	return nil
}

// Release frees the station after its session closes.
func (s *Station) Release() {
	s.status = StatusOpen
}

func (s *Station) ID() string       { return s.id }
func (s *Station) Name() string     { return s.name }
func (s *Station) BranchID() string { return s.branchID }
func (s *Station) Status() Status   { return s.status }
