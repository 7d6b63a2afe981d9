package session

import (
	"errors"
	"time"

	"lounge-engine/internal/domain/pricing"
)

var (
	ErrInvalidPlayers = errors.New("player count must be at least 1")
	ErrInvalidHours   = errors.New("hours must be at least 1")
	ErrAlreadyClosed  = errors.New("session is already closed")
	ErrTombstoned     = errors.New("session is deleted")
)

// Session is a billable occupancy of a station. session_in is immutable;
// total_amount only grows until close; billed hours are never retroactively
// shortened even when the session is closed early.
type Session struct {
	id           string
	deviceID     string
	customerID   string
	gameIDs      []string
	branchID     string
	staffID      string
	players      int
	sessionIn    time.Time
	sessionOut   time.Time
	durationHrs  int
	extendedHrs  int
	totalAmount  pricing.Amount
	status       Status
	rewardPoints int
}

// Start opens a brand-new session on a station. The price for the whole
// booked window is charged up front, the way the counter bills.
func Start(
	deviceID, customerID, staffID, branchID string,
	players, hours int,
	gameIDs []string,
	table pricing.Table,
	now time.Time,
) (*Session, error) {
	if players < 1 {
		return nil, ErrInvalidPlayers
	}
	if hours < 1 {
		return nil, ErrInvalidHours
	}

	amount, err := pricing.Quote(players, hours, table)
	if err != nil {
		return nil, err
	}

	return &Session{
		deviceID:     deviceID,
		customerID:   customerID,
		gameIDs:      gameIDs,
		branchID:     branchID,
		staffID:      staffID,
		players:      players,
		sessionIn:    now,
		sessionOut:   now.Add(time.Duration(hours) * time.Hour),
		durationHrs:  hours,
		totalAmount:  amount,
		status:       StatusOccupied,
		rewardPoints: pricing.RewardPoints(amount, table),
	}, nil
}

func Reconstruct(
	id, deviceID, customerID, staffID, branchID string,
	gameIDs []string,
	players int,
	sessionIn, sessionOut time.Time,
	durationHrs, extendedHrs int,
	totalAmount pricing.Amount,
	status Status,
	rewardPoints int,
) *Session {
	return &Session{
		id:           id,
		deviceID:     deviceID,
		customerID:   customerID,
		gameIDs:      gameIDs,
		branchID:     branchID,
		staffID:      staffID,
		players:      players,
		sessionIn:    sessionIn,
		sessionOut:   sessionOut,
		durationHrs:  durationHrs,
		extendedHrs:  extendedHrs,
		totalAmount:  totalAmount,
		status:       status,
		rewardPoints: rewardPoints,
	}
}

// Extend adds hours and optionally players. Billing is incremental: the added
// hours are charged at the rate for the new total player count, amounts
// already accrued are untouched.
func (s *Session) Extend(extraHours, extraPlayers int, table pricing.Table) (pricing.Amount, error) {
	if err := s.guardLive(); err != nil {
		return 0, err
	}
	if extraHours < 1 {
		return 0, ErrInvalidHours
	}
	if extraPlayers < 0 {
		return 0, ErrInvalidPlayers
	}

	newPlayers := s.players + extraPlayers
	charge, err := pricing.ExtensionCharge(newPlayers, extraHours, table)
	if err != nil {
		return 0, err
	}

	s.sessionOut = s.sessionOut.Add(time.Duration(extraHours) * time.Hour)
	s.durationHrs += extraHours
	s.extendedHrs += extraHours
	s.players = newPlayers
	s.totalAmount += charge
	s.rewardPoints = pricing.RewardPoints(s.totalAmount, table)
	s.status = StatusExtended
	return charge, nil
}

// Close stamps session_out with the actual end time and parks the session in
// its absorbing state. A second close is a conflict, not a no-op.
func (s *Session) Close(now time.Time) error {
	if err := s.guardLive(); err != nil {
		return err
	}
	s.sessionOut = now
	s.status = StatusClosed
	return nil
}

// Tombstone soft-deletes the session. Used as the compensation step when the
// station write after a create fails; never exposed as a user operation.
func (s *Session) Tombstone() {
	s.status = StatusDeleted
}

func (s *Session) guardLive() error {
	switch s.status {
	case StatusClosed:
		return ErrAlreadyClosed
	case StatusDeleted:
		return ErrTombstoned
	}
	return nil
}

// ActualHours is the audit-display elapsed time, distinct from the billed
// durationHrs which never shrinks.
func (s *Session) ActualHours() float64 {
	return s.sessionOut.Sub(s.sessionIn).Hours()
}

func (s *Session) IsLive() bool { return s.status.IsLive() }

func (s *Session) SetID(id string) {
	if s.id == "" {
		s.id = id
	}
}

func (s *Session) ID() string                  { return s.id }
func (s *Session) DeviceID() string            { return s.deviceID }
func (s *Session) CustomerID() string          { return s.customerID }
func (s *Session) GameIDs() []string           { return s.gameIDs }
func (s *Session) BranchID() string            { return s.branchID }
func (s *Session) StaffID() string             { return s.staffID }
func (s *Session) Players() int                { return s.players }
func (s *Session) SessionIn() time.Time        { return s.sessionIn }
func (s *Session) SessionOut() time.Time       { return s.sessionOut }
func (s *Session) DurationHours() int          { return s.durationHrs }
func (s *Session) ExtendedHours() int          { return s.extendedHrs }
func (s *Session) TotalAmount() pricing.Amount { return s.totalAmount }
func (s *Session) Status() Status              { return s.status }
func (s *Session) RewardPoints() int           { return s.rewardPoints }
