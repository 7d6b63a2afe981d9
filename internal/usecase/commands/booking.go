package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"lounge-engine/internal/domain/customer"
	"lounge-engine/internal/domain/pricing"
	"lounge-engine/internal/domain/session"
	"lounge-engine/internal/domain/station"
	"lounge-engine/internal/infra"
	"lounge-engine/internal/infra/recordstore"
	"lounge-engine/internal/pkg/clock"
	"lounge-engine/internal/pkg/errs"
)

// StateConflictError reports a transition attempted from the wrong state so
// the terminal can refresh its view instead of retrying blind.
type StateConflictError struct {
	Op      string
	Current string
	err     error
}

func (e *StateConflictError) Error() string {
	return fmt.Sprintf("%s rejected: current state is %q", e.Op, e.Current)
}

func (e *StateConflictError) Unwrap() error { return e.err }

func NewStateConflict(op, current string, sentinel error) error {
	return &StateConflictError{Op: op, Current: current, err: sentinel}
}

type StartSessionParams struct {
	BranchID      string
	StaffID       string
	DeviceID      string
	CustomerID    string // existing customer id, or empty to find-or-create by phone
	CustomerName  string
	CustomerPhone string
	Players       int
	DurationHours int
	GameIDs       []string
	RequestKey    string // idempotency key; empty disables replay detection
}

type StartSessionResult struct {
	Session    *session.Session
	IsReplayed bool
}

type ExtendSessionParams struct {
	BranchID     string
	ExtraHours   int
	ExtraPlayers int
}

type ExtendSessionResult struct {
	Session *session.Session
	Charge  pricing.Amount
}

type CloseSessionParams struct {
	BranchID     string
	RedeemPoints int // 0 means no redemption
}

type CloseSessionResult struct {
	Session         *session.Session
	AmountDue       pricing.Amount
	RedeemedValue   pricing.Amount
	ActualHours     float64
	StationReleased bool
}

type BookingCommands interface {
	StartSession(ctx context.Context, p StartSessionParams) (*StartSessionResult, error)
	ExtendSession(ctx context.Context, sessionID string, p ExtendSessionParams) (*ExtendSessionResult, error)
	CloseSession(ctx context.Context, sessionID string, p CloseSessionParams) (*CloseSessionResult, error)
}

type bookingCommandsImpl struct {
	stations  StationRepository
	sessions  SessionRepository
	pricing   PricingRepository
	customers CustomerRepository
	games     GameCatalog
	clock     clock.Clock
	logger    *slog.Logger
}

func NewBookingCommands(
	stations StationRepository,
	sessions SessionRepository,
	pricingRepo PricingRepository,
	customers CustomerRepository,
	games GameCatalog,
	clk clock.Clock,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		stations:  stations,
		sessions:  sessions,
		pricing:   pricingRepo,
		customers: customers,
		games:     games,
		clock:     clk,
		logger:    logger,
	}
}

// StartSession books an open station. The write order is session first, then
// the station's cached status. The store has no cross-collection transaction,
// so the double-booking race is closed by the unique active-device guard on
// the session create; the status checks before it only exist to fail fast
// with a precise error.
func (b *bookingCommandsImpl) StartSession(ctx context.Context, p StartSessionParams) (*StartSessionResult, error) {
	if p.Players < 1 {
		return nil, errs.ErrInvalidPlayerCount
	}
	if p.DurationHours < 1 {
		return nil, errs.ErrInvalidHours
	}

	st, err := b.stations.FindByID(ctx, p.DeviceID)
	if err != nil {
		return nil, mapRepoErr(err, errs.ErrStationNotFound)
	}
	if st.Status() == station.StatusUnavailable {
		return nil, NewStateConflict("startSession", string(st.Status()), errs.ErrStationNotOpen)
	}

	// The station flag can lie in both directions after a failed leg, so
	// session truth decides: a live session referencing the device outranks an
	// open flag, and a busy flag with no live session behind it is stale and
	// does not block the booking (the status write below repairs it).
	if live, liveErr := b.sessions.FindLiveByDevice(ctx, p.DeviceID); liveErr == nil {
		return nil, NewStateConflict("startSession", live.Status().String(), errs.ErrStationBusy)
	} else if !infra.IsKind(liveErr, infra.KindNotFound) {
		return nil, mapRepoErr(liveErr, errs.ErrStoreUnavailable)
	}
	if !st.IsOpen() {
		b.logger.Warn("booking past a stale busy flag",
			"device_id", st.ID(), "flag", string(st.Status()))
	}

	table, err := b.pricing.FindByBranch(ctx, p.BranchID)
	if err != nil {
		return nil, mapRepoErr(err, errs.ErrPricingNotFound)
	}

	cust, err := b.resolveCustomer(ctx, p)
	if err != nil {
		return nil, err
	}

	sess, err := session.Start(
		p.DeviceID, cust.ID(), p.StaffID, p.BranchID,
		p.Players, p.DurationHours, p.GameIDs,
		table, b.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err := b.sessions.CreateActive(ctx, sess, p.RequestKey); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return b.resolveCreateConflict(ctx, p, err)
		}
		return nil, mapRepoErr(err, errs.ErrStoreUnavailable)
	}

	if err := st.Book(); err != nil {
		b.compensateStart(ctx, sess)
		return nil, NewStateConflict("startSession", string(st.Status()), errs.ErrStationNotOpen)
	}
	if err := b.stations.UpdateStatus(ctx, st.ID(), st.Status()); err != nil {
		b.compensateStart(ctx, sess)
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	if len(p.GameIDs) > 0 {
		b.games.BumpPopularity(ctx, p.GameIDs)
	}

	return &StartSessionResult{Session: sess}, nil
}

func (b *bookingCommandsImpl) ExtendSession(ctx context.Context, sessionID string, p ExtendSessionParams) (*ExtendSessionResult, error) {
	if p.ExtraHours < 1 {
		return nil, errs.ErrInvalidHours
	}
	if p.ExtraPlayers < 0 {
		return nil, errs.ErrInvalidPlayerCount
	}

	sess, err := b.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return nil, mapRepoErr(err, errs.ErrSessionNotFound)
	}

	table, err := b.pricing.FindByBranch(ctx, p.BranchID)
	if err != nil {
		return nil, mapRepoErr(err, errs.ErrPricingNotFound)
	}

	charge, err := sess.Extend(p.ExtraHours, p.ExtraPlayers, table)
	if err != nil {
		if errors.Is(err, session.ErrAlreadyClosed) || errors.Is(err, session.ErrTombstoned) {
			return nil, NewStateConflict("extendSession", sess.Status().String(), errs.ErrSessionAlreadyClosed)
		}
		return nil, err
	}

	if err := b.sessions.Save(ctx, sess); err != nil {
		return nil, mapRepoErr(err, errs.ErrStoreUnavailable)
	}

	return &ExtendSessionResult{Session: sess, Charge: charge}, nil
}

// CloseSession settles a session. The session write lands first; a failed
// station release is logged and left to the availability refresher, because
// the money side is already settled and must not roll back for a cache flag.
func (b *bookingCommandsImpl) CloseSession(ctx context.Context, sessionID string, p CloseSessionParams) (*CloseSessionResult, error) {
	if p.RedeemPoints < 0 {
		return nil, errs.ErrInvalidRedeem
	}

	sess, err := b.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return nil, mapRepoErr(err, errs.ErrSessionNotFound)
	}

	table, err := b.pricing.FindByBranch(ctx, p.BranchID)
	if err != nil {
		return nil, mapRepoErr(err, errs.ErrPricingNotFound)
	}

	amountDue := sess.TotalAmount()
	var redeemed pricing.Amount
	var redeemer *customer.Customer

	if p.RedeemPoints > 0 {
		c, custErr := b.customers.FindByID(ctx, sess.CustomerID())
		if custErr != nil {
			return nil, mapRepoErr(custErr, errs.ErrCustomerNotFound)
		}
		value, redeemErr := pricing.RedeemValue(p.RedeemPoints, sess.TotalAmount(), table)
		if redeemErr != nil {
			return nil, errs.Mark(redeemErr, errs.ErrInvalidRedeem)
		}
		if deductErr := c.DeductPoints(p.RedeemPoints); deductErr != nil {
			return nil, errs.Mark(deductErr, errs.ErrInvalidRedeem)
		}
		redeemed = value
		amountDue -= value
		redeemer = c
	}

	if err := sess.Close(b.clock.Now()); err != nil {
		return nil, NewStateConflict("closeSession", sess.Status().String(), errs.ErrSessionAlreadyClosed)
	}

	if err := b.sessions.Save(ctx, sess); err != nil {
		return nil, mapRepoErr(err, errs.ErrStoreUnavailable)
	}

	b.settlePoints(ctx, sess, redeemer)

	released := true
	if err := b.stations.UpdateStatus(ctx, sess.DeviceID(), station.StatusOpen); err != nil {
		released = false
		b.logger.Warn("station release failed after close, availability refresh will cover it",
			"session_id", sess.ID(), "device_id", sess.DeviceID(), "error", err)
	}

	return &CloseSessionResult{
		Session:         sess,
		AmountDue:       amountDue,
		RedeemedValue:   redeemed,
		ActualHours:     sess.ActualHours(),
		StationReleased: released,
	}, nil
}

func (b *bookingCommandsImpl) resolveCustomer(ctx context.Context, p StartSessionParams) (*customer.Customer, error) {
	if p.CustomerID != "" {
		c, err := b.customers.FindByID(ctx, p.CustomerID)
		if err != nil {
			return nil, mapRepoErr(err, errs.ErrCustomerNotFound)
		}
		return c, nil
	}
	c, err := b.customers.FindOrCreateByPhone(ctx, p.CustomerName, p.CustomerPhone, p.BranchID)
	if err != nil {
		if infra.IsKind(err, infra.KindUnavailable) {
			return nil, errs.Mark(err, errs.ErrStoreUnavailable)
		}
		return nil, err
	}
	return c, nil
}

// resolveCreateConflict untangles which unique guard rejected the create:
// the idempotency key means this request already booked, the device guard
// means another terminal won the station.
func (b *bookingCommandsImpl) resolveCreateConflict(ctx context.Context, p StartSessionParams, createErr error) (*StartSessionResult, error) {
	if p.RequestKey != "" && recordstore.UniqueViolationField(createErr) == "request_key" {
		existing, err := b.sessions.FindByRequestKey(ctx, p.RequestKey)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrStoreUnavailable)
		}
		return &StartSessionResult{Session: existing, IsReplayed: true}, nil
	}
	return nil, NewStateConflict("startSession", string(station.StatusOccupied), errs.ErrStationBusy)
}

// compensateStart tombstones a session whose station leg failed. Best
// effort: the tombstone clears the device guard; if even that write fails
// the live-session check keeps the station from double-booking anyway.
func (b *bookingCommandsImpl) compensateStart(ctx context.Context, sess *session.Session) {
	sess.Tombstone()
	if err := b.sessions.Save(ctx, sess); err != nil {
		b.logger.Error("compensation failed, orphaned session left for reconciliation",
			"session_id", sess.ID(), "device_id", sess.DeviceID(), "error", err)
	}
}

// settlePoints credits earned reward points, reusing the already-loaded
// customer when redemption deducted from it in the same close.
func (b *bookingCommandsImpl) settlePoints(ctx context.Context, sess *session.Session, loaded *customer.Customer) {
	c := loaded
	if c == nil {
		found, err := b.customers.FindByID(ctx, sess.CustomerID())
		if err != nil {
			b.logger.Warn("reward credit skipped, customer lookup failed",
				"session_id", sess.ID(), "customer_id", sess.CustomerID(), "error", err)
			return
		}
		c = found
	}
	c.AddPoints(sess.RewardPoints())
	if err := b.customers.UpdatePoints(ctx, c); err != nil {
		b.logger.Warn("reward settlement write failed",
			"session_id", sess.ID(), "customer_id", sess.CustomerID(), "error", err)
	}
}

func mapRepoErr(err error, onNotFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, onNotFound)
	}
	return errs.Mark(err, errs.ErrStoreUnavailable)
}
