package repository

import (
	"context"
	"time"

	"lounge-engine/internal/domain/session"
	"lounge-engine/internal/infra/recordstore"
)

type SessionRepository struct {
	client *recordstore.Client
}

func NewSessionRepository(client *recordstore.Client) *SessionRepository {
	return &SessionRepository{client: client}
}

// CreateActive persists a freshly started session. active_device_id carries a
// unique index in the store, so two terminals racing for the same station get
// exactly one winner; the loser sees a conflict, not a duplicate booking.
// requestKey (also unique) dedupes client retries of the same booking.
func (r *SessionRepository) CreateActive(ctx context.Context, s *session.Session, requestKey string) error {
	fields := map[string]any{
		"device_id":            s.DeviceID(),
		"active_device_id":     s.DeviceID(),
		"request_key":          requestKey,
		"customer_id":          s.CustomerID(),
		"games":                s.GameIDs(),
		"branch_id":            s.BranchID(),
		"user_id":              s.StaffID(),
		"no_of_players":        s.Players(),
		"session_in":           recordstore.NewDateTime(s.SessionIn()),
		"session_out":          recordstore.NewDateTime(s.SessionOut()),
		"duration_hours":       s.DurationHours(),
		"extended_duration":    s.ExtendedHours(),
		"total_amount":         int64(s.TotalAmount()),
		"status":               s.Status().String(),
		"reward_points_earned": s.RewardPoints(),
	}

	var rec sessionRecord
	if err := r.client.Create(ctx, CollectionSessions, fields, &rec); err != nil {
		return wrapStoreErr("failed to create session", err)
	}
	s.SetID(rec.ID)
	return nil
}

// Save writes the mutable half of a session after an extend or close. A
// closed or tombstoned session clears active_device_id so the station's
// uniqueness slot frees up for the next booking.
func (r *SessionRepository) Save(ctx context.Context, s *session.Session) error {
	fields := map[string]any{
		"session_out":          recordstore.NewDateTime(s.SessionOut()),
		"duration_hours":       s.DurationHours(),
		"extended_duration":    s.ExtendedHours(),
		"no_of_players":        s.Players(),
		"total_amount":         int64(s.TotalAmount()),
		"status":               s.Status().String(),
		"reward_points_earned": s.RewardPoints(),
	}
	if !s.IsLive() {
		fields["active_device_id"] = ""
	}

	if err := r.client.Update(ctx, CollectionSessions, s.ID(), fields, nil); err != nil {
		return wrapStoreErr("failed to save session", err)
	}
	return nil
}

func (r *SessionRepository) FindByID(ctx context.Context, id string) (*session.Session, error) {
	var rec sessionRecord
	if err := r.client.GetOne(ctx, CollectionSessions, id, &rec); err != nil {
		return nil, wrapStoreErr("failed to find session by ID", err)
	}
	return rec.toDomain(), nil
}

// FindByRequestKey resolves an idempotent replay of a booking request.
func (r *SessionRepository) FindByRequestKey(ctx context.Context, requestKey string) (*session.Session, error) {
	var rec sessionRecord
	err := r.client.GetFirstListItem(ctx, CollectionSessions, recordstore.Eq("request_key", requestKey), &rec)
	if err != nil {
		return nil, wrapStoreErr("failed to find session by request key", err)
	}
	return rec.toDomain(), nil
}

// FindLiveByDevice returns the non-closed session occupying a device, if any.
func (r *SessionRepository) FindLiveByDevice(ctx context.Context, deviceID string) (*session.Session, error) {
	var rec sessionRecord
	err := r.client.GetFirstListItem(ctx, CollectionSessions, recordstore.And(
		recordstore.Eq("device_id", deviceID),
		liveStatusFilter(),
	), &rec)
	if err != nil {
		return nil, wrapStoreErr("failed to find live session for device", err)
	}
	return rec.toDomain(), nil
}

// ListLiveByBranch backs the occupied-stations view and the reconciliation
// read: sessions, not station flags, are the truth about occupancy.
func (r *SessionRepository) ListLiveByBranch(ctx context.Context, branchID string) ([]*session.Session, error) {
	filter := recordstore.And(
		recordstore.Eq("branch_id", branchID),
		liveStatusFilter(),
	)

	var recs []sessionRecord
	_, err := r.client.GetList(ctx, CollectionSessions, 1, 0, recordstore.ListOptions{
		Filter: filter,
		Sort:   "-created",
	}, &recs)
	if err != nil {
		return nil, wrapStoreErr("failed to list live sessions", err)
	}

	sessions := make([]*session.Session, len(recs))
	for i, rec := range recs {
		sessions[i] = rec.toDomain()
	}
	return sessions, nil
}

// ListClosedBetween feeds the revenue report.
func (r *SessionRepository) ListClosedBetween(ctx context.Context, branchID string, from, to time.Time) ([]*session.Session, error) {
	filter := recordstore.And(
		recordstore.Eq("branch_id", branchID),
		recordstore.Eq("status", session.StatusClosed.String()),
		recordstore.Ge("session_in", from),
		recordstore.Le("session_in", to),
	)

	var recs []sessionRecord
	_, err := r.client.GetList(ctx, CollectionSessions, 1, 0, recordstore.ListOptions{
		Filter: filter,
		Sort:   "-session_in",
	}, &recs)
	if err != nil {
		return nil, wrapStoreErr("failed to list closed sessions", err)
	}

	sessions := make([]*session.Session, len(recs))
	for i, rec := range recs {
		sessions[i] = rec.toDomain()
	}
	return sessions, nil
}

func liveStatusFilter() recordstore.Filter {
	return recordstore.In("status",
		session.StatusActive.String(),
		session.StatusBooked.String(),
		session.StatusOccupied.String(),
		session.StatusExtended.String(),
	)
}
