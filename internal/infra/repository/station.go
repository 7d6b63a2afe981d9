package repository

import (
	"context"
	"errors"

	"lounge-engine/internal/domain/station"
	"lounge-engine/internal/infra"
	"lounge-engine/internal/infra/recordstore"
)

var errNotADevice = errors.New("inventory item is not a device")

type StationRepository struct {
	client *recordstore.Client
}

func NewStationRepository(client *recordstore.Client) *StationRepository {
	return &StationRepository{client: client}
}

func (r *StationRepository) FindByID(ctx context.Context, id string) (*station.Station, error) {
	var rec inventoryRecord
	if err := r.client.GetOne(ctx, CollectionInventory, id, &rec); err != nil {
		return nil, wrapStoreErr("failed to find station by ID", err)
	}
	if rec.Type != InventoryTypeDevice {
		return nil, infra.WrapRepoErr("inventory item is not a device", errNotADevice, infra.KindNotFound)
	}
	st := rec.toStation()
	if !st.Status().IsValid() {
		return nil, infra.WrapRepoErr("station record carries an unknown status", station.ErrInvalidState)
	}
	return st, nil
}

func (r *StationRepository) ListByBranch(ctx context.Context, branchID string) ([]*station.Station, error) {
	filter := recordstore.And(
		recordstore.Eq("branch_id", branchID),
		recordstore.Eq("type", InventoryTypeDevice),
	)

	var recs []inventoryRecord
	_, err := r.client.GetList(ctx, CollectionInventory, 1, 0, recordstore.ListOptions{
		Filter: filter,
		Sort:   "name",
	}, &recs)
	if err != nil {
		return nil, wrapStoreErr("failed to list stations", err)
	}

	stations := make([]*station.Station, len(recs))
	for i, rec := range recs {
		stations[i] = rec.toStation()
	}
	return stations, nil
}

// UpdateStatus writes the cached station projection. This is always the
// second leg of a two-step saga; the caller owns compensation when it fails.
func (r *StationRepository) UpdateStatus(ctx context.Context, id string, status station.Status) error {
	fields := map[string]any{"status": string(status)}
	if err := r.client.Update(ctx, CollectionInventory, id, fields, nil); err != nil {
		return wrapStoreErr("failed to update station status", err)
	}
	return nil
}
