package repository

import (
	"context"
	"log/slog"

	"lounge-engine/internal/domain/game"
	"lounge-engine/internal/infra/recordstore"
)

type GameRepository struct {
	client *recordstore.Client
	logger *slog.Logger
}

func NewGameRepository(client *recordstore.Client, logger *slog.Logger) *GameRepository {
	return &GameRepository{client: client, logger: logger}
}

func (r *GameRepository) ListByBranch(ctx context.Context, branchID string) ([]game.Game, error) {
	filter := recordstore.And(
		recordstore.Eq("branch_id", branchID),
		recordstore.Eq("type", InventoryTypeGame),
	)

	var recs []inventoryRecord
	_, err := r.client.GetList(ctx, CollectionInventory, 1, 0, recordstore.ListOptions{
		Filter: filter,
		Sort:   "-popularity_score",
	}, &recs)
	if err != nil {
		return nil, wrapStoreErr("failed to list games", err)
	}

	games := make([]game.Game, len(recs))
	for i, rec := range recs {
		games[i] = game.Game{ID: rec.ID, Name: rec.Name, PopularityScore: rec.PopularityScore}
	}
	return games, nil
}

// BumpPopularity increments each game's popularity score. Best effort: a
// score that fails to bump never fails the booking that referenced it.
func (r *GameRepository) BumpPopularity(ctx context.Context, gameIDs []string) {
	for _, id := range gameIDs {
		var rec inventoryRecord
		if err := r.client.GetOne(ctx, CollectionInventory, id, &rec); err != nil {
			r.logger.Warn("skipping popularity bump", "game_id", id, "error", err)
			continue
		}
		fields := map[string]any{"popularity_score": rec.PopularityScore + 1}
		if err := r.client.Update(ctx, CollectionInventory, id, fields, nil); err != nil {
			r.logger.Warn("failed to bump popularity", "game_id", id, "error", err)
		}
	}
}
