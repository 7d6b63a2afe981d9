//go:build e2e

package e2e

import (
	"testing"

	"lounge-engine/internal/infra/repository"
	"lounge-engine/tests/common/storetest"

	"github.com/stretchr/testify/require"
)

// CollectionResetOrder lists every collection the tests write to. Sessions go
// first so no live session still claims a device that is about to vanish.
var CollectionResetOrder = []string{
	repository.CollectionSessions,
	repository.CollectionCustomers,
	repository.CollectionInventory,
	repository.CollectionPricing,
}

// ensureCollections creates the store schema the service expects. The two
// partial unique indexes on sessions are what the booking flow's
// conditional-create and idempotent-replay guarantees hang on.
func ensureCollections(store *storetest.Admin) error {
	collections := []map[string]any{
		{
			"name": repository.CollectionInventory,
			"type": "base",
			"schema": []map[string]any{
				{"name": "name", "type": "text", "required": true},
				{"name": "type", "type": "text", "required": true},
				{"name": "branch_id", "type": "text", "required": true},
				{"name": "status", "type": "text"},
				{"name": "popularity_score", "type": "number"},
			},
		},
		{
			"name": repository.CollectionSessions,
			"type": "base",
			"schema": []map[string]any{
				{"name": "device_id", "type": "text", "required": true},
				{"name": "active_device_id", "type": "text"},
				{"name": "request_key", "type": "text"},
				{"name": "customer_id", "type": "text"},
				{"name": "games", "type": "json"},
				{"name": "branch_id", "type": "text", "required": true},
				{"name": "user_id", "type": "text"},
				{"name": "no_of_players", "type": "number"},
				{"name": "session_in", "type": "date"},
				{"name": "session_out", "type": "date"},
				{"name": "duration_hours", "type": "number"},
				{"name": "extended_duration", "type": "number"},
				{"name": "total_amount", "type": "number"},
				{"name": "status", "type": "text"},
				{"name": "reward_points_earned", "type": "number"},
			},
			"indexes": []string{
				"CREATE UNIQUE INDEX `idx_sessions_active_device` ON `sessions` (`active_device_id`) WHERE `active_device_id` != ''",
				"CREATE UNIQUE INDEX `idx_sessions_request_key` ON `sessions` (`request_key`) WHERE `request_key` != ''",
			},
		},
		{
			"name": repository.CollectionPricing,
			"type": "base",
			"schema": []map[string]any{
				{"name": "branch_id", "type": "text", "required": true},
				{"name": "single_player", "type": "number"},
				{"name": "multi_player", "type": "number"},
				{"name": "over_three_player", "type": "number"},
				{"name": "credit_rate", "type": "number"},
				{"name": "rupee_conversion", "type": "number"},
				{"name": "redeem_limit_min_points", "type": "number"},
				{"name": "redeem_limit_max_rate", "type": "number"},
			},
		},
		{
			"name": repository.CollectionCustomers,
			"type": "base",
			"schema": []map[string]any{
				{"name": "name", "type": "text", "required": true},
				{"name": "phone", "type": "text"},
				{"name": "branch_id", "type": "text", "required": true},
				{"name": "reward_points", "type": "number"},
			},
		},
	}

	for _, def := range collections {
		if err := store.EnsureCollection(def); err != nil {
			return err
		}
	}
	return nil
}

// -----------------------------------------------------------------------------
// Seed helpers
// -----------------------------------------------------------------------------

func SeedPricing(t *testing.T, store *storetest.Admin, branchID string) string {
	t.Helper()
	id, err := store.CreateRecord(repository.CollectionPricing, map[string]any{
		"branch_id":               branchID,
		"single_player":           100,
		"multi_player":            80,
		"over_three_player":       60,
		"credit_rate":             0.1,
		"rupee_conversion":        10,
		"redeem_limit_min_points": 50,
		"redeem_limit_max_rate":   0.5,
	})
	require.NoError(t, err, "Failed to seed pricing table")
	return id
}

func SeedStation(t *testing.T, store *storetest.Admin, branchID, name, status string) string {
	t.Helper()
	id, err := store.CreateRecord(repository.CollectionInventory, map[string]any{
		"name":      name,
		"type":      repository.InventoryTypeDevice,
		"branch_id": branchID,
		"status":    status,
	})
	require.NoError(t, err, "Failed to seed station")
	return id
}

func SeedGame(t *testing.T, store *storetest.Admin, branchID, name string, popularity int) string {
	t.Helper()
	id, err := store.CreateRecord(repository.CollectionInventory, map[string]any{
		"name":             name,
		"type":             repository.InventoryTypeGame,
		"branch_id":        branchID,
		"popularity_score": popularity,
	})
	require.NoError(t, err, "Failed to seed game")
	return id
}

func SeedCustomer(t *testing.T, store *storetest.Admin, branchID, name, phone string, points int) string {
	t.Helper()
	id, err := store.CreateRecord(repository.CollectionCustomers, map[string]any{
		"name":          name,
		"phone":         phone,
		"branch_id":     branchID,
		"reward_points": points,
	})
	require.NoError(t, err, "Failed to seed customer")
	return id
}
