package bootstrap

import (
	"log/slog"

	"lounge-engine/internal/infra/recordstore"
	"lounge-engine/internal/pkg/config"

	"go.uber.org/fx"
)

var RecordStoreModule = fx.Module("recordstore",
	fx.Provide(
		NewRecordStoreClient,
	),
)

func NewRecordStoreClient(cfg config.Config, logger *slog.Logger) *recordstore.Client {
	return recordstore.NewClient(cfg.RecordStore, logger)
}
