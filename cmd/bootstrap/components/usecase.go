package components

import (
	"context"
	"log/slog"

	"lounge-engine/internal/pkg/clock"
	"lounge-engine/internal/pkg/config"
	"lounge-engine/internal/usecase"
	"lounge-engine/internal/usecase/commands"
	"lounge-engine/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
	fx.Invoke(startAvailabilityRefresher),
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	usecase.NewTokenValidator,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewStationQueries,
		queries.NewQuoteQueries,
		queries.NewReportQueries,
		NewAvailabilityRefresher,
	),
)

func NewAvailabilityRefresher(stations queries.StationQueries, cfg config.Config, logger *slog.Logger) *queries.AvailabilityRefresher {
	return queries.NewAvailabilityRefresher(
		stations,
		cfg.Availability.Branches,
		cfg.Availability.RefreshInterval,
		logger,
	)
}

func startAvailabilityRefresher(lc fx.Lifecycle, refresher *queries.AvailabilityRefresher) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			refresher.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			refresher.Stop()
			return nil
		},
	})
}
