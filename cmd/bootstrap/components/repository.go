package components

import (
	"lounge-engine/internal/infra/repository"
	"lounge-engine/internal/usecase/commands"
	"lounge-engine/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewStationRepository,
			fx.As(new(commands.StationRepository)),
			fx.As(new(queries.StationReader)),
		),
		fx.Annotate(
			repository.NewSessionRepository,
			fx.As(new(commands.SessionRepository)),
			fx.As(new(queries.LiveSessionReader)),
			fx.As(new(queries.ClosedSessionReader)),
		),
		fx.Annotate(
			repository.NewPricingRepository,
			fx.As(new(commands.PricingRepository)),
			fx.As(new(queries.PricingReader)),
		),
		fx.Annotate(
			repository.NewCustomerRepository,
			fx.As(new(commands.CustomerRepository)),
		),
		fx.Annotate(
			repository.NewGameRepository,
			fx.As(new(commands.GameCatalog)),
			fx.As(new(queries.GameReader)),
		),
	),
)
