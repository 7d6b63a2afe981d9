package components

import (
	"lounge-engine/internal/handler"
	"lounge-engine/internal/handler/api"
	"lounge-engine/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSessionHandler,
		api.NewStationHandler,
		api.NewReportHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
