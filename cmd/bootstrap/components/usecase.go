package components

import (
	"room-reservation-engine/internal/domain/reservation"
	"room-reservation-engine/internal/pkg/clock"
	"room-reservation-engine/internal/pkg/config"
	"room-reservation-engine/internal/usecase"
	"room-reservation-engine/internal/usecase/commands"
	"room-reservation-engine/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	reservation.NewFactory,
	func(cfg config.Config) (reservation.TransitionPolicy, error) {
		return reservation.ParseTransitionPolicy(cfg.Reservation.StatusPolicy)
	},
	func(cfg config.Config) queries.OpeningHours {
		return queries.OpeningHours{Open: cfg.Reservation.OpenHour, Close: cfg.Reservation.CloseHour}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationUseCase,
		commands.NewCancellationUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewCancellationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
