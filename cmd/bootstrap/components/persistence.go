package components

import (
	"room-reservation-engine/internal/domain/reservation"
	"room-reservation-engine/internal/infra/memstore"
	"room-reservation-engine/internal/infra/query"
	"room-reservation-engine/internal/infra/readstore"
	"room-reservation-engine/internal/infra/uow"
	"room-reservation-engine/internal/pkg/clock"
	"room-reservation-engine/internal/usecase/queries"
	"room-reservation-engine/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PostgresPersistenceModule = fx.Module("persistence/postgres",
	fx.Provide(
		query.New,
		NewDBTX,
		// UnitOfWork
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Reservation
		fx.Annotate(
			query.New,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		// Cancellation
		fx.Annotate(
			query.New,
			fx.As(new(readstore.CancellationViewQueries)),
		),
		fx.Annotate(
			readstore.NewCancellationReadStore,
			fx.As(new(queries.CancellationReadStore)),
		),
	),
)

var MemoryPersistenceModule = fx.Module("persistence/memory",
	fx.Provide(
		NewMemoryStore,
		func(s *memstore.Store) shared.UnitOfWork { return s },
		fx.Annotate(
			(*memstore.Store).ReservationReads,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			(*memstore.Store).CancellationReads,
			fx.As(new(queries.CancellationReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) query.DBTX {
	return pool
}

func NewMemoryStore(clk clock.Clock, prefixes reservation.Prefixes) *memstore.Store {
	return memstore.New(clk, prefixes)
}
