package components

import (
	"furnished-lease-engine/internal/infra/readstore"
	sqlc "furnished-lease-engine/internal/infra/sqlc/generated"
	"furnished-lease-engine/internal/infra/uow"
	"furnished-lease-engine/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Write-side repositories are built per transaction by the unit of work.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Lease
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.LeaseViewQueries)),
		),
		fx.Annotate(
			readstore.NewLeaseReadStore,
			fx.As(new(queries.LeaseViewRepo)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
