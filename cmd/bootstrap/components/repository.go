package components

import (
	"charmforge/internal/infra/db"
	"charmforge/internal/infra/readstore"
	"charmforge/internal/infra/repo_impl"
	"charmforge/internal/infra/uow"
	"charmforge/internal/usecase/commands"
	"charmforge/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		uow.NewPgxTxManager,
		// Write-side repositories
		fx.Annotate(
			repo_impl.NewBraceletRepository,
			fx.As(new(commands.BraceletRepository)),
		),
		fx.Annotate(
			repo_impl.NewCharmRepository,
			fx.As(new(commands.CharmRepository)),
		),
		fx.Annotate(
			repo_impl.NewDesignRepository,
			fx.As(new(commands.DesignRepository)),
		),
		fx.Annotate(
			repo_impl.NewOrderRepository,
			fx.As(new(commands.OrderRepository)),
		),
		// Read-side stores
		fx.Annotate(
			readstore.NewDesignReadStore,
			fx.As(new(queries.DesignReadStore)),
		),
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.CatalogReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
