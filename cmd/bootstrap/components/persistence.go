package components

import (
	sqlc "newsletter-delivery/internal/infra/sqlc/generated"
	"newsletter-delivery/internal/infra/uow"
	"newsletter-delivery/internal/pkg/config"
	"newsletter-delivery/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewSQLQueries,
		uow.NewPostgresUoW,
		NewIdempotencyCoordinator,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewIdempotencyCoordinator(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.Config) shared.IdempotencyCoordinator {
	return uow.NewPostgresCoordinator(pool, q, cfg.Idempotency)
}
