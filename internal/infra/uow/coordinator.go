package uow

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"newsletter-delivery/internal/domain/idempotency"
	"newsletter-delivery/internal/infra"
	sqlc "newsletter-delivery/internal/infra/sqlc/generated"
	"newsletter-delivery/internal/pkg/config"
	"newsletter-delivery/internal/pkg/errs"
	"newsletter-delivery/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errClaimConsumed = errs.New("idempotency claim already consumed")
	errEmptySnapshot = errs.New("idempotency record has no saved response")
)

// PostgresCoordinator serializes requests sharing (owner, key) through the
// idempotency table's primary key. A duplicate insert blocks on the peer's
// uncommitted row until it commits, rolls back, or lock_timeout fires.
type PostgresCoordinator struct {
	pool        *pgxpool.Pool
	q           *sqlc.Queries
	lockTimeout time.Duration
}

func NewPostgresCoordinator(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.IdempotencyConfig) shared.IdempotencyCoordinator {
	return &PostgresCoordinator{
		pool:        pool,
		q:           q,
		lockTimeout: cfg.LockTimeout,
	}
}

func (c *PostgresCoordinator) TryProcessing(ctx context.Context, ownerID uuid.UUID, key idempotency.Key) (shared.NextAction, error) {
	pgxTx, err := c.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return shared.NextAction{}, errs.Mark(errs.Mark(err, errTransactionBegin), errs.ErrStorage)
	}

	tx := newPgTx(pgxTx, c.q)
	handedOver := false
	defer func() {
		if !handedOver {
			rollback(ctx, pgxTx)
		}
	}()

	repo := tx.Idempotency()
	if c.lockTimeout > 0 {
		if err := repo.SetLockTimeout(ctx, pgxTx, c.lockTimeout); err != nil {
			return shared.NextAction{}, errs.Mark(err, errs.ErrStorage)
		}
	}

	claimed, err := repo.InsertClaim(ctx, pgxTx, ownerID, key)
	if err != nil {
		if infra.IsKind(err, infra.KindLockTimeout) {
			slog.Info("timed out waiting for concurrent request", "owner_id", ownerID.String(), "idempotency_key", key.String())
			return shared.NextAction{}, errs.Mark(err, errs.ErrConflict)
		}
		return shared.NextAction{}, errs.Mark(err, errs.ErrStorage)
	}

	if claimed {
		handedOver = true
		return shared.StartProcessing(&pgClaim{
			tx:      tx,
			pgxTx:   pgxTx,
			ownerID: ownerID,
			key:     key,
		}), nil
	}

	saved, err := repo.FetchSavedResponse(ctx, pgxTx, ownerID, key)
	if err != nil {
		// The conflicting row vanished between insert and read.
		if infra.IsKind(err, infra.KindNotFound) {
			return shared.NextAction{}, errs.Mark(err, errs.ErrConflict)
		}
		return shared.NextAction{}, errs.Mark(err, errs.ErrStorage)
	}
	if saved == nil {
		return shared.NextAction{}, errs.Mark(errEmptySnapshot, errs.ErrConflict)
	}

	return shared.ReturnSavedResponse(*saved), nil
}

type pgClaim struct {
	tx      *pgTx
	pgxTx   pgx.Tx
	ownerID uuid.UUID
	key     idempotency.Key

	mu       sync.Mutex
	consumed bool
}

func (c *pgClaim) Tx() shared.Tx {
	return c.tx
}

func (c *pgClaim) consume() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.consumed {
		return false
	}
	c.consumed = true
	return true
}

func (c *pgClaim) SaveResponse(ctx context.Context, resp idempotency.SavedResponse) (idempotency.SavedResponse, error) {
	if !c.consume() {
		return idempotency.SavedResponse{}, errClaimConsumed
	}

	if err := c.tx.Idempotency().CompleteClaim(ctx, c.pgxTx, c.ownerID, c.key, resp); err != nil {
		rollback(ctx, c.pgxTx)
		return idempotency.SavedResponse{}, errs.Mark(err, errs.ErrStorage)
	}

	if err := c.pgxTx.Commit(ctx); err != nil {
		rollback(ctx, c.pgxTx)
		return idempotency.SavedResponse{}, errs.Mark(errs.Mark(err, errTransactionCommit), errs.ErrStorage)
	}

	return resp, nil
}

func (c *pgClaim) Abort(ctx context.Context) {
	if !c.consume() {
		return
	}
	rollback(ctx, c.pgxTx)
}
