package uow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"newsletter-delivery/internal/infra/repository"
	sqlc "newsletter-delivery/internal/infra/sqlc/generated"
	"newsletter-delivery/internal/pkg/backoff"
	"newsletter-delivery/internal/pkg/errs"
	"newsletter-delivery/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

const (
	maxTxRetries  = 3
	txRetryBase   = 100 * time.Millisecond
	txRetryCeil   = 2 * time.Second
	jitterDivisor = 5
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; attempt <= maxTxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := newPgTx(pgxTx, u.q)

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		rollback(ctx, pgxTx)

		if !shouldRetry(err, attempt) {
			if attempt == maxTxRetries && isRetryableError(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := backoff.Exponential(txRetryBase, attempt, txRetryCeil)
		waitTime += backoff.ProportionalJitter(waitTime, jitterDivisor)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		if err := backoff.Sleep(ctx, waitTime); err != nil {
			return err
		}
	}

	return errMaxRetriesExceeded
}

func rollback(ctx context.Context, pgxTx pgx.Tx) {
	if err := pgxTx.Rollback(context.WithoutCancel(ctx)); err != nil {
		if !errors.Is(err, pgx.ErrTxClosed) {
			slog.Warn("rollback failed", "error", err.Error())
		}
	}
}

func shouldRetry(err error, attempt int) bool {
	return isRetryableError(err) && attempt < maxTxRetries
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	q    *sqlc.Queries

	// Lazy-initialized repositories
	issueRepo       shared.NewsletterIssueRepository
	deliveryRepo    shared.DeliveryQueueRepository
	idempotencyRepo shared.IdempotencyRepository
}

func newPgTx(dbtx sqlc.DBTX, q *sqlc.Queries) *pgTx {
	return &pgTx{dbtx: dbtx, q: q}
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Issues() shared.NewsletterIssueRepository {
	if t.issueRepo == nil {
		t.issueRepo = repository.NewNewsletterIssueRepository(t.q)
	}
	return t.issueRepo
}

func (t *pgTx) Deliveries() shared.DeliveryQueueRepository {
	if t.deliveryRepo == nil {
		t.deliveryRepo = repository.NewDeliveryQueueRepository(t.q)
	}
	return t.deliveryRepo
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotencyRepo == nil {
		t.idempotencyRepo = repository.NewIdempotencyRepository(t.q)
	}
	return t.idempotencyRepo
}
