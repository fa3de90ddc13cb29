package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"newsletter-delivery/internal/domain/idempotency"
	"newsletter-delivery/internal/infra"
	sqlc "newsletter-delivery/internal/infra/sqlc/generated"
	"newsletter-delivery/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type IdempotencyWriteQueries interface {
	SetLocalLockTimeout(ctx context.Context, db sqlc.DBTX, timeout string) error
	ClaimIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimIdempotencyKeyParams) (int64, error)
	GetSavedResponse(ctx context.Context, db sqlc.DBTX, arg sqlc.GetSavedResponseParams) (sqlc.GetSavedResponseRow, error)
	SaveIdempotentResponse(ctx context.Context, db sqlc.DBTX, arg sqlc.SaveIdempotentResponseParams) (int64, error)
	DeleteIdempotencyKeysBefore(ctx context.Context, db sqlc.DBTX, createdAt pgtype.Timestamptz) (int64, error)
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries) *IdempotencyRepository {
	return &IdempotencyRepository{queries: queries}
}

// SetLockTimeout bounds how long statements in tx wait on a conflicting row lock.
func (r *IdempotencyRepository) SetLockTimeout(ctx context.Context, tx sqlc.DBTX, timeout time.Duration) error {
	ms := timeout.Milliseconds()
	if ms < 1 {
		ms = 1
	}
	if err := r.queries.SetLocalLockTimeout(ctx, tx, fmt.Sprintf("%dms", ms)); err != nil {
		return infra.WrapRepoErr("failed to set lock timeout", err)
	}
	return nil
}

func (r *IdempotencyRepository) InsertClaim(ctx context.Context, tx sqlc.DBTX, ownerID uuid.UUID, key idempotency.Key) (bool, error) {
	n, err := r.queries.ClaimIdempotencyKey(ctx, tx, sqlc.ClaimIdempotencyKeyParams{
		UserID:         ownerID,
		IdempotencyKey: key.String(),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert idempotency claim", err)
	}
	return n == 1, nil
}

func (r *IdempotencyRepository) FetchSavedResponse(ctx context.Context, tx sqlc.DBTX, ownerID uuid.UUID, key idempotency.Key) (*idempotency.SavedResponse, error) {
	row, err := r.queries.GetSavedResponse(ctx, tx, sqlc.GetSavedResponseParams{
		UserID:         ownerID,
		IdempotencyKey: key.String(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch saved response", err)
	}

	if !row.ResponseStatusCode.Valid {
		return nil, nil
	}

	var headers []idempotency.Header
	if len(row.ResponseHeaders) > 0 {
		if err := json.Unmarshal(row.ResponseHeaders, &headers); err != nil {
			return nil, infra.WrapRepoErr("failed to decode saved response headers", err)
		}
	}

	resp, err := idempotency.NewSavedResponse(int(row.ResponseStatusCode.Int16), headers, row.ResponseBody)
	if err != nil {
		return nil, infra.WrapRepoErr("saved response is corrupted", err)
	}
	return &resp, nil
}

func (r *IdempotencyRepository) CompleteClaim(ctx context.Context, tx sqlc.DBTX, ownerID uuid.UUID, key idempotency.Key, resp idempotency.SavedResponse) error {
	headers := resp.Headers
	if headers == nil {
		headers = []idempotency.Header{}
	}
	encoded, err := json.Marshal(headers)
	if err != nil {
		return infra.WrapRepoErr("failed to encode response headers", err)
	}

	body := resp.Body
	if body == nil {
		body = []byte{}
	}

	n, err := r.queries.SaveIdempotentResponse(ctx, tx, sqlc.SaveIdempotentResponseParams{
		UserID:             ownerID,
		IdempotencyKey:     key.String(),
		ResponseStatusCode: pgconv.IntToInt2(resp.StatusCode),
		ResponseHeaders:    encoded,
		ResponseBody:       body,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency claim", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "no in-progress claim to complete")
	}
	return nil
}

// DeleteCompletedBefore removes replayable records older than cutoff. Claims still in progress are kept.
func (r *IdempotencyRepository) DeleteCompletedBefore(ctx context.Context, db sqlc.DBTX, cutoff time.Time) (int64, error) {
	n, err := r.queries.DeleteIdempotencyKeysBefore(ctx, db, pgconv.TimeToPgtype(cutoff))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}
	return n, nil
}
