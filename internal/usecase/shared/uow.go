package shared

import (
	"context"
	"time"

	"newsletter-delivery/internal/domain/idempotency"
	"newsletter-delivery/internal/domain/newsletter"
	sqlc "newsletter-delivery/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Issues() NewsletterIssueRepository
	Deliveries() DeliveryQueueRepository
	Idempotency() IdempotencyRepository
	DB() sqlc.DBTX
}

type NewsletterIssueRepository interface {
	Insert(ctx context.Context, tx sqlc.DBTX, issue *newsletter.Issue) (uuid.UUID, error)
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*newsletter.Issue, error)
}

type DeliveryQueueRepository interface {
	// Enqueue snapshots the confirmed subscribers into one task each and returns how many were queued.
	Enqueue(ctx context.Context, tx sqlc.DBTX, issueID uuid.UUID) (int64, error)
	// Dequeue locks one due task, skipping rows held by other workers.
	Dequeue(ctx context.Context, tx sqlc.DBTX) (*DeliveryTask, error)
	Delete(ctx context.Context, tx sqlc.DBTX, task DeliveryTask) error
	Reschedule(ctx context.Context, tx sqlc.DBTX, task DeliveryTask, executeAfter time.Time) error
	Count(ctx context.Context, db sqlc.DBTX) (int64, error)
}

type IdempotencyRepository interface {
	// InsertClaim reports false when a record for (owner, key) already exists.
	InsertClaim(ctx context.Context, tx sqlc.DBTX, ownerID uuid.UUID, key idempotency.Key) (bool, error)
	// FetchSavedResponse returns nil while the record is still in progress.
	FetchSavedResponse(ctx context.Context, tx sqlc.DBTX, ownerID uuid.UUID, key idempotency.Key) (*idempotency.SavedResponse, error)
	CompleteClaim(ctx context.Context, tx sqlc.DBTX, ownerID uuid.UUID, key idempotency.Key, resp idempotency.SavedResponse) error
	SetLockTimeout(ctx context.Context, tx sqlc.DBTX, timeout time.Duration) error
	DeleteCompletedBefore(ctx context.Context, db sqlc.DBTX, cutoff time.Time) (int64, error)
}

// IdempotencyCoordinator implements claim-or-replay for one (owner, key).
type IdempotencyCoordinator interface {
	TryProcessing(ctx context.Context, ownerID uuid.UUID, key idempotency.Key) (NextAction, error)
}

// NextAction holds exactly one of Claim or Saved.
type NextAction struct {
	Claim Claim
	Saved *idempotency.SavedResponse
}

func StartProcessing(claim Claim) NextAction {
	return NextAction{Claim: claim}
}

func ReturnSavedResponse(resp idempotency.SavedResponse) NextAction {
	return NextAction{Saved: &resp}
}

func (a NextAction) IsReplay() bool {
	return a.Saved != nil
}

// Claim is an open transaction that owns (owner, key). Every path out of the
// claimed state must end in exactly one SaveResponse or Abort.
type Claim interface {
	Tx() Tx
	// SaveResponse stores the snapshot and commits everything staged on Tx.
	SaveResponse(ctx context.Context, resp idempotency.SavedResponse) (idempotency.SavedResponse, error)
	// Abort rolls back. It is a no-op once the claim has been consumed.
	Abort(ctx context.Context)
}

type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}
