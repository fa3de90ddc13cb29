package repository

import (
	"context"
	"time"

	"newsletter-delivery/internal/infra"
	"newsletter-delivery/internal/infra/repository/converter"
	sqlc "newsletter-delivery/internal/infra/sqlc/generated"
	"newsletter-delivery/internal/pkg/pgconv"
	"newsletter-delivery/internal/usecase/shared"

	"github.com/google/uuid"
)

type DeliveryQueueWriteQueries interface {
	EnqueueDeliveryTasks(ctx context.Context, db sqlc.DBTX, newsletterIssueID uuid.UUID) (int64, error)
	DequeueDeliveryTask(ctx context.Context, db sqlc.DBTX) (sqlc.IssueDeliveryQueue, error)
	DeleteDeliveryTask(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteDeliveryTaskParams) (int64, error)
	RescheduleDeliveryTask(ctx context.Context, db sqlc.DBTX, arg sqlc.RescheduleDeliveryTaskParams) (int64, error)
	CountDeliveryTasks(ctx context.Context, db sqlc.DBTX) (int64, error)
}

type DeliveryQueueRepository struct {
	queries DeliveryQueueWriteQueries
}

func NewDeliveryQueueRepository(queries DeliveryQueueWriteQueries) *DeliveryQueueRepository {
	return &DeliveryQueueRepository{queries: queries}
}

// Enqueue relies on the (issue, email) primary key to drop duplicates at insert time.
func (r *DeliveryQueueRepository) Enqueue(ctx context.Context, tx sqlc.DBTX, issueID uuid.UUID) (int64, error) {
	n, err := r.queries.EnqueueDeliveryTasks(ctx, tx, issueID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to enqueue delivery tasks", err)
	}
	return n, nil
}

// Dequeue returns a NOT_FOUND repository error when no task is due.
func (r *DeliveryQueueRepository) Dequeue(ctx context.Context, tx sqlc.DBTX) (*shared.DeliveryTask, error) {
	row, err := r.queries.DequeueDeliveryTask(ctx, tx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to dequeue delivery task", err)
	}

	task, err := converter.DeliveryTaskFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map delivery task", err)
	}
	return &task, nil
}

func (r *DeliveryQueueRepository) Delete(ctx context.Context, tx sqlc.DBTX, task shared.DeliveryTask) error {
	n, err := r.queries.DeleteDeliveryTask(ctx, tx, sqlc.DeleteDeliveryTaskParams{
		NewsletterIssueID: task.NewsletterIssueID,
		SubscriberEmail:   task.SubscriberEmail,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to delete delivery task", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "delivery task not found")
	}
	return nil
}

func (r *DeliveryQueueRepository) Reschedule(ctx context.Context, tx sqlc.DBTX, task shared.DeliveryTask, executeAfter time.Time) error {
	n, err := r.queries.RescheduleDeliveryTask(ctx, tx, sqlc.RescheduleDeliveryTaskParams{
		NewsletterIssueID: task.NewsletterIssueID,
		SubscriberEmail:   task.SubscriberEmail,
		ExecuteAfter:      pgconv.TimeToPgtype(executeAfter),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to reschedule delivery task", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "delivery task not found")
	}
	return nil
}

func (r *DeliveryQueueRepository) Count(ctx context.Context, db sqlc.DBTX) (int64, error) {
	n, err := r.queries.CountDeliveryTasks(ctx, db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count delivery tasks", err)
	}
	return n, nil
}
