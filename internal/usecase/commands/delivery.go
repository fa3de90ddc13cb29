package commands

import (
	"context"
	"log/slog"

	"newsletter-delivery/internal/domain/newsletter"
	"newsletter-delivery/internal/infra"
	"newsletter-delivery/internal/pkg/backoff"
	"newsletter-delivery/internal/pkg/clock"
	"newsletter-delivery/internal/pkg/config"
	"newsletter-delivery/internal/pkg/errs"
	"newsletter-delivery/internal/pkg/metrics"
	"newsletter-delivery/internal/pkg/observability"
	"newsletter-delivery/internal/usecase/shared"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type ExecutionOutcome int

const (
	// The task was delivered and removed from the queue.
	TaskCompleted ExecutionOutcome = iota
	// Nothing was due.
	EmptyQueue
	// Transient failure; the task stays queued with a later execute_after.
	TaskRetried
	// Poison or exhausted task, removed without a successful send.
	TaskDropped
)

func (o ExecutionOutcome) String() string {
	switch o {
	case TaskCompleted:
		return "completed"
	case EmptyQueue:
		return "empty_queue"
	case TaskRetried:
		return "retried"
	case TaskDropped:
		return "dropped"
	default:
		return "unknown"
	}
}

type DeliveryCommands interface {
	TryExecuteTask(ctx context.Context) (ExecutionOutcome, error)
}

type deliveryUseCaseImpl struct {
	uow     shared.UnitOfWork
	sender  shared.EmailSender
	clock   clock.Clock
	cfg     config.DeliveryConfig
	metrics *metrics.Metrics
}

func NewDeliveryUseCase(uow shared.UnitOfWork, sender shared.EmailSender, clk clock.Clock, cfg config.DeliveryConfig, m *metrics.Metrics) DeliveryCommands {
	return &deliveryUseCaseImpl{uow: uow, sender: sender, clock: clk, cfg: cfg, metrics: m}
}

// TryExecuteTask claims at most one due task and drives it to completion, retry or removal.
func (uc *deliveryUseCaseImpl) TryExecuteTask(ctx context.Context) (ExecutionOutcome, error) {
	ctx, span := observability.Tracer().Start(ctx, "TryExecuteTask")
	defer span.End()

	outcome := EmptyQueue
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		task, err := tx.Deliveries().Dequeue(ctx, tx.DB())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				outcome = EmptyQueue
				return nil
			}
			return err
		}
		span.SetAttributes(
			attribute.String("issue_id", task.NewsletterIssueID.String()),
			attribute.Int("n_retries", int(task.NRetries)),
		)

		outcome, err = uc.execute(ctx, tx, *task)
		return err
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return EmptyQueue, err
	}

	span.SetAttributes(attribute.String("outcome", outcome.String()))
	switch outcome {
	case TaskCompleted:
		uc.metrics.DeliveryTasks.WithLabelValues(metrics.DeliverySent).Inc()
	case TaskRetried:
		uc.metrics.DeliveryTasks.WithLabelValues(metrics.DeliveryRetried).Inc()
	case TaskDropped:
		uc.metrics.DeliveryTasks.WithLabelValues(metrics.DeliveryDropped).Inc()
	}
	return outcome, nil
}

func (uc *deliveryUseCaseImpl) execute(ctx context.Context, tx shared.Tx, task shared.DeliveryTask) (ExecutionOutcome, error) {
	email, err := newsletter.NewSubscriberEmail(task.SubscriberEmail)
	if err != nil {
		slog.WarnContext(ctx, "skipping a confirmed subscriber: stored contact details are invalid",
			"issue_id", task.NewsletterIssueID.String(),
			"error", err.Error())
		return TaskDropped, tx.Deliveries().Delete(ctx, tx.DB(), task)
	}

	issue, err := tx.Issues().FindByID(ctx, tx.DB(), task.NewsletterIssueID)
	if err != nil {
		return EmptyQueue, err
	}

	sendErr := uc.sender.Send(ctx, shared.EmailMessage{
		Recipient: email.String(),
		Subject:   issue.Title(),
		HTMLBody:  issue.Content().HTML(),
		TextBody:  issue.Content().Text(),
	})
	if sendErr == nil {
		return TaskCompleted, tx.Deliveries().Delete(ctx, tx.DB(), task)
	}

	if errs.Is(sendErr, errs.ErrDeliveryRejected) {
		slog.ErrorContext(ctx, "failed to deliver issue to a confirmed subscriber, dropping task",
			"issue_id", task.NewsletterIssueID.String(),
			"error", sendErr.Error())
		return TaskDropped, tx.Deliveries().Delete(ctx, tx.DB(), task)
	}

	if task.NRetries+1 >= uc.cfg.MaxRetries {
		slog.ErrorContext(ctx, "giving up on delivery task after max retries",
			"issue_id", task.NewsletterIssueID.String(),
			"n_retries", task.NRetries+1,
			"error", sendErr.Error())
		return TaskDropped, tx.Deliveries().Delete(ctx, tx.DB(), task)
	}

	wait := backoff.FullJitter(backoff.Exponential(uc.cfg.RetryBase, int(task.NRetries), uc.cfg.RetryMax))
	slog.WarnContext(ctx, "delivery failed, rescheduling",
		"issue_id", task.NewsletterIssueID.String(),
		"n_retries", task.NRetries+1,
		"wait_ms", wait.Milliseconds(),
		"error", sendErr.Error())
	return TaskRetried, tx.Deliveries().Reschedule(ctx, tx.DB(), task, uc.clock.Now().Add(wait))
}
