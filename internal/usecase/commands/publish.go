package commands

import (
	"context"
	"log/slog"
	"time"

	"newsletter-delivery/internal/domain/idempotency"
	"newsletter-delivery/internal/domain/newsletter"
	"newsletter-delivery/internal/pkg/clock"
	"newsletter-delivery/internal/pkg/errs"
	"newsletter-delivery/internal/pkg/metrics"
	"newsletter-delivery/internal/pkg/observability"
	"newsletter-delivery/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var ErrRenderResponse = errs.New("failed to render publish response")

// PublishNewsletterParams is the canonical publish request, whatever its wire encoding.
type PublishNewsletterParams struct {
	OwnerID        uuid.UUID
	IdempotencyKey string
	Title          string
	HTMLContent    string
	TextContent    string
}

// PublishOutcome is what a fresh attempt produced, before it is rendered.
type PublishOutcome struct {
	IssueID       uuid.UUID
	DeliveryTasks int64
}

// ResponseRenderer turns an accepted issue into the HTTP response that is saved and replayed.
type ResponseRenderer func(outcome PublishOutcome) (idempotency.SavedResponse, error)

type PublishResult struct {
	Response idempotency.SavedResponse
	Replayed bool
}

type PublishNewsletterCommands interface {
	PublishNewsletter(ctx context.Context, params PublishNewsletterParams, render ResponseRenderer) (*PublishResult, error)
}

type publishUseCaseImpl struct {
	coordinator shared.IdempotencyCoordinator
	clock       clock.Clock
	metrics     *metrics.Metrics
}

func NewPublishNewsletterUseCase(coordinator shared.IdempotencyCoordinator, clk clock.Clock, m *metrics.Metrics) PublishNewsletterCommands {
	return &publishUseCaseImpl{coordinator: coordinator, clock: clk, metrics: m}
}

func (uc *publishUseCaseImpl) PublishNewsletter(ctx context.Context, params PublishNewsletterParams, render ResponseRenderer) (*PublishResult, error) {
	ctx, span := observability.Tracer().Start(ctx, "PublishNewsletter")
	defer span.End()
	span.SetAttributes(attribute.String("owner_id", params.OwnerID.String()))

	start := time.Now()
	defer func() { uc.metrics.PublishDuration.Observe(time.Since(start).Seconds()) }()

	result, err := uc.publish(ctx, params, render)
	uc.metrics.PublishRequests.WithLabelValues(outcomeOf(result, err)).Inc()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Bool("replayed", result.Replayed))
	return result, nil
}

func (uc *publishUseCaseImpl) publish(ctx context.Context, params PublishNewsletterParams, render ResponseRenderer) (*PublishResult, error) {
	key, err := idempotency.NewKey(params.IdempotencyKey)
	if err != nil {
		return nil, errs.WithHint(errs.Mark(err, errs.ErrValidation), err.Error())
	}

	content, err := newsletter.NewContent(params.HTMLContent, params.TextContent)
	if err != nil {
		return nil, errs.WithHint(errs.Mark(err, errs.ErrValidation), err.Error())
	}
	issue, err := newsletter.NewIssue(params.Title, content, uc.clock.Now())
	if err != nil {
		return nil, errs.WithHint(errs.Mark(err, errs.ErrValidation), err.Error())
	}

	next, err := uc.coordinator.TryProcessing(ctx, params.OwnerID, key)
	if err != nil {
		return nil, err
	}
	if next.IsReplay() {
		slog.InfoContext(ctx, "replaying saved response",
			"owner_id", params.OwnerID.String(),
			"idempotency_key", key.String(),
			"status_code", next.Saved.StatusCode)
		return &PublishResult{Response: *next.Saved, Replayed: true}, nil
	}

	claim := next.Claim
	defer claim.Abort(ctx)

	tx := claim.Tx()
	issueID, err := tx.Issues().Insert(ctx, tx.DB(), issue)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorage)
	}

	enqueued, err := tx.Deliveries().Enqueue(ctx, tx.DB(), issueID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorage)
	}

	resp, err := render(PublishOutcome{IssueID: issueID, DeliveryTasks: enqueued})
	if err != nil {
		return nil, errs.Mark(err, ErrRenderResponse)
	}

	saved, err := claim.SaveResponse(ctx, resp)
	if err != nil {
		return nil, err
	}

	uc.metrics.EnqueuedTasks.Add(float64(enqueued))
	slog.InfoContext(ctx, "newsletter issue accepted",
		"owner_id", params.OwnerID.String(),
		"idempotency_key", key.String(),
		"issue_id", issueID.String(),
		"delivery_tasks", enqueued)

	return &PublishResult{Response: saved}, nil
}

func outcomeOf(result *PublishResult, err error) string {
	switch {
	case err == nil && result.Replayed:
		return metrics.OutcomeReplayed
	case err == nil:
		return metrics.OutcomeAccepted
	case errs.Is(err, errs.ErrValidation):
		return metrics.OutcomeValidation
	case errs.Is(err, errs.ErrConflict):
		return metrics.OutcomeConflict
	default:
		return metrics.OutcomeFailed
	}
}
