package repository

import (
	"context"

	"newsletter-delivery/internal/domain/newsletter"
	"newsletter-delivery/internal/infra"
	"newsletter-delivery/internal/infra/repository/converter"
	sqlc "newsletter-delivery/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type NewsletterIssueWriteQueries interface {
	InsertNewsletterIssue(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertNewsletterIssueParams) error
	GetNewsletterIssue(ctx context.Context, db sqlc.DBTX, newsletterIssueID uuid.UUID) (sqlc.NewsletterIssues, error)
}

type NewsletterIssueRepository struct {
	queries NewsletterIssueWriteQueries
}

func NewNewsletterIssueRepository(queries NewsletterIssueWriteQueries) *NewsletterIssueRepository {
	return &NewsletterIssueRepository{queries: queries}
}

func (r *NewsletterIssueRepository) Insert(ctx context.Context, tx sqlc.DBTX, issue *newsletter.Issue) (uuid.UUID, error) {
	if err := r.queries.InsertNewsletterIssue(ctx, tx, converter.IssueToInsertParams(issue)); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert newsletter issue", err)
	}
	return issue.ID(), nil
}

func (r *NewsletterIssueRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*newsletter.Issue, error) {
	row, err := r.queries.GetNewsletterIssue(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get newsletter issue", err)
	}
	return converter.IssueFromRow(row), nil
}
