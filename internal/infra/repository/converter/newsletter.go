package converter

import (
	"time"

	"newsletter-delivery/internal/domain/newsletter"
	sqlc "newsletter-delivery/internal/infra/sqlc/generated"
	"newsletter-delivery/internal/pkg/pgconv"
	"newsletter-delivery/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jinzhu/copier"
)

func IssueToInsertParams(issue *newsletter.Issue) sqlc.InsertNewsletterIssueParams {
	return sqlc.InsertNewsletterIssueParams{
		NewsletterIssueID: issue.ID(),
		Title:             issue.Title(),
		TextContent:       issue.Content().Text(),
		HtmlContent:       issue.Content().HTML(),
		PublishedAt:       pgconv.TimeToPgtype(issue.PublishedAt()),
	}
}

func IssueFromRow(row sqlc.NewsletterIssues) *newsletter.Issue {
	return newsletter.ReconstructIssue(
		row.NewsletterIssueID,
		row.Title,
		row.HtmlContent,
		row.TextContent,
		pgconv.TimeFromPgtype(row.PublishedAt),
	)
}

var timestamptzConverter = copier.TypeConverter{
	SrcType: pgtype.Timestamptz{},
	DstType: time.Time{},
	Fn: func(src any) (any, error) {
		ts, ok := src.(pgtype.Timestamptz)
		if !ok || !ts.Valid {
			return time.Time{}, nil
		}
		return ts.Time, nil
	},
}

func DeliveryTaskFromRow(row sqlc.IssueDeliveryQueue) (shared.DeliveryTask, error) {
	var task shared.DeliveryTask
	err := copier.CopyWithOption(&task, &row, copier.Option{
		Converters: []copier.TypeConverter{timestamptzConverter},
	})
	return task, err
}
