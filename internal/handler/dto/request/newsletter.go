package request

import (
	"newsletter-delivery/internal/usecase/commands"

	"github.com/google/uuid"
)

// PublishSubmission is either encoding the dashboard or an API client may post.
type PublishSubmission interface {
	ToParams(ownerID uuid.UUID, fallbackKey string) commands.PublishNewsletterParams
}

// PublishNewsletterForm is the application/x-www-form-urlencoded submission.
type PublishNewsletterForm struct {
	Title          string `form:"title"`
	HTMLContent    string `form:"html_content"`
	TextContent    string `form:"text_content"`
	IdempotencyKey string `form:"idempotency_key"`
}

func (f PublishNewsletterForm) ToParams(ownerID uuid.UUID, fallbackKey string) commands.PublishNewsletterParams {
	return commands.PublishNewsletterParams{
		OwnerID:        ownerID,
		IdempotencyKey: keyOr(f.IdempotencyKey, fallbackKey),
		Title:          f.Title,
		HTMLContent:    f.HTMLContent,
		TextContent:    f.TextContent,
	}
}

type NewsletterContent struct {
	HTML string `json:"html"`
	Text string `json:"text"`
}

// PublishNewsletterRequest is the application/json submission.
type PublishNewsletterRequest struct {
	Title          string            `json:"title" example:"October issue"`
	Content        NewsletterContent `json:"content"`
	IdempotencyKey string            `json:"idempotency_key" example:"2026-10-issue"`
}

func (r PublishNewsletterRequest) ToParams(ownerID uuid.UUID, fallbackKey string) commands.PublishNewsletterParams {
	return commands.PublishNewsletterParams{
		OwnerID:        ownerID,
		IdempotencyKey: keyOr(r.IdempotencyKey, fallbackKey),
		Title:          r.Title,
		HTMLContent:    r.Content.HTML,
		TextContent:    r.Content.Text,
	}
}

func keyOr(key, fallback string) string {
	if key != "" {
		return key
	}
	return fallback
}
