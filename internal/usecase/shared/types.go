package shared

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryTask is one pending (issue, subscriber) send.
type DeliveryTask struct {
	NewsletterIssueID uuid.UUID
	SubscriberEmail   string
	NRetries          int32
	ExecuteAfter      time.Time
}

type EmailMessage struct {
	Recipient string
	Subject   string
	HTMLBody  string
	TextBody  string
}
