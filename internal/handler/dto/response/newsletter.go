package response

import (
	"newsletter-delivery/internal/usecase/commands"

	"github.com/google/uuid"
)

const StatusAccepted = "accepted"

type PublishAcceptedResponse struct {
	IssueID       uuid.UUID `json:"issue_id"`
	Status        string    `json:"status" example:"accepted"`
	DeliveryTasks int64     `json:"delivery_tasks"`
}

func FromPublishOutcome(o commands.PublishOutcome) PublishAcceptedResponse {
	return PublishAcceptedResponse{
		IssueID:       o.IssueID,
		Status:        StatusAccepted,
		DeliveryTasks: o.DeliveryTasks,
	}
}
