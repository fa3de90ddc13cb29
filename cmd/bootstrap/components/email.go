package components

import (
	"newsletter-delivery/internal/infra/email"
	"newsletter-delivery/internal/pkg/config"
	"newsletter-delivery/internal/usecase/shared"

	"go.uber.org/fx"
)

var EmailModule = fx.Module("email",
	fx.Provide(
		NewEmailSender,
	),
)

func NewEmailSender(cfg config.Config) shared.EmailSender {
	return email.NewClient(cfg.Email)
}
