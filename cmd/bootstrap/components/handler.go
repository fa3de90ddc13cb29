package components

import (
	"newsletter-delivery/internal/handler"
	"newsletter-delivery/internal/handler/api"
	"newsletter-delivery/internal/handler/middleware"
	"newsletter-delivery/internal/pkg/config"
	"newsletter-delivery/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewNewsletterHandler,
		middleware.NewAuthMiddleware,
		NewRateLimiter,
	),
	fx.Invoke(RegisterRoutes),
)

func NewRateLimiter(cfg config.Config) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.RateLimit)
}

func RegisterRoutes(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	m *metrics.Metrics,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter *middleware.RateLimiter,
	newsletterHandler *api.NewsletterHandler,
) {
	handler.NewRouter(engine, handler.RouterDeps{
		Config:            cfg,
		Logger:            logger,
		Metrics:           m,
		AuthMiddleware:    authMiddleware,
		RateLimiter:       rateLimiter,
		NewsletterHandler: newsletterHandler,
	})
}
