package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"newsletter-delivery/internal/domain/user"
	"newsletter-delivery/internal/handler/api"
	"newsletter-delivery/internal/handler/middleware"
	"newsletter-delivery/internal/pkg/config"
	"newsletter-delivery/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type RouterDeps struct {
	Config            config.Config
	Logger            *middleware.Logger
	Metrics           *metrics.Metrics
	AuthMiddleware    *middleware.AuthMiddleware
	RateLimiter       *middleware.RateLimiter
	NewsletterHandler *api.NewsletterHandler
}

func NewRouter(engine *gin.Engine, deps RouterDeps) {
	setupMiddleware(engine, deps)
	setupRoutes(engine, deps)
}

func setupMiddleware(engine *gin.Engine, deps RouterDeps) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	if deps.Config.OTEL.Enabled {
		engine.Use(otelgin.Middleware(deps.Config.OTEL.ServiceName))
	}
	engine.Use(middleware.Metrics(deps.Metrics))
	engine.Use(middleware.NewCORSMiddleware(deps.Config.CORS))
	engine.Use(deps.Logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, deps RouterDeps) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	admin := engine.Group("/admin")
	admin.Use(
		deps.AuthMiddleware.RequireAuth(),
		deps.AuthMiddleware.RequireRoleAtLeast(user.RoleOperator),
	)
	{
		newsletters := admin.Group("/newsletters")
		newsletters.Use(deps.RateLimiter.Handler())
		addRoutes(newsletters, []route{
			{Method: http.MethodPost, Path: "", Handler: deps.NewsletterHandler.PublishNewsletter},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
