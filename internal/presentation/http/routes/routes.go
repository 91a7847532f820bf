package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/leaddesk/leaddesk-api/internal/config"
	"github.com/leaddesk/leaddesk-api/internal/domain/entity"
	"github.com/leaddesk/leaddesk-api/internal/domain/repository"
	"github.com/leaddesk/leaddesk-api/internal/presentation/http/handler"
	"github.com/leaddesk/leaddesk-api/internal/presentation/http/middleware"
	"github.com/leaddesk/leaddesk-api/pkg/utils"
)

// Handlers aggregates all HTTP handlers
type Handlers struct {
	Auth           *handler.AuthHandler
	Lead           *handler.LeadHandler
	Admin          *handler.AdminHandler
	ChannelPartner *handler.ChannelPartnerHandler
}

// Deps aggregates the dependencies the route middleware needs
type Deps struct {
	Config          *config.Config
	JWTManager      *utils.JWTManager
	IdempotencyRepo repository.IdempotencyRepository
}

// Setup configures all application routes
func Setup(router *gin.Engine, h *Handlers, deps *Deps) {
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Config.CORS))
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Config.App.Name,
		})
	})

	v1 := router.Group("/api/v1")

	// Public routes
	v1.POST("/auth/login", h.Auth.Login)

	// Authenticated routes
	rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(deps.Config.RateLimit.Requests) / float64(deps.Config.RateLimit.Duration),
		BurstSize:         deps.Config.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          15 * time.Minute,
	})

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWTManager))
	protected.Use(rateLimiter.Middleware())

	protected.GET("/auth/me", h.Auth.Me)

	leads := protected.Group("/leads")
	{
		// Fixed paths are registered before the :friendlyId wildcard
		leads.GET("/recent", h.Lead.RecentLeads)
		leads.GET("/stats", h.Lead.Stats)
		leads.GET("/search", h.Lead.SearchLeads)

		leads.POST("", middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo}), h.Lead.CreateLead)
		leads.GET("/:friendlyId", h.Lead.GetLead)
		leads.POST("/:friendlyId/revisit", h.Lead.Revisit)
		leads.POST("/:friendlyId/feedback", h.Lead.SaveFeedback)
	}

	partners := protected.Group("/channel-partners")
	{
		partners.POST("", h.ChannelPartner.CreateChannelPartner)
		partners.GET("", h.ChannelPartner.ListChannelPartners)
	}

	admin := protected.Group("/admin")
	admin.Use(middleware.RequireRole(entity.RoleAdmin))
	{
		admin.GET("/leads", h.Admin.ListLeads)
		admin.GET("/leads/:friendlyId", h.Admin.GetLeadDetail)
		admin.DELETE("/leads/:friendlyId", h.Admin.DeleteLead)
		admin.POST("/users", h.Admin.CreateUser)
		admin.GET("/users", h.Admin.ListUsers)
	}
}
