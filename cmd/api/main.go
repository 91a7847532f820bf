package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/leaddesk/leaddesk-api/internal/application/service"
	"github.com/leaddesk/leaddesk-api/internal/config"
	"github.com/leaddesk/leaddesk-api/internal/infrastructure/database"
	"github.com/leaddesk/leaddesk-api/internal/infrastructure/repository"
	"github.com/leaddesk/leaddesk-api/internal/presentation/http/handler"
	"github.com/leaddesk/leaddesk-api/internal/presentation/http/routes"
	"github.com/leaddesk/leaddesk-api/pkg/utils"
)

func main() {
	cfg := config.Load()

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := database.SeedDefaultData(db); err != nil {
		log.Fatalf("Failed to seed default data: %v", err)
	}

	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	leadRepo := repository.NewLeadRepository(db)
	partnerRepo := repository.NewChannelPartnerRepository(db)
	userRepo := repository.NewUserRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	leadService := service.NewLeadService(leadRepo)
	partnerService := service.NewChannelPartnerService(partnerRepo)
	authService := service.NewAuthService(userRepo, jwtManager, cfg.Admin)

	handlers := &routes.Handlers{
		Auth:           handler.NewAuthHandler(authService),
		Lead:           handler.NewLeadHandler(leadService),
		Admin:          handler.NewAdminHandler(leadService, authService),
		ChannelPartner: handler.NewChannelPartnerHandler(partnerService),
	}

	router := gin.New()
	routes.Setup(router, handlers, &routes.Deps{
		Config:          cfg,
		JWTManager:      jwtManager,
		IdempotencyRepo: idempotencyRepo,
	})

	log.Printf("Starting %s on port %s", cfg.App.Name, cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
