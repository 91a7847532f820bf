package database

import (
	"fmt"
	"log"

	"github.com/leaddesk/leaddesk-api/internal/config"
	"github.com/leaddesk/leaddesk-api/internal/domain/entity"
	"github.com/leaddesk/leaddesk-api/pkg/utils"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		// Surfaces unique violations as gorm.ErrDuplicatedKey, which backs
		// the friendly-id/phone race hardening.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.Lead{},
		&entity.Feedback{},
		&entity.Interaction{},
		&entity.ChannelPartner{},
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData creates a first receptionist account when one is
// configured via environment variables. The bootstrap administrator is
// deliberately NOT seeded here: it lives in configuration only.
func SeedDefaultData(db *gorm.DB) error {
	email := viper.GetString("RECEPTIONIST_EMAIL")
	password := viper.GetString("RECEPTIONIST_PASSWORD")
	name := viper.GetString("RECEPTIONIST_NAME")

	if email == "" || password == "" {
		return nil
	}

	var existing entity.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Printf("Receptionist user already exists: %s", email)
		return nil
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash receptionist password: %w", err)
	}

	if name == "" {
		name = "Front Desk"
	}
	firstName := name
	lastName := ""
	for i, c := range name {
		if c == ' ' {
			firstName = name[:i]
			lastName = name[i+1:]
			break
		}
	}

	user := entity.User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  hashed,
		Role:      entity.RoleReceptionist,
	}
	if err := db.Create(&user).Error; err != nil {
		return fmt.Errorf("failed to create receptionist user: %w", err)
	}

	log.Printf("Receptionist user created: %s", email)
	return nil
}
