package db

import (
	"context"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/allanebarua/Tenant-Management-System/internal/auth"
	"github.com/allanebarua/Tenant-Management-System/internal/config"
	"github.com/allanebarua/Tenant-Management-System/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	if err := Bootstrap(db, cfg); err != nil {
		log.Fatalf("failed to bootstrap admin: %v", err)
	}

	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Contact{},
		&models.AuthToken{},
		&models.AuditLog{},
	)
}

// Bootstrap seeds the first admin account from config when the users
// table is empty. Every endpoint requires authentication, so without
// this there would be no way to mint the first account.
func Bootstrap(db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := models.User{
		Username: cfg.AdminUsername,
		Password: hashed,
		UserType: models.UserTypeAdmin,
		IsActive: true,
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}
		token := models.AuthToken{
			Key:    auth.NewTokenKey(),
			UserID: admin.ID,
		}
		if err := tx.Create(&token).Error; err != nil {
			return err
		}
		log.Printf("seeded admin user %q", admin.Username)
		return nil
	})
}
