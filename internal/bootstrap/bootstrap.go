package bootstrap

import (
	"errors"
	"fmt"
	"log"

	"gudang/internal/config"
	"gudang/internal/models"
	"gudang/internal/repositories"
	"gudang/internal/services"

	"gorm.io/gorm"
)

// Run migrates the schema and ensures the default admin account exists. It
// is idempotent and must be invoked once before the server starts serving;
// nothing else creates tables or accounts implicitly.
func Run(db *gorm.DB, cfg config.Config, hasher services.PasswordHasher) error {
	if err := db.AutoMigrate(&models.User{}, &models.Product{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	userRepo := repositories.NewGORMUserRepository(db)

	_, err := userRepo.GetByEmail(cfg.AdminEmail)
	if err == nil {
		log.Printf("Admin user already exists: %s", cfg.AdminEmail)
		return nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}

	digest, err := hasher.Hash(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Name:     cfg.AdminName,
		Phone:    "0000000000",
		Email:    cfg.AdminEmail,
		Password: digest,
		Role:     models.RoleAdmin,
		Status:   models.UserActive,
	}
	if err := userRepo.Create(admin); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Printf("Default admin user created: %s", cfg.AdminEmail)
	return nil
}
