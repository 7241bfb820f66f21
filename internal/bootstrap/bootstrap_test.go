package bootstrap_test

import (
	"testing"

	"gudang/internal/bootstrap"
	"gudang/internal/config"
	"gudang/internal/models"
	"gudang/internal/repositories"
	"gudang/internal/services"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestRunIsIdempotent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:bootstrap_test?mode=memory&cache=shared"), &gorm.Config{})
	assert.NoError(t, err)

	cfg := config.Config{
		AdminEmail:    "admin@example.com",
		AdminPassword: "admin123",
		AdminName:     "Administrator",
	}
	hasher := services.NewBcryptHasher()

	assert.NoError(t, bootstrap.Run(db, cfg, hasher))

	userRepo := repositories.NewGORMUserRepository(db)
	admin, err := userRepo.GetByEmail(cfg.AdminEmail)
	assert.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.Equal(t, models.UserActive, admin.Status)
	assert.True(t, hasher.Verify(cfg.AdminPassword, admin.Password))

	// A second run creates nothing.
	assert.NoError(t, bootstrap.Run(db, cfg, hasher))

	var count int64
	assert.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
