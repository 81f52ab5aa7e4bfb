package seeders

import (
	"context"
	"errors"

	"registry.link/configs"
	"registry.link/configs/configslog"
	"registry.link/models"
	"registry.link/services"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const demoSlug = "ada-and-alan"

// SeedDemoRegistry creates a demo owner and a published registry with one
// item of every type, so a fresh install has something to show. It runs only
// when APP_SEED_DEMO=true and skips everything once the slug exists.
func SeedDemoRegistry(db *gorm.DB) error {
	if configs.GetEnv("APP_SEED_DEMO", "false") != "true" {
		configslog.SLog.Debug("Demo registry seeding disabled, skipping.")
		return nil
	}

	var existing models.Registry
	result := db.Where("slug = ?", demoSlug).First(&existing)
	if result.Error == nil {
		configslog.SLog.Debugf("Demo registry '%s' already exists, skipping.", demoSlug)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Demo registry lookup failed", zap.Error(result.Error))
		return result.Error
	}

	passwordHash, err := services.HashPassword(configs.GetEnv("APP_SEED_DEMO_PASSWORD", "demo-owner"))
	if err != nil {
		return err
	}
	owner := models.User{
		Name:         "Demo Owner",
		Email:        "owner@registry.link",
		PasswordHash: passwordHash,
		IsEnabled:    true,
	}
	if err := db.Where("email = ?", owner.Email).FirstOrCreate(&owner).Error; err != nil {
		configslog.Log.Error("Demo owner could not be created", zap.Error(err))
		return err
	}

	ctx := models.ContextWithUserID(context.Background(), owner.ID)
	registry := models.Registry{
		Slug:             demoSlug,
		OwnerUserID:      owner.ID,
		Title:            "Ada & Alan",
		Subtitle:         "We are getting married!",
		Description:      "Your presence is the best gift. If you would like to spoil us anyway, here are a few ideas.",
		Theme:            models.ThemeBotanical,
		IsPublished:      true,
		GuestbookEnabled: true,
		Items: []models.RegistryItem{
			{Title: "Espresso Machine", Category: models.CategoryHome, Type: models.ItemTypeFixed, PriceMinor: 45000, Priority: 1},
			{Title: "Honeymoon Fund", Category: models.CategoryHoneymoon, Type: models.ItemTypeCash, PriceMinor: 300000, Priority: 2},
			{Title: "Sailing Course", Category: models.CategoryExperience, Type: models.ItemTypePartial, PriceMinor: 120000, Priority: 3},
			{Title: "Local Animal Shelter", Category: models.CategoryCharity, Type: models.ItemTypeCharity, PriceMinor: 50000, Priority: 4},
		},
	}
	if err := db.WithContext(ctx).Create(&registry).Error; err != nil {
		configslog.Log.Error("Demo registry could not be created", zap.Error(err))
		return err
	}

	configslog.SLog.Infof("Demo registry '%s' seeded with %d items (owner ID %d).",
		demoSlug, len(registry.Items), owner.ID)
	return nil
}
