package migrations

import (
	"registry.link/configs/configslog"
	"registry.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateRegistriesTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating registries & registry_items tables...")
	if err := db.AutoMigrate(&models.Registry{}, &models.RegistryItem{}); err != nil {
		configslog.Log.Error("Failed to migrate registries & registry_items tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Registries & registry_items tables migrated successfully")
	return nil
}
