package repositories

import (
	"context"
	"errors"

	"registry.link/configs"
	"registry.link/configs/configslog"
	"registry.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IRegistryRepository is the registry lookup and update boundary.
type IRegistryRepository interface {
	FindPublishedBySlug(ctx context.Context, slug string) (*models.Registry, error)
	FindBySlugAndOwner(ctx context.Context, slug string, ownerUserID uint) (*models.Registry, error)
	FindByID(ctx context.Context, id uint) (*models.Registry, error)
	UpdateFields(ctx context.Context, registryID uint, fields map[string]interface{}, updatedBy uint) error
}

// RegistryRepository implements IRegistryRepository over GORM.
type RegistryRepository struct {
	db *gorm.DB
}

// NewRegistryRepository returns a repository bound to the shared DB handle.
func NewRegistryRepository() IRegistryRepository {
	return &RegistryRepository{db: configs.GetDB()}
}

func (r *RegistryRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// preloadItems orders items the way every caller displays them.
func preloadItems(db *gorm.DB) *gorm.DB {
	return db.Preload("Items", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("registry_items.priority ASC, registry_items.id ASC")
	})
}

// FindPublishedBySlug returns the published registry with the given slug and
// its items in display order. Drafts are invisible here.
func (r *RegistryRepository) FindPublishedBySlug(ctx context.Context, slug string) (*models.Registry, error) {
	if slug == "" {
		return nil, ErrNotFound
	}
	var registry models.Registry
	err := preloadItems(r.getDB(ctx)).
		Where("slug = ? AND is_published = ?", slug, true).
		First(&registry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("RegistryRepository.FindPublishedBySlug: DB error",
			zap.String("slug", slug), zap.Error(err))
		return nil, err
	}
	return &registry, nil
}

// FindBySlugAndOwner returns the registry with the given slug regardless of
// publication state, but only when owned by the given user. This backs the
// draft-preview fallback and the inline editor's ownership check.
func (r *RegistryRepository) FindBySlugAndOwner(ctx context.Context, slug string, ownerUserID uint) (*models.Registry, error) {
	if slug == "" || ownerUserID == 0 {
		return nil, ErrNotFound
	}
	var registry models.Registry
	err := preloadItems(r.getDB(ctx)).
		Where("slug = ? AND owner_user_id = ?", slug, ownerUserID).
		First(&registry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("RegistryRepository.FindBySlugAndOwner: DB error",
			zap.String("slug", slug), zap.Uint("owner_user_id", ownerUserID), zap.Error(err))
		return nil, err
	}
	return &registry, nil
}

// FindByID returns a registry by primary key with items preloaded.
func (r *RegistryRepository) FindByID(ctx context.Context, id uint) (*models.Registry, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var registry models.Registry
	err := preloadItems(r.getDB(ctx)).First(&registry, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("RegistryRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &registry, nil
}

// UpdateFields applies a partial column update to one registry.
func (r *RegistryRepository) UpdateFields(ctx context.Context, registryID uint, fields map[string]interface{}, updatedBy uint) error {
	if registryID == 0 || len(fields) == 0 {
		return errors.New("invalid registry field update")
	}
	if updatedBy != 0 {
		fields["updated_by"] = updatedBy
	}
	result := r.getDB(ctx).Model(&models.Registry{}).
		Where("id = ?", registryID).
		Updates(fields)
	if result.Error != nil {
		configslog.Log.Error("RegistryRepository.UpdateFields: DB error",
			zap.Uint("registry_id", registryID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ IRegistryRepository = (*RegistryRepository)(nil)
