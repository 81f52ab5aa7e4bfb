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

// IContributionRepository persists guest contributions.
type IContributionRepository interface {
	Create(ctx context.Context, contribution *models.Contribution) error
	FindByReference(ctx context.Context, reference string) (*models.Contribution, error)
	UpdateStatus(ctx context.Context, contributionID uint, status models.ContributionStatus) error
	FindPublicSucceededByRegistry(ctx context.Context, registryID uint, limit int) ([]models.Contribution, error)
}

// ContributionRepository implements IContributionRepository over GORM.
type ContributionRepository struct {
	db *gorm.DB
}

// NewContributionRepository returns a repository bound to the shared DB handle.
func NewContributionRepository() IContributionRepository {
	return &ContributionRepository{db: configs.GetDB()}
}

func (r *ContributionRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Create writes a new contribution row.
func (r *ContributionRepository) Create(ctx context.Context, contribution *models.Contribution) error {
	if contribution == nil || contribution.RegistryID == 0 || contribution.RegistryItemID == 0 {
		return errors.New("contribution is missing its registry or item")
	}
	if err := r.getDB(ctx).Create(contribution).Error; err != nil {
		configslog.Log.Error("ContributionRepository.Create: DB error",
			zap.Uint("registry_id", contribution.RegistryID),
			zap.Uint("item_id", contribution.RegistryItemID),
			zap.Error(err))
		return err
	}
	return nil
}

// FindByReference looks a contribution up by its payment reference.
func (r *ContributionRepository) FindByReference(ctx context.Context, reference string) (*models.Contribution, error) {
	if reference == "" {
		return nil, ErrNotFound
	}
	var contribution models.Contribution
	err := r.getDB(ctx).Where("reference = ?", reference).First(&contribution).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("ContributionRepository.FindByReference: DB error",
			zap.String("reference", reference), zap.Error(err))
		return nil, err
	}
	return &contribution, nil
}

// UpdateStatus marks the outcome of the payment hand-off.
func (r *ContributionRepository) UpdateStatus(ctx context.Context, contributionID uint, status models.ContributionStatus) error {
	if contributionID == 0 {
		return ErrNotFound
	}
	result := r.getDB(ctx).Model(&models.Contribution{}).
		Where("id = ?", contributionID).
		Update("status", status)
	if result.Error != nil {
		configslog.Log.Error("ContributionRepository.UpdateStatus: DB error",
			zap.Uint("id", contributionID), zap.String("status", string(status)), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// FindPublicSucceededByRegistry returns the registry's guestbook entries:
// succeeded, publicly visible contributions, newest first.
func (r *ContributionRepository) FindPublicSucceededByRegistry(ctx context.Context, registryID uint, limit int) ([]models.Contribution, error) {
	if registryID == 0 {
		return nil, ErrNotFound
	}
	if limit <= 0 {
		limit = 50
	}
	var contributions []models.Contribution
	err := r.getDB(ctx).
		Where("registry_id = ? AND status = ? AND is_public = ?",
			registryID, models.ContributionStatusSucceeded, true).
		Order("created_at DESC").
		Limit(limit).
		Find(&contributions).Error
	if err != nil {
		configslog.Log.Error("ContributionRepository.FindPublicSucceededByRegistry: DB error",
			zap.Uint("registry_id", registryID), zap.Error(err))
		return nil, err
	}
	return contributions, nil
}

var _ IContributionRepository = (*ContributionRepository)(nil)
