package services

import (
	"context"
	"errors"
	"fmt"

	"registry.link/configs/configslog"
	"registry.link/models"
	"registry.link/repositories"

	"go.uber.org/zap"
)

// RegistryServiceError is the registry service's error vocabulary.
type RegistryServiceError string

func (e RegistryServiceError) Error() string { return string(e) }

const (
	// ErrRegistryNotFound covers both a genuinely missing slug and a draft
	// the viewer does not own: drafts must be indistinguishable from
	// missing registries to non-owners.
	ErrRegistryNotFound   RegistryServiceError = "registry not found"
	ErrRegistryLoadFailed RegistryServiceError = "registry could not be loaded"
)

// IRegistryService resolves slugs to renderable registries.
type IRegistryService interface {
	GetRegistryBySlug(ctx context.Context, slug string, viewerUserID uint) (*models.Registry, error)
}

// RegistryService implements IRegistryService.
type RegistryService struct {
	repo repositories.IRegistryRepository
}

// NewRegistryService returns a service over the default repository.
func NewRegistryService() IRegistryService {
	return &RegistryService{repo: repositories.NewRegistryRepository()}
}

// GetRegistryBySlug resolves a slug for the given viewer. Published
// registries are visible to everyone; an unpublished registry is returned
// only to its owner (draft preview). Items arrive in display order from the
// repository. Backend failures surface as ErrRegistryLoadFailed, distinct
// from not-found; neither is retried here.
func (s *RegistryService) GetRegistryBySlug(ctx context.Context, slug string, viewerUserID uint) (*models.Registry, error) {
	registry, err := s.repo.FindPublishedBySlug(ctx, slug)
	if err == nil {
		return registry, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		// A failed published lookup must not fall through to the owner
		// path: a transport error is not evidence the registry is a draft.
		return nil, fmt.Errorf("%w: %v", ErrRegistryLoadFailed, err)
	}

	if viewerUserID == 0 {
		return nil, ErrRegistryNotFound
	}
	registry, err = s.repo.FindBySlugAndOwner(ctx, slug, viewerUserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRegistryNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrRegistryLoadFailed, err)
	}
	configslog.SLog.Debugf("Draft registry served to its owner: %s (user %d)", slug, viewerUserID)
	return registry, nil
}

var _ IRegistryService = (*RegistryService)(nil)

// logUnexpected is shared by services that only want one-line error logs.
func logUnexpected(where string, err error, fields ...zap.Field) {
	configslog.Log.Error(where, append(fields, zap.Error(err))...)
}
