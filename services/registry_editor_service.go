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

// RegistryEditorServiceError is the inline editor's error vocabulary.
type RegistryEditorServiceError string

func (e RegistryEditorServiceError) Error() string { return string(e) }

const (
	ErrRegistryForbidden    RegistryEditorServiceError = "you do not own this registry"
	ErrRegistryUpdateFailed RegistryEditorServiceError = "registry could not be updated"
	ErrNoEditableFields     RegistryEditorServiceError = "no editable fields in update"
)

// IRegistryEditorService applies inline-edit commits from the owner preview.
type IRegistryEditorService interface {
	UpdateRegistryFields(ctx context.Context, slug string, ownerUserID uint, fields map[models.EditableField]string) error
}

// RegistryEditorService implements IRegistryEditorService.
type RegistryEditorService struct {
	repo repositories.IRegistryRepository
}

// NewRegistryEditorService returns a service over the default repository.
func NewRegistryEditorService() IRegistryEditorService {
	return &RegistryEditorService{repo: repositories.NewRegistryRepository()}
}

var editableColumns = map[models.EditableField]string{
	models.FieldTitle:       "title",
	models.FieldSubtitle:    "subtitle",
	models.FieldDescription: "description",
}

// UpdateRegistryFields commits inline-edited field values. Ownership is
// re-checked against the slug; empty values are valid commits (clearing a
// field), unknown fields are dropped.
func (s *RegistryEditorService) UpdateRegistryFields(ctx context.Context, slug string, ownerUserID uint, fields map[models.EditableField]string) error {
	updates := make(map[string]interface{}, len(fields))
	for field, value := range fields {
		column, ok := editableColumns[field]
		if !ok {
			configslog.SLog.Warnf("Inline edit for unknown field dropped: %q", field)
			continue
		}
		updates[column] = value
	}
	if len(updates) == 0 {
		return ErrNoEditableFields
	}

	registry, err := s.repo.FindBySlugAndOwner(ctx, slug, ownerUserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrRegistryForbidden
		}
		return fmt.Errorf("%w: %v", ErrRegistryUpdateFailed, err)
	}

	if err := s.repo.UpdateFields(ctx, registry.ID, updates, ownerUserID); err != nil {
		logUnexpected("RegistryEditorService.UpdateRegistryFields failed", err,
			zap.String("slug", slug), zap.Uint("owner_user_id", ownerUserID))
		return fmt.Errorf("%w: %v", ErrRegistryUpdateFailed, err)
	}
	configslog.SLog.Infof("Registry %s fields updated inline by owner %d", slug, ownerUserID)
	return nil
}

var _ IRegistryEditorService = (*RegistryEditorService)(nil)
