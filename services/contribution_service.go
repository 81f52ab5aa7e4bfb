package services

import (
	"context"
	"errors"
	"fmt"

	"registry.link/configs/configslog"
	"registry.link/models"
	"registry.link/pkg/currency"
	"registry.link/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContributionServiceError is the contribution flow's error vocabulary.
type ContributionServiceError string

func (e ContributionServiceError) Error() string { return string(e) }

const (
	ErrContributionInvalid     ContributionServiceError = "contribution is invalid"
	ErrContributorNameRequired ContributionServiceError = "contributor name is required"
	ErrContributorEmailInvalid ContributionServiceError = "contributor email is not a valid address"
	ErrAmountInvalid           ContributionServiceError = "contribution amount must be a positive number with at most two decimal places"
	ErrAmountBelowMinimum      ContributionServiceError = "contribution amount must be at least one currency unit"
	ErrItemFulfilled           ContributionServiceError = "this item is already fulfilled"
	ErrItemNotInRegistry       ContributionServiceError = "item does not belong to this registry"
	ErrContributionSaveFailed  ContributionServiceError = "contribution could not be recorded"
	ErrGuestbookLoadFailed     ContributionServiceError = "guestbook could not be loaded"
	ErrPaymentFailed           ContributionServiceError = "payment could not be completed"
)

// MinContributionMinor is the floor for freely editable amounts: one major
// currency unit.
const MinContributionMinor = currency.MinorPerMajor

// ContributionDraft is the transient form payload. Amount carries the
// human-entered major-unit string; it is only honored when the item's policy
// makes the amount editable.
type ContributionDraft struct {
	Amount           string `form:"amount"`
	ContributorName  string `form:"contributor_name" validate:"required"`
	ContributorEmail string `form:"contributor_email" validate:"omitempty,email"`
	Message          string `form:"message"`
	// Checkbox values ("on") do not survive a bool conversion; the handler
	// sets this from the raw form value.
	IsPublic bool `form:"-"`
}

// IContributionService validates and submits guest contributions.
type IContributionService interface {
	SubmitContribution(ctx context.Context, registry *models.Registry, item *models.RegistryItem, draft ContributionDraft) (*models.Contribution, error)
	GetGuestbook(ctx context.Context, registryID uint) ([]models.Contribution, error)
}

// ContributionService implements IContributionService.
type ContributionService struct {
	repo     repositories.IContributionRepository
	payments IPaymentService
	validate *validator.Validate
}

// NewContributionService wires the default repository and the placeholder
// payment collaborator.
func NewContributionService() IContributionService {
	return newContributionService(repositories.NewContributionRepository(), NewPlaceholderPaymentService())
}

func newContributionService(repo repositories.IContributionRepository, payments IPaymentService) *ContributionService {
	return &ContributionService{
		repo:     repo,
		payments: payments,
		validate: validator.New(),
	}
}

// resolveAmount applies the item's contribution policy to the draft amount.
func resolveAmount(item *models.RegistryItem, draft ContributionDraft) (int64, error) {
	policy := item.Policy()
	if !policy.AmountEditable {
		// Fixed items are all-or-nothing: whatever was posted, the amount
		// is the item's price.
		if policy.FixedAmountMinor <= 0 {
			return 0, ErrAmountInvalid
		}
		return policy.FixedAmountMinor, nil
	}
	minor, err := currency.ParseMajor(draft.Amount)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrAmountInvalid, err)
	}
	if minor < MinContributionMinor {
		return 0, ErrAmountBelowMinimum
	}
	return minor, nil
}

// validateDraft runs field validation. Nothing here may reach the payment
// collaborator on failure.
func (s *ContributionService) validateDraft(draft ContributionDraft) error {
	err := s.validate.Struct(draft)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			switch fe.Field() {
			case "ContributorName":
				return ErrContributorNameRequired
			case "ContributorEmail":
				return ErrContributorEmailInvalid
			}
		}
	}
	return fmt.Errorf("%w: %v", ErrContributionInvalid, err)
}

// SubmitContribution validates the draft against the item's policy, records
// the contribution, and hands it to the payment collaborator at most once.
// A payment failure marks the row failed and returns ErrPaymentFailed so the
// form can re-enable for a retry.
func (s *ContributionService) SubmitContribution(ctx context.Context, registry *models.Registry, item *models.RegistryItem, draft ContributionDraft) (*models.Contribution, error) {
	if registry == nil || item == nil {
		return nil, ErrContributionInvalid
	}
	if item.RegistryID != registry.ID {
		return nil, ErrItemNotInRegistry
	}
	if !item.Contributable() {
		return nil, ErrItemFulfilled
	}
	if err := s.validateDraft(draft); err != nil {
		return nil, err
	}
	amountMinor, err := resolveAmount(item, draft)
	if err != nil {
		return nil, err
	}

	contribution := &models.Contribution{
		RegistryID:       registry.ID,
		RegistryItemID:   item.ID,
		Reference:        uuid.New().String(),
		AmountMinor:      amountMinor,
		ContributorName:  draft.ContributorName,
		ContributorEmail: draft.ContributorEmail,
		Message:          draft.Message,
		IsPublic:         draft.IsPublic,
		Status:           models.ContributionStatusPending,
	}
	if err := s.repo.Create(ctx, contribution); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContributionSaveFailed, err)
	}

	// Single hand-off; the reference makes a gateway-side retry idempotent.
	if err := s.payments.CollectContribution(ctx, contribution, item, registry); err != nil {
		if stErr := s.repo.UpdateStatus(ctx, contribution.ID, models.ContributionStatusFailed); stErr != nil {
			logUnexpected("ContributionService: failed contribution could not be marked", stErr,
				zap.String("reference", contribution.Reference))
		}
		contribution.Status = models.ContributionStatusFailed
		configslog.Log.Warn("Payment collaborator rejected contribution",
			zap.String("reference", contribution.Reference), zap.Error(err))
		return contribution, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}

	if err := s.repo.UpdateStatus(ctx, contribution.ID, models.ContributionStatusSucceeded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContributionSaveFailed, err)
	}
	contribution.Status = models.ContributionStatusSucceeded
	configslog.SLog.Infof("Contribution %s of %s accepted for item %d (registry %d)",
		contribution.Reference, currency.FormatMinor(amountMinor), item.ID, registry.ID)
	return contribution, nil
}

// GetGuestbook returns the registry's publicly visible, succeeded
// contributions, newest first.
func (s *ContributionService) GetGuestbook(ctx context.Context, registryID uint) ([]models.Contribution, error) {
	contributions, err := s.repo.FindPublicSucceededByRegistry(ctx, registryID, 50)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGuestbookLoadFailed, err)
	}
	return contributions, nil
}

var _ IContributionService = (*ContributionService)(nil)
