package services

import (
	"context"

	"registry.link/configs/configslog"
	"registry.link/models"
)

// IPaymentService is the payment collaborator boundary. The core only
// depends on its completion signal: a nil error means the contribution was
// collected, anything else is an opaque payment failure. Implementations
// must treat the contribution's Reference as an idempotency key.
type IPaymentService interface {
	CollectContribution(ctx context.Context, contribution *models.Contribution, item *models.RegistryItem, registry *models.Registry) error
}

// PlaceholderPaymentService stands in for a real gateway integration and
// reports immediate success. It exists so the contribution flow is complete
// end to end before a processor is wired.
type PlaceholderPaymentService struct{}

// NewPlaceholderPaymentService returns the stand-in collaborator.
func NewPlaceholderPaymentService() IPaymentService {
	return &PlaceholderPaymentService{}
}

// CollectContribution accepts every contribution without moving money.
func (s *PlaceholderPaymentService) CollectContribution(_ context.Context, contribution *models.Contribution, item *models.RegistryItem, _ *models.Registry) error {
	configslog.SLog.Warnf("Placeholder payment collected contribution %s for item %d, no money moved",
		contribution.Reference, item.ID)
	return nil
}

var _ IPaymentService = (*PlaceholderPaymentService)(nil)
