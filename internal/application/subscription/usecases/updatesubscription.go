package usecases

import (
	"context"
	"time"

	"github.com/subwatch-inc/subwatch/internal/application/subscription/dto"
	"github.com/subwatch-inc/subwatch/internal/domain/subscription"
	vo "github.com/subwatch-inc/subwatch/internal/domain/subscription/valueobjects"
	"github.com/subwatch-inc/subwatch/internal/shared/errors"
	"github.com/subwatch-inc/subwatch/internal/shared/logger"
)

// UpdateSubscriptionCommand carries the optional fields of a generic
// update. Absent fields leave the stored value untouched. There is no
// owner field; ownership never transfers through an update.
type UpdateSubscriptionCommand struct {
	CallerSID       string
	SubscriptionSID string
	Name            *string
	Price           *float64
	Currency        *string
	Frequency       *string
	Category        *string
	PaymentMethod   *string
	Status          *string
	RenewalDate     *time.Time
	Metadata        map[string]interface{}
}

type UpdateSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewUpdateSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	logger logger.Interface,
) *UpdateSubscriptionUseCase {
	return &UpdateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

// Execute merges the payload over the stored record. Existence is
// checked before ownership: a missing record reports not found even to
// a caller who would not have been allowed to touch it.
func (uc *UpdateSubscriptionUseCase) Execute(ctx context.Context, cmd UpdateSubscriptionCommand) (*dto.SubscriptionDTO, error) {
	sub, err := uc.subscriptionRepo.GetBySID(ctx, cmd.SubscriptionSID)
	if err != nil {
		uc.logger.Errorw("failed to fetch subscription", "error", err, "subscription_sid", cmd.SubscriptionSID)
		return nil, errors.NewUpstreamError("failed to fetch subscription")
	}
	if sub == nil {
		return nil, errors.NewNotFoundError("subscription not found")
	}

	if err := subscription.AuthorizeOwner(sub.UserSID(), cmd.CallerSID); err != nil {
		return nil, errors.NewForbiddenError("you are not the owner of this subscription")
	}

	params := subscription.UpdateParams{
		Name:          cmd.Name,
		Price:         cmd.Price,
		Currency:      cmd.Currency,
		Category:      cmd.Category,
		PaymentMethod: cmd.PaymentMethod,
		RenewalDate:   cmd.RenewalDate,
		Metadata:      cmd.Metadata,
	}
	if cmd.Frequency != nil {
		frequency, err := vo.NewFrequency(*cmd.Frequency)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		params.Frequency = &frequency
	}
	if cmd.Status != nil {
		status, err := vo.NewStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		params.Status = &status
	}

	if err := sub.ApplyUpdate(params); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to update subscription", "error", err, "subscription_sid", sub.SID())
		return nil, errors.NewUpstreamError("failed to update subscription")
	}

	uc.logger.Infow("subscription updated", "subscription_sid", sub.SID(), "user_sid", sub.UserSID())
	return dto.ToSubscriptionDTO(sub), nil
}
