package usecases

import (
	"context"

	"github.com/subwatch-inc/subwatch/internal/application/subscription/dto"
	"github.com/subwatch-inc/subwatch/internal/domain/subscription"
	"github.com/subwatch-inc/subwatch/internal/shared/errors"
	"github.com/subwatch-inc/subwatch/internal/shared/logger"
)

type CancelSubscriptionCommand struct {
	CallerSID       string
	SubscriptionSID string
}

type CancelSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewCancelSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	logger logger.Interface,
) *CancelSubscriptionUseCase {
	return &CancelSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

// Execute cancels the subscription. Cancelling an already cancelled
// subscription succeeds and returns the unchanged record; there is no
// conflict error for repeat cancels.
func (uc *CancelSubscriptionUseCase) Execute(ctx context.Context, cmd CancelSubscriptionCommand) (*dto.SubscriptionDTO, error) {
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

	sub.Cancel()

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to cancel subscription", "error", err, "subscription_sid", sub.SID())
		return nil, errors.NewUpstreamError("failed to cancel subscription")
	}

	uc.logger.Infow("subscription cancelled", "subscription_sid", sub.SID(), "user_sid", sub.UserSID())
	return dto.ToSubscriptionDTO(sub), nil
}
