package usecases

import (
	"context"

	"github.com/subwatch-inc/subwatch/internal/domain/subscription"
	"github.com/subwatch-inc/subwatch/internal/shared/errors"
	"github.com/subwatch-inc/subwatch/internal/shared/logger"
)

type DeleteSubscriptionCommand struct {
	CallerSID       string
	SubscriptionSID string
}

type DeleteSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewDeleteSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	logger logger.Interface,
) *DeleteSubscriptionUseCase {
	return &DeleteSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

// Execute removes the subscription permanently. Any pending reminder
// workflow for the record is left to fizzle on its own when it finds
// nothing to remind about.
func (uc *DeleteSubscriptionUseCase) Execute(ctx context.Context, cmd DeleteSubscriptionCommand) error {
	sub, err := uc.subscriptionRepo.GetBySID(ctx, cmd.SubscriptionSID)
	if err != nil {
		uc.logger.Errorw("failed to fetch subscription", "error", err, "subscription_sid", cmd.SubscriptionSID)
		return errors.NewUpstreamError("failed to fetch subscription")
	}
	if sub == nil {
		return errors.NewNotFoundError("subscription not found")
	}

	if err := subscription.AuthorizeOwner(sub.UserSID(), cmd.CallerSID); err != nil {
		return errors.NewForbiddenError("you are not the owner of this subscription")
	}

	if err := uc.subscriptionRepo.DeleteBySID(ctx, sub.SID()); err != nil {
		uc.logger.Errorw("failed to delete subscription", "error", err, "subscription_sid", sub.SID())
		return errors.NewUpstreamError("failed to delete subscription")
	}

	uc.logger.Infow("subscription deleted", "subscription_sid", sub.SID(), "user_sid", sub.UserSID())
	return nil
}
