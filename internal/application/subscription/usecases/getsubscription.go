package usecases

import (
	"context"

	"github.com/subwatch-inc/subwatch/internal/application/subscription/dto"
	"github.com/subwatch-inc/subwatch/internal/domain/subscription"
	"github.com/subwatch-inc/subwatch/internal/shared/errors"
	"github.com/subwatch-inc/subwatch/internal/shared/logger"
)

type GetSubscriptionCommand struct {
	CallerSID       string
	SubscriptionSID string
}

type GetSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewGetSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	logger logger.Interface,
) *GetSubscriptionUseCase {
	return &GetSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

// Execute fetches a single subscription. Existence is checked before
// ownership, so a caller probing someone else's record learns that it
// exists but nothing more.
func (uc *GetSubscriptionUseCase) Execute(ctx context.Context, cmd GetSubscriptionCommand) (*dto.SubscriptionDTO, error) {
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

	return dto.ToSubscriptionDTO(sub), nil
}
