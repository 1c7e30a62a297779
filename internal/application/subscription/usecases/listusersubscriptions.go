package usecases

import (
	"context"

	"github.com/subwatch-inc/subwatch/internal/application/subscription/dto"
	"github.com/subwatch-inc/subwatch/internal/domain/subscription"
	"github.com/subwatch-inc/subwatch/internal/shared/errors"
	"github.com/subwatch-inc/subwatch/internal/shared/logger"
)

type ListUserSubscriptionsCommand struct {
	CallerSID string
	UserSID   string
}

type ListUserSubscriptionsUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewListUserSubscriptionsUseCase(
	subscriptionRepo subscription.Repository,
	logger logger.Interface,
) *ListUserSubscriptionsUseCase {
	return &ListUserSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

// Execute lists the subscriptions owned by the given user. Only the
// account owner may read their own list; a mismatch reports unauthorized
// rather than forbidden.
func (uc *ListUserSubscriptionsUseCase) Execute(ctx context.Context, cmd ListUserSubscriptionsCommand) ([]*dto.SubscriptionDTO, error) {
	if err := subscription.AuthorizeSelf(cmd.UserSID, cmd.CallerSID); err != nil {
		return nil, errors.NewUnauthorizedError("you are not the owner of this account")
	}

	subs, err := uc.subscriptionRepo.GetByUserSID(ctx, cmd.UserSID)
	if err != nil {
		uc.logger.Errorw("failed to list user subscriptions", "error", err, "user_sid", cmd.UserSID)
		return nil, errors.NewUpstreamError("failed to list user subscriptions")
	}
	return dto.ToSubscriptionDTOs(subs), nil
}
