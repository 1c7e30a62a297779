package usecases

import (
	"context"

	"github.com/subwatch-inc/subwatch/internal/application/subscription/dto"
	"github.com/subwatch-inc/subwatch/internal/domain/subscription"
	"github.com/subwatch-inc/subwatch/internal/shared/errors"
	"github.com/subwatch-inc/subwatch/internal/shared/logger"
)

type ListSubscriptionsCommand struct {
	Page     int
	PageSize int
}

type ListSubscriptionsUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewListSubscriptionsUseCase(
	subscriptionRepo subscription.Repository,
	logger logger.Interface,
) *ListSubscriptionsUseCase {
	return &ListSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

// Execute returns one page of subscriptions regardless of owner, plus
// the total record count. The only guard is that the caller is
// authenticated; scoping this listing to an admin role is left to a
// future authorization layer.
func (uc *ListSubscriptionsUseCase) Execute(ctx context.Context, cmd ListSubscriptionsCommand) ([]*dto.SubscriptionDTO, int64, error) {
	subs, total, err := uc.subscriptionRepo.List(ctx, subscription.ListFilter{
		Page:     cmd.Page,
		PageSize: cmd.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list subscriptions", "error", err)
		return nil, 0, errors.NewUpstreamError("failed to list subscriptions")
	}
	return dto.ToSubscriptionDTOs(subs), total, nil
}
