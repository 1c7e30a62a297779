package usecases

import (
	"context"

	"github.com/subwatch-inc/subwatch/internal/application/subscription/dto"
	"github.com/subwatch-inc/subwatch/internal/domain/subscription"
	"github.com/subwatch-inc/subwatch/internal/shared/biztime"
	"github.com/subwatch-inc/subwatch/internal/shared/errors"
	"github.com/subwatch-inc/subwatch/internal/shared/logger"
)

// upcomingWindowDays is the number of days ahead the renewal window
// reaches, counted from the start of today.
const upcomingWindowDays = 7

type UpcomingRenewalsCommand struct {
	CallerSID string
}

type UpcomingRenewalsUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewUpcomingRenewalsUseCase(
	subscriptionRepo subscription.Repository,
	logger logger.Interface,
) *UpcomingRenewalsUseCase {
	return &UpcomingRenewalsUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

// Execute returns the caller's active subscriptions whose renewal date
// falls inside the next seven days, both edges inclusive. The window is
// computed in the business timezone so the edges land on day boundaries.
func (uc *UpcomingRenewalsUseCase) Execute(ctx context.Context, cmd UpcomingRenewalsCommand) ([]*dto.SubscriptionDTO, error) {
	now := biztime.NowUTC()
	from := biztime.StartOfDayUTC(now)
	to := biztime.EndOfDayUTC(now.AddDate(0, 0, upcomingWindowDays))

	subs, err := uc.subscriptionRepo.FindUpcomingRenewals(ctx, cmd.CallerSID, from, to)
	if err != nil {
		uc.logger.Errorw("failed to query upcoming renewals", "error", err, "user_sid", cmd.CallerSID)
		return nil, errors.NewUpstreamError("failed to query upcoming renewals")
	}
	return dto.ToSubscriptionDTOs(subs), nil
}
