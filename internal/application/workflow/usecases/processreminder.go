package usecases

import (
	"context"

	"github.com/subwatch-inc/subwatch/internal/domain/subscription"
	"github.com/subwatch-inc/subwatch/internal/domain/user"
	"github.com/subwatch-inc/subwatch/internal/shared/biztime"
	"github.com/subwatch-inc/subwatch/internal/shared/errors"
	"github.com/subwatch-inc/subwatch/internal/shared/logger"
)

// reminderOffsets lists how many days before the renewal date a reminder
// goes out. The callback fires once per offset day.
var reminderOffsets = []int{7, 5, 2, 1}

type ProcessReminderCommand struct {
	SubscriptionSID string
}

// ProcessReminderResult reports what the callback did so the workflow
// runner can log or retry accordingly.
type ProcessReminderResult struct {
	Sent     bool
	DaysLeft int
	Reason   string
}

type ProcessReminderUseCase struct {
	subscriptionRepo subscription.Repository
	userRepo         user.Repository
	mailer           ReminderMailer
	logger           logger.Interface
}

func NewProcessReminderUseCase(
	subscriptionRepo subscription.Repository,
	userRepo user.Repository,
	mailer ReminderMailer,
	logger logger.Interface,
) *ProcessReminderUseCase {
	return &ProcessReminderUseCase{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		mailer:           mailer,
		logger:           logger,
	}
}

// Execute handles one workflow callback for a subscription. The record
// may have been deleted or cancelled since the workflow was scheduled;
// both cases end the run quietly instead of erroring, so the workflow
// engine does not retry a reminder nobody wants.
func (uc *ProcessReminderUseCase) Execute(ctx context.Context, cmd ProcessReminderCommand) (*ProcessReminderResult, error) {
	sub, err := uc.subscriptionRepo.GetBySID(ctx, cmd.SubscriptionSID)
	if err != nil {
		uc.logger.Errorw("failed to fetch subscription for reminder", "error", err, "subscription_sid", cmd.SubscriptionSID)
		return nil, errors.NewUpstreamError("failed to fetch subscription")
	}
	if sub == nil {
		uc.logger.Infow("reminder workflow stopped, subscription gone", "subscription_sid", cmd.SubscriptionSID)
		return &ProcessReminderResult{Reason: "subscription not found"}, nil
	}
	if !sub.Status().IsActive() {
		uc.logger.Infow("reminder workflow stopped, subscription not active",
			"subscription_sid", sub.SID(),
			"status", sub.Status(),
		)
		return &ProcessReminderResult{Reason: "subscription not active"}, nil
	}

	now := biztime.NowUTC()
	today := biztime.StartOfDayUTC(now)
	renewalDay := biztime.StartOfDayUTC(sub.RenewalDate())

	if renewalDay.Before(today) {
		uc.logger.Infow("reminder workflow stopped, renewal date passed",
			"subscription_sid", sub.SID(),
			"renewal_date", sub.RenewalDate(),
		)
		return &ProcessReminderResult{Reason: "renewal date passed"}, nil
	}

	daysLeft := biztime.DaysBetween(now, sub.RenewalDate())
	if !isReminderDay(daysLeft) {
		return &ProcessReminderResult{DaysLeft: daysLeft, Reason: "no reminder due today"}, nil
	}

	owner, err := uc.userRepo.GetBySID(ctx, sub.UserSID())
	if err != nil {
		uc.logger.Errorw("failed to fetch subscription owner", "error", err, "user_sid", sub.UserSID())
		return nil, errors.NewUpstreamError("failed to fetch subscription owner")
	}
	if owner == nil {
		uc.logger.Warnw("reminder workflow stopped, owner gone", "user_sid", sub.UserSID())
		return &ProcessReminderResult{DaysLeft: daysLeft, Reason: "owner not found"}, nil
	}

	params := ReminderEmailParams{
		To:               owner.Email().String(),
		UserName:         owner.Name(),
		SubscriptionName: sub.Name(),
		Price:            sub.Price(),
		Currency:         sub.Currency(),
		Frequency:        sub.Frequency().String(),
		PaymentMethod:    sub.PaymentMethod(),
		RenewalDate:      renewalDay.Format("Jan 2, 2006"),
		DaysLeft:         daysLeft,
	}
	if err := uc.mailer.SendRenewalReminder(ctx, params); err != nil {
		uc.logger.Errorw("failed to send renewal reminder",
			"error", err,
			"subscription_sid", sub.SID(),
			"days_left", daysLeft,
		)
		return nil, errors.NewUpstreamError("failed to send renewal reminder")
	}

	uc.logger.Infow("renewal reminder sent",
		"subscription_sid", sub.SID(),
		"user_sid", sub.UserSID(),
		"days_left", daysLeft,
	)
	return &ProcessReminderResult{Sent: true, DaysLeft: daysLeft}, nil
}

func isReminderDay(daysLeft int) bool {
	for _, offset := range reminderOffsets {
		if daysLeft == offset {
			return true
		}
	}
	return false
}
