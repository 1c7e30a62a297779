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

// CreateSubscriptionCommand carries the payload for creating a
// subscription. The owner is always the caller; any owner value a client
// smuggles into the payload never reaches this command.
type CreateSubscriptionCommand struct {
	CallerSID     string
	Name          string
	Price         float64
	Currency      string
	Frequency     string
	Category      string
	PaymentMethod string
	StartDate     time.Time
	RenewalDate   *time.Time
	Metadata      map[string]interface{}
}

// CreateSubscriptionResult carries the created record and the run
// identifier of the scheduled reminder workflow.
type CreateSubscriptionResult struct {
	Subscription *dto.SubscriptionDTO
	RunID        string
}

type CreateSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	workflow         WorkflowTrigger
	logger           logger.Interface
}

func NewCreateSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	workflow WorkflowTrigger,
	logger logger.Interface,
) *CreateSubscriptionUseCase {
	return &CreateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		workflow:         workflow,
		logger:           logger,
	}
}

// Execute persists the subscription and schedules the renewal reminder
// workflow. The two steps are not atomic: a trigger failure fails the
// operation but the already persisted record is not rolled back.
func (uc *CreateSubscriptionUseCase) Execute(ctx context.Context, cmd CreateSubscriptionCommand) (*CreateSubscriptionResult, error) {
	frequency, err := vo.NewFrequency(cmd.Frequency)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	sub, err := subscription.NewSubscription(subscription.NewSubscriptionParams{
		UserSID:       cmd.CallerSID,
		Name:          cmd.Name,
		Price:         cmd.Price,
		Currency:      cmd.Currency,
		Frequency:     frequency,
		Category:      cmd.Category,
		PaymentMethod: cmd.PaymentMethod,
		StartDate:     cmd.StartDate,
		RenewalDate:   cmd.RenewalDate,
		Metadata:      cmd.Metadata,
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.subscriptionRepo.Create(ctx, sub); err != nil {
		uc.logger.Errorw("failed to create subscription", "error", err, "user_sid", cmd.CallerSID)
		return nil, errors.NewUpstreamError("failed to create subscription")
	}

	runID, err := uc.workflow.Trigger(ctx, sub.SID())
	if err != nil {
		uc.logger.Errorw("failed to schedule renewal reminder",
			"error", err,
			"subscription_sid", sub.SID(),
		)
		return nil, errors.NewUpstreamError("failed to schedule renewal reminder")
	}

	uc.logger.Infow("subscription created",
		"subscription_sid", sub.SID(),
		"user_sid", sub.UserSID(),
		"renewal_date", sub.RenewalDate(),
		"workflow_run_id", runID,
	)

	return &CreateSubscriptionResult{
		Subscription: dto.ToSubscriptionDTO(sub),
		RunID:        runID,
	}, nil
}
