package usecases

import (
	"context"

	"github.com/subwatch-inc/subwatch/internal/domain/subscription"
	"github.com/subwatch-inc/subwatch/internal/domain/user"
	"github.com/subwatch-inc/subwatch/internal/shared/errors"
	"github.com/subwatch-inc/subwatch/internal/shared/logger"
)

type DeleteUserCommand struct {
	CallerSID string
	UserSID   string
}

type DeleteUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewDeleteUserUseCase(userRepo user.Repository, logger logger.Interface) *DeleteUserUseCase {
	return &DeleteUserUseCase{userRepo: userRepo, logger: logger}
}

// Execute removes an account. Self-scoped like profile updates; the
// record is hard deleted.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	if err := subscription.AuthorizeSelf(cmd.UserSID, cmd.CallerSID); err != nil {
		return errors.NewUnauthorizedError("you are not the owner of this account")
	}

	account, err := uc.userRepo.GetBySID(ctx, cmd.UserSID)
	if err != nil {
		uc.logger.Errorw("failed to fetch user", "error", err, "user_sid", cmd.UserSID)
		return errors.NewUpstreamError("failed to delete user")
	}
	if account == nil {
		return errors.NewNotFoundError("user not found")
	}

	if err := uc.userRepo.DeleteBySID(ctx, cmd.UserSID); err != nil {
		uc.logger.Errorw("failed to delete user", "error", err, "user_sid", cmd.UserSID)
		return errors.NewUpstreamError("failed to delete user")
	}

	uc.logger.Infow("user deleted", "user_sid", cmd.UserSID)
	return nil
}
