package usecases

import (
	"context"

	"github.com/subwatch-inc/subwatch/internal/application/user/dto"
	"github.com/subwatch-inc/subwatch/internal/domain/user"
	"github.com/subwatch-inc/subwatch/internal/shared/errors"
	"github.com/subwatch-inc/subwatch/internal/shared/logger"
)

type GetUserCommand struct {
	UserSID string
}

type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, cmd GetUserCommand) (*dto.UserDTO, error) {
	account, err := uc.userRepo.GetBySID(ctx, cmd.UserSID)
	if err != nil {
		uc.logger.Errorw("failed to fetch user", "error", err, "user_sid", cmd.UserSID)
		return nil, errors.NewUpstreamError("failed to fetch user")
	}
	if account == nil {
		return nil, errors.NewNotFoundError("user not found")
	}
	return dto.ToUserDTO(account), nil
}
