package usecases

import (
	"context"

	"github.com/subwatch-inc/subwatch/internal/application/user/dto"
	"github.com/subwatch-inc/subwatch/internal/domain/user"
	"github.com/subwatch-inc/subwatch/internal/shared/errors"
	"github.com/subwatch-inc/subwatch/internal/shared/logger"
)

type ListUsersCommand struct {
	Page     int
	PageSize int
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo, logger: logger}
}

// Execute returns one page of accounts plus the total record count.
func (uc *ListUsersUseCase) Execute(ctx context.Context, cmd ListUsersCommand) ([]*dto.UserDTO, int64, error) {
	users, total, err := uc.userRepo.List(ctx, user.ListFilter{
		Page:     cmd.Page,
		PageSize: cmd.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, 0, errors.NewUpstreamError("failed to list users")
	}
	return dto.ToUserDTOs(users), total, nil
}
