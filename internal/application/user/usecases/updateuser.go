package usecases

import (
	"context"

	"github.com/subwatch-inc/subwatch/internal/application/user/dto"
	"github.com/subwatch-inc/subwatch/internal/domain/subscription"
	"github.com/subwatch-inc/subwatch/internal/domain/user"
	vo "github.com/subwatch-inc/subwatch/internal/domain/user/valueobjects"
	"github.com/subwatch-inc/subwatch/internal/shared/errors"
	"github.com/subwatch-inc/subwatch/internal/shared/logger"
)

type UpdateUserCommand struct {
	CallerSID string
	UserSID   string
	Name      *string
	Email     *string
	Password  *string
}

type UpdateUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewUpdateUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// Execute updates an account's profile. Only the account owner may
// change their own record; a mismatch reports unauthorized the same way
// the per-user subscription listing does.
func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*dto.UserDTO, error) {
	if err := subscription.AuthorizeSelf(cmd.UserSID, cmd.CallerSID); err != nil {
		return nil, errors.NewUnauthorizedError("you are not the owner of this account")
	}

	account, err := uc.userRepo.GetBySID(ctx, cmd.UserSID)
	if err != nil {
		uc.logger.Errorw("failed to fetch user", "error", err, "user_sid", cmd.UserSID)
		return nil, errors.NewUpstreamError("failed to update user")
	}
	if account == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	params := user.UpdateParams{Name: cmd.Name}

	if cmd.Email != nil {
		email, err := vo.NewEmail(*cmd.Email)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if !email.Equals(account.Email()) {
			taken, err := uc.userRepo.ExistsByEmail(ctx, email.String())
			if err != nil {
				uc.logger.Errorw("failed to check email uniqueness", "error", err)
				return nil, errors.NewUpstreamError("failed to update user")
			}
			if taken {
				return nil, errors.NewConflictError("email already in use")
			}
		}
		params.Email = email
	}

	if err := account.ApplyUpdate(params); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.Password != nil {
		if len(*cmd.Password) < minPasswordLength {
			return nil, errors.NewValidationError("password must be at least 6 characters")
		}
		hash, err := uc.hasher.Hash(*cmd.Password)
		if err != nil {
			uc.logger.Errorw("failed to hash password", "error", err)
			return nil, errors.NewInternalError("failed to update user")
		}
		if err := account.ChangePassword(hash); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.userRepo.Update(ctx, account); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email already in use")
		}
		uc.logger.Errorw("failed to update user", "error", err, "user_sid", cmd.UserSID)
		return nil, errors.NewUpstreamError("failed to update user")
	}

	uc.logger.Infow("user updated", "user_sid", cmd.UserSID)
	return dto.ToUserDTO(account), nil
}
