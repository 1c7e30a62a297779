package usecases

import (
	"context"

	"github.com/subwatch-inc/subwatch/internal/application/user/dto"
	"github.com/subwatch-inc/subwatch/internal/domain/user"
	vo "github.com/subwatch-inc/subwatch/internal/domain/user/valueobjects"
	"github.com/subwatch-inc/subwatch/internal/shared/errors"
	"github.com/subwatch-inc/subwatch/internal/shared/logger"
)

const minPasswordLength = 6

type RegisterUserCommand struct {
	Name     string
	Email    string
	Password string
}

// RegisterUserResult carries the new account and a signed token so the
// client is logged in immediately after sign-up.
type RegisterUserResult struct {
	User  *dto.UserDTO
	Token string
}

type RegisterUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	txMgr    TransactionRunner
	logger   logger.Interface
}

func NewRegisterUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	txMgr TransactionRunner,
	logger logger.Interface,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		txMgr:    txMgr,
		logger:   logger,
	}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*RegisterUserResult, error) {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if len(cmd.Password) < minPasswordLength {
		return nil, errors.NewValidationError("password must be at least 6 characters")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to create user")
	}

	account, err := user.NewUser(cmd.Name, email, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// Check uniqueness and insert in a transaction
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		exists, err := uc.userRepo.ExistsByEmail(txCtx, email.String())
		if err != nil {
			uc.logger.Errorw("failed to check email uniqueness", "error", err)
			return errors.NewUpstreamError("failed to create user")
		}
		if exists {
			return errors.NewConflictError("user already exists")
		}

		if err := uc.userRepo.Create(txCtx, account); err != nil {
			if errors.IsDuplicateError(err) {
				return errors.NewConflictError("user already exists")
			}
			uc.logger.Errorw("failed to create user", "error", err)
			return errors.NewUpstreamError("failed to create user")
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	token, err := uc.tokens.Issue(account.SID())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "error", err, "user_sid", account.SID())
		return nil, errors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("user registered", "user_sid", account.SID())
	return &RegisterUserResult{User: dto.ToUserDTO(account), Token: token}, nil
}
