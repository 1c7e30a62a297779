package usecases

import (
	"context"

	"github.com/subwatch-inc/subwatch/internal/application/user/dto"
	"github.com/subwatch-inc/subwatch/internal/domain/user"
	"github.com/subwatch-inc/subwatch/internal/shared/errors"
	"github.com/subwatch-inc/subwatch/internal/shared/logger"
)

type LoginUserCommand struct {
	Email    string
	Password string
}

type LoginUserResult struct {
	User  *dto.UserDTO
	Token string
}

type LoginUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// Execute verifies the credentials and mints a token. An unknown email
// and a wrong password produce the same error so the endpoint does not
// reveal which accounts exist.
func (uc *LoginUserUseCase) Execute(ctx context.Context, cmd LoginUserCommand) (*LoginUserResult, error) {
	account, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to fetch user by email", "error", err)
		return nil, errors.NewUpstreamError("failed to sign in")
	}
	if account == nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if err := uc.hasher.Verify(account.PasswordHash(), cmd.Password); err != nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	token, err := uc.tokens.Issue(account.SID())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "error", err, "user_sid", account.SID())
		return nil, errors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("user signed in", "user_sid", account.SID())
	return &LoginUserResult{User: dto.ToUserDTO(account), Token: token}, nil
}
