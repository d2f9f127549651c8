package usecases

import (
	"context"

	appauth "hostelhub/internal/application/auth"
	"hostelhub/internal/domain/user"
	apperrors "hostelhub/internal/shared/errors"
	"hostelhub/internal/shared/logger"
)

type LoginUseCase struct {
	userRepo     user.UserRepository
	tokenService appauth.TokenService
	hasher       appauth.PasswordHasher
	logger       logger.Interface
}

func NewLoginUseCase(
	userRepo user.UserRepository,
	tokenService appauth.TokenService,
	hasher appauth.PasswordHasher,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:     userRepo,
		tokenService: tokenService,
		hasher:       hasher,
		logger:       logger,
	}
}

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	Tokens appauth.TokenPair `json:"tokens"`
	UserID uint              `json:"user_id"`
	Name   string            `json:"name"`
	Email  string            `json:"email"`
	Role   string            `json:"role"`
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	u, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		// Same error for unknown email and wrong password.
		return nil, apperrors.NewUnauthorizedError("invalid credentials")
	}
	if !u.IsActive() {
		return nil, apperrors.NewForbiddenError("account is deactivated")
	}

	if err := uc.hasher.Verify(u.PasswordHash(), cmd.Password); err != nil {
		return nil, apperrors.NewUnauthorizedError("invalid credentials")
	}

	tokens, err := uc.tokenService.GenerateTokenPair(u.ID(), u.Role())
	if err != nil {
		return nil, apperrors.NewInternalError("failed to generate tokens", err.Error())
	}

	u.RecordLogin()
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Warnw("failed to record login time", "user_id", u.ID(), "error", err)
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "role", u.Role())

	return &LoginResult{
		Tokens: *tokens,
		UserID: u.ID(),
		Name:   u.Name(),
		Email:  u.Email(),
		Role:   u.Role(),
	}, nil
}
