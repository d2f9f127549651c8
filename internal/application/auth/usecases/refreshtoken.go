package usecases

import (
	"context"

	appauth "hostelhub/internal/application/auth"
	"hostelhub/internal/domain/user"
	apperrors "hostelhub/internal/shared/errors"
)

type RefreshTokenUseCase struct {
	userRepo     user.UserRepository
	tokenService appauth.TokenService
}

func NewRefreshTokenUseCase(userRepo user.UserRepository, tokenService appauth.TokenService) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

type RefreshTokenCommand struct {
	RefreshToken string
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*appauth.TokenPair, error) {
	userID, _, err := uc.tokenService.ValidateRefreshToken(cmd.RefreshToken)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("invalid refresh token")
	}

	// Re-read the user so a role change or deactivation takes effect on the
	// next refresh rather than at token expiry.
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("invalid refresh token")
	}
	if !u.IsActive() {
		return nil, apperrors.NewForbiddenError("account is deactivated")
	}

	tokens, err := uc.tokenService.GenerateTokenPair(u.ID(), u.Role())
	if err != nil {
		return nil, apperrors.NewInternalError("failed to generate tokens", err.Error())
	}
	return tokens, nil
}
