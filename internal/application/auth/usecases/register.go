package usecases

import (
	"context"

	appauth "hostelhub/internal/application/auth"
	"hostelhub/internal/domain/resident"
	"hostelhub/internal/domain/user"
	"hostelhub/internal/shared/constants"
	"hostelhub/internal/shared/db"
	apperrors "hostelhub/internal/shared/errors"
	"hostelhub/internal/shared/logger"
	"hostelhub/internal/shared/utils"
)

// RegisterUseCase creates a resident account together with its profile.
// Both rows are written in one transaction so a half-registered state never
// exists.
type RegisterUseCase struct {
	txManager    *db.TransactionManager
	userRepo     user.UserRepository
	residentRepo resident.ResidentProfileRepository
	hasher       appauth.PasswordHasher
	logger       logger.Interface
}

func NewRegisterUseCase(
	txManager *db.TransactionManager,
	userRepo user.UserRepository,
	residentRepo resident.ResidentProfileRepository,
	hasher appauth.PasswordHasher,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		txManager:    txManager,
		userRepo:     userRepo,
		residentRepo: residentRepo,
		hasher:       hasher,
		logger:       logger,
	}
}

type RegisterCommand struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,max=120"`
	Phone    string `json:"phone" validate:"omitempty,max=32"`
	Gender   string `json:"gender" validate:"omitempty,oneof=male female"`
}

type RegisterResult struct {
	UserID            uint   `json:"user_id"`
	ResidentProfileID uint   `json:"resident_profile_id"`
	Email             string `json:"email"`
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to check email", err.Error())
	}
	if exists {
		return nil, apperrors.NewConflictError("email is already registered")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to hash password", err.Error())
	}

	u, err := user.NewUser(cmd.Email, hash, cmd.Name, cmd.Phone, constants.RoleResident)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	var result *RegisterResult
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.userRepo.Create(txCtx, u); err != nil {
			if apperrors.IsDuplicateError(err) {
				return apperrors.NewConflictError("email is already registered")
			}
			return apperrors.NewInternalError("failed to create user", err.Error())
		}

		profile, err := resident.NewResidentProfile(u.ID(), cmd.Name, cmd.Email, cmd.Phone, cmd.Gender)
		if err != nil {
			return apperrors.NewValidationError(err.Error())
		}
		if err := uc.residentRepo.Create(txCtx, profile); err != nil {
			return apperrors.NewInternalError("failed to create resident profile", err.Error())
		}

		result = &RegisterResult{
			UserID:            u.ID(),
			ResidentProfileID: profile.ID(),
			Email:             u.Email(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("resident registered", "user_id", result.UserID)

	return result, nil
}
