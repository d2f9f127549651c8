package mappers

import (
	"hostelhub/internal/domain/user"
	"hostelhub/internal/infrastructure/persistence/models"
)

func UserToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Name:         u.Name(),
		Phone:        u.Phone(),
		Role:         u.Role(),
		Active:       u.IsActive(),
		LastLoginAt:  u.LastLoginAt(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

func UserToDomain(model *models.UserModel) *user.User {
	return user.ReconstructUser(
		model.ID,
		model.Email, model.PasswordHash, model.Name, model.Phone, model.Role,
		model.Active,
		model.LastLoginAt,
		model.CreatedAt, model.UpdatedAt,
	)
}
