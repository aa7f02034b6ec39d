package mappers

import (
	"github.com/LavaJover/shvark-raffle-service/internal/domain"
	"github.com/LavaJover/shvark-raffle-service/internal/infrastructure/postgres/models"
)

func ToDomainStaffUser(model *models.StaffUserModel) *domain.StaffUser {
	return &domain.StaffUser{
		ID:                 model.ID,
		Username:           model.Username,
		PasswordHash:       model.PasswordHash,
		Role:               model.Role,
		MustChangePassword: model.MustChangePassword,
		LastLoginAt:        model.LastLoginAt,
		CreatedAt:          model.CreatedAt,
		UpdatedAt:          model.UpdatedAt,
	}
}

func ToGORMStaffUser(user *domain.StaffUser) *models.StaffUserModel {
	return &models.StaffUserModel{
		ID:                 user.ID,
		Username:           user.Username,
		PasswordHash:       user.PasswordHash,
		Role:               user.Role,
		MustChangePassword: user.MustChangePassword,
		LastLoginAt:        user.LastLoginAt,
		CreatedAt:          user.CreatedAt,
		UpdatedAt:          user.UpdatedAt,
	}
}
