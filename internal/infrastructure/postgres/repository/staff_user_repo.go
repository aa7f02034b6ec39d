package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-raffle-service/internal/domain"
	"github.com/LavaJover/shvark-raffle-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-raffle-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultStaffUserRepository struct {
	DB *gorm.DB
}

func NewDefaultStaffUserRepository(db *gorm.DB) *DefaultStaffUserRepository {
	return &DefaultStaffUserRepository{DB: db}
}

func (r *DefaultStaffUserRepository) CreateStaffUser(user *domain.StaffUser) error {
	if err := r.DB.Create(mappers.ToGORMStaffUser(user)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: username %q already exists", domain.ErrValidation, user.Username)
		}
		return err
	}
	return nil
}

func (r *DefaultStaffUserRepository) GetStaffUserByID(userID string) (*domain.StaffUser, error) {
	var userModel models.StaffUserModel
	if err := r.DB.First(&userModel, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStaffUserNotFound
		}
		return nil, err
	}
	return mappers.ToDomainStaffUser(&userModel), nil
}

func (r *DefaultStaffUserRepository) GetStaffUserByUsername(username string) (*domain.StaffUser, error) {
	var userModel models.StaffUserModel
	if err := r.DB.First(&userModel, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStaffUserNotFound
		}
		return nil, err
	}
	return mappers.ToDomainStaffUser(&userModel), nil
}

func (r *DefaultStaffUserRepository) UpdatePassword(userID, passwordHash string, mustChange bool) error {
	result := r.DB.Model(&models.StaffUserModel{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"password_hash":        passwordHash,
			"must_change_password": mustChange,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrStaffUserNotFound
	}
	return nil
}

func (r *DefaultStaffUserRepository) TouchLastLogin(userID string, at time.Time) error {
	return r.DB.Model(&models.StaffUserModel{}).
		Where("id = ?", userID).
		Update("last_login_at", at).Error
}
