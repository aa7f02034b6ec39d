package repository

import (
	"errors"

	"github.com/LavaJover/shvark-raffle-service/internal/domain"
	"github.com/LavaJover/shvark-raffle-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-raffle-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultBankAccountRepository struct {
	DB *gorm.DB
}

func NewDefaultBankAccountRepository(db *gorm.DB) *DefaultBankAccountRepository {
	return &DefaultBankAccountRepository{DB: db}
}

func (r *DefaultBankAccountRepository) CreateBankAccount(account *domain.BankAccount) error {
	return r.DB.Create(mappers.ToGORMBankAccount(account)).Error
}

func (r *DefaultBankAccountRepository) UpdateBankAccount(account *domain.BankAccount) error {
	updates := map[string]interface{}{
		"bank_name":      account.BankName,
		"account_number": account.AccountNumber,
		"account_holder": account.AccountHolder,
		"account_type":   account.AccountType,
		"is_active":      account.IsActive,
		"position":       account.Position,
	}
	result := r.DB.Model(&models.BankAccountModel{}).Where("id = ?", account.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrBankAccountNotFound
	}
	return nil
}

func (r *DefaultBankAccountRepository) DeleteBankAccount(accountID string) error {
	result := r.DB.Delete(&models.BankAccountModel{}, "id = ?", accountID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrBankAccountNotFound
	}
	return nil
}

func (r *DefaultBankAccountRepository) GetBankAccountByID(accountID string) (*domain.BankAccount, error) {
	var accountModel models.BankAccountModel
	if err := r.DB.First(&accountModel, "id = ?", accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBankAccountNotFound
		}
		return nil, err
	}
	return mappers.ToDomainBankAccount(&accountModel), nil
}

func (r *DefaultBankAccountRepository) ListBankAccounts(activeOnly bool) ([]*domain.BankAccount, error) {
	query := r.DB.Model(&models.BankAccountModel{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var accountModels []models.BankAccountModel
	if err := query.Order("position ASC, created_at ASC").Find(&accountModels).Error; err != nil {
		return nil, err
	}
	accounts := make([]*domain.BankAccount, len(accountModels))
	for i := range accountModels {
		accounts[i] = mappers.ToDomainBankAccount(&accountModels[i])
	}
	return accounts, nil
}

func (r *DefaultBankAccountRepository) CountActive(excludeID string) (int64, error) {
	query := r.DB.Model(&models.BankAccountModel{}).Where("is_active = ?", true)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
