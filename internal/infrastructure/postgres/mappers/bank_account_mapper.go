package mappers

import (
	"github.com/LavaJover/shvark-raffle-service/internal/domain"
	"github.com/LavaJover/shvark-raffle-service/internal/infrastructure/postgres/models"
)

func ToDomainBankAccount(model *models.BankAccountModel) *domain.BankAccount {
	return &domain.BankAccount{
		ID:            model.ID,
		BankName:      model.BankName,
		AccountNumber: model.AccountNumber,
		AccountHolder: model.AccountHolder,
		AccountType:   model.AccountType,
		IsActive:      model.IsActive,
		Position:      model.Position,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

func ToGORMBankAccount(account *domain.BankAccount) *models.BankAccountModel {
	return &models.BankAccountModel{
		ID:            account.ID,
		BankName:      account.BankName,
		AccountNumber: account.AccountNumber,
		AccountHolder: account.AccountHolder,
		AccountType:   account.AccountType,
		IsActive:      account.IsActive,
		Position:      account.Position,
		CreatedAt:     account.CreatedAt,
		UpdatedAt:     account.UpdatedAt,
	}
}
