package usecase

import (
	"fmt"
	"time"

	"github.com/LavaJover/shvark-raffle-service/internal/domain"
	"github.com/google/uuid"
)

type BankAccountInput struct {
	BankName      string
	AccountNumber string
	AccountHolder string
	AccountType   string
	IsActive      bool
	Position      int64
}

type BankAccountUsecase interface {
	CreateBankAccount(input *BankAccountInput) (*domain.BankAccount, error)
	UpdateBankAccount(accountID string, input *BankAccountInput) (*domain.BankAccount, error)
	DeleteBankAccount(accountID string) error
	GetBankAccountByID(accountID string) (*domain.BankAccount, error)
	ListBankAccounts(activeOnly bool) ([]*domain.BankAccount, error)
}

type DefaultBankAccountUsecase struct {
	BankAccountRepo domain.BankAccountRepository
}

func NewDefaultBankAccountUsecase(repo domain.BankAccountRepository) *DefaultBankAccountUsecase {
	return &DefaultBankAccountUsecase{BankAccountRepo: repo}
}

var _ BankAccountUsecase = (*DefaultBankAccountUsecase)(nil)

func validateBankAccountInput(input *BankAccountInput) error {
	if input.BankName == "" || input.AccountNumber == "" || input.AccountHolder == "" {
		return fmt.Errorf("%w: bank name, account number and holder are required", domain.ErrValidation)
	}
	return nil
}

// checkActiveLimit enforces the payment-page cap: at most
// domain.MaxActiveBankAccounts accounts may be active at once.
func (uc *DefaultBankAccountUsecase) checkActiveLimit(excludeID string) error {
	active, err := uc.BankAccountRepo.CountActive(excludeID)
	if err != nil {
		return err
	}
	if active >= domain.MaxActiveBankAccounts {
		return fmt.Errorf("%w: at most %d accounts may be active",
			domain.ErrTooManyActiveBankAccounts, domain.MaxActiveBankAccounts)
	}
	return nil
}

func (uc *DefaultBankAccountUsecase) CreateBankAccount(input *BankAccountInput) (*domain.BankAccount, error) {
	if err := validateBankAccountInput(input); err != nil {
		return nil, err
	}
	if input.IsActive {
		if err := uc.checkActiveLimit(""); err != nil {
			return nil, err
		}
	}
	account := &domain.BankAccount{
		ID:            uuid.New().String(),
		BankName:      input.BankName,
		AccountNumber: input.AccountNumber,
		AccountHolder: input.AccountHolder,
		AccountType:   input.AccountType,
		IsActive:      input.IsActive,
		Position:      input.Position,
		CreatedAt:     time.Now(),
	}
	if err := uc.BankAccountRepo.CreateBankAccount(account); err != nil {
		return nil, err
	}
	return account, nil
}

func (uc *DefaultBankAccountUsecase) UpdateBankAccount(accountID string, input *BankAccountInput) (*domain.BankAccount, error) {
	if err := validateBankAccountInput(input); err != nil {
		return nil, err
	}
	account, err := uc.BankAccountRepo.GetBankAccountByID(accountID)
	if err != nil {
		return nil, err
	}
	if input.IsActive && !account.IsActive {
		if err := uc.checkActiveLimit(accountID); err != nil {
			return nil, err
		}
	}
	account.BankName = input.BankName
	account.AccountNumber = input.AccountNumber
	account.AccountHolder = input.AccountHolder
	account.AccountType = input.AccountType
	account.IsActive = input.IsActive
	account.Position = input.Position
	if err := uc.BankAccountRepo.UpdateBankAccount(account); err != nil {
		return nil, err
	}
	return account, nil
}

func (uc *DefaultBankAccountUsecase) DeleteBankAccount(accountID string) error {
	return uc.BankAccountRepo.DeleteBankAccount(accountID)
}

func (uc *DefaultBankAccountUsecase) GetBankAccountByID(accountID string) (*domain.BankAccount, error) {
	return uc.BankAccountRepo.GetBankAccountByID(accountID)
}

func (uc *DefaultBankAccountUsecase) ListBankAccounts(activeOnly bool) ([]*domain.BankAccount, error) {
	return uc.BankAccountRepo.ListBankAccounts(activeOnly)
}
