package domain

import "time"

// MaxActiveBankAccounts caps how many accounts the public payment page shows.
const MaxActiveBankAccounts = 4

type BankAccount struct {
	ID            string
	BankName      string
	AccountNumber string
	AccountHolder string
	AccountType   string
	IsActive      bool
	Position      int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type BankAccountRepository interface {
	CreateBankAccount(account *BankAccount) error
	UpdateBankAccount(account *BankAccount) error
	DeleteBankAccount(accountID string) error
	GetBankAccountByID(accountID string) (*BankAccount, error)
	ListBankAccounts(activeOnly bool) ([]*BankAccount, error)
	CountActive(excludeID string) (int64, error)
}
