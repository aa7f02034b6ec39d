package models

import (
	"time"
)

type BankAccountModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	BankName      string `gorm:"not null"`
	AccountNumber string `gorm:"not null"`
	AccountHolder string `gorm:"not null"`
	AccountType   string
	IsActive      bool  `gorm:"index:idx_bank_account_active"`
	Position      int64 `gorm:"default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
