package models

import (
	"time"
)

type CustomerModel struct {
	ID             string `gorm:"primaryKey;type:uuid"`
	Name           string
	Phone          string `gorm:"uniqueIndex;not null"`
	Email          string
	PurchasesCount int64  `gorm:"default:0"`
	ApprovedCount  int64  `gorm:"default:0"`
	TotalSpent     int64  `gorm:"default:0"`
	LastPurchaseAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
