package models

import (
	"time"

	"github.com/LavaJover/shvark-raffle-service/internal/domain"
)

type PurchaseModel struct {
	ID              string                `gorm:"primaryKey;type:uuid"`
	RaffleID        string                `gorm:"type:uuid;not null;index:idx_purchase_raffle"`
	Raffle          RaffleModel           `gorm:"foreignKey:RaffleID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	BuyerName       string                `gorm:"not null"`
	BuyerPhone      string                `gorm:"not null;index:idx_purchase_phone"`
	BuyerEmail      string                `gorm:"not null"`
	BankAccountID   *string               `gorm:"type:uuid"`
	BankAccount     *BankAccountModel     `gorm:"foreignKey:BankAccountID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Quantity        int64                 `gorm:"not null"`
	BonusQuantity   int64                 `gorm:"default:0"`
	TotalTickets    int64                 `gorm:"default:0"`
	TotalAmount     int64                 `gorm:"default:0"`
	PublicReference string                `gorm:"uniqueIndex:idx_purchase_reference;not null"`
	ProofReference  string
	Status          domain.PurchaseStatus `gorm:"index:idx_purchase_status"`
	DecidedAt       *time.Time
	DecidedBy       string
	Notes           string
	IdempotencyKey  *string               `gorm:"uniqueIndex:idx_purchase_idempotency"`
	ClientIP        string
	UserAgent       string
	CreatedAt       time.Time             `gorm:"index:idx_purchase_created_at"`
	UpdatedAt       time.Time

	Tickets []TicketModel `gorm:"foreignKey:PurchaseID;references:ID"`
}
