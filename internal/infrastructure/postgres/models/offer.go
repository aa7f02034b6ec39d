package models

import (
	"time"
)

type OfferModel struct {
	ID              string      `gorm:"primaryKey;type:uuid"`
	RaffleID        string      `gorm:"type:uuid;not null;index:idx_offer_raffle"`
	Raffle          RaffleModel `gorm:"foreignKey:RaffleID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	BuyQuantity     int64       `gorm:"not null"`
	BonusQuantity   int64       `gorm:"not null"`
	MinPaidQuantity int64       `gorm:"default:0"`
	StartsAt        *time.Time
	EndsAt          *time.Time
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
