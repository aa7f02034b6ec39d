package models

import (
	"time"
)

// TicketModel rows are created only by the allocator. The composite unique
// index on (raffle_id, number) is the storage backstop behind the allocator's
// locking discipline.
type TicketModel struct {
	ID         string        `gorm:"primaryKey;type:uuid"`
	RaffleID   string        `gorm:"type:uuid;not null;uniqueIndex:idx_ticket_raffle_number"`
	Raffle     RaffleModel   `gorm:"foreignKey:RaffleID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	PurchaseID string        `gorm:"type:uuid;not null;index:idx_ticket_purchase"`
	Purchase   PurchaseModel `gorm:"foreignKey:PurchaseID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Number     int64         `gorm:"not null;uniqueIndex:idx_ticket_raffle_number"`
	CreatedAt  time.Time
}
