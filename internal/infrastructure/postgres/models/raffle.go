package models

import (
	"time"
)

type RaffleModel struct {
	ID                  string `gorm:"primaryKey;type:uuid"`
	Title               string `gorm:"not null"`
	Slug                string `gorm:"uniqueIndex;not null"`
	Description         string
	DrawDate            time.Time `gorm:"index:idx_raffle_draw_date"`
	TicketPrice         int64     `gorm:"not null"`
	MaxTickets          int64     `gorm:"default:0"` // 0 = unlimited
	MinPurchaseQuantity int64     `gorm:"default:1"`
	LastTicketNumber    int64     `gorm:"default:0"` // allocation high-water mark, advanced under the raffle row lock
	IsActive            bool      `gorm:"index:idx_raffle_active"`
	ShowInHistory       bool      `gorm:"default:true"`
	FinishedAt          *time.Time
	CreatedAt           time.Time `gorm:"index:idx_raffle_created_at"`
	UpdatedAt           time.Time
}
