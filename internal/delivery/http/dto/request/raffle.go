package request

import "time"

type CreateRaffle struct {
	Title               string    `json:"title" binding:"required"`
	Description         string    `json:"description"`
	DrawDate            time.Time `json:"draw_date" binding:"required"`
	TicketPrice         int64     `json:"ticket_price" binding:"required,gt=0"`
	MaxTickets          int64     `json:"max_tickets"`
	MinPurchaseQuantity int64     `json:"min_purchase_quantity"`
	ShowInHistory       *bool     `json:"show_in_history"`
}

type UpdateRaffle struct {
	Title               string    `json:"title" binding:"required"`
	Description         string    `json:"description"`
	DrawDate            time.Time `json:"draw_date" binding:"required"`
	TicketPrice         int64     `json:"ticket_price" binding:"required,gt=0"`
	MaxTickets          int64     `json:"max_tickets"`
	MinPurchaseQuantity int64     `json:"min_purchase_quantity"`
	ShowInHistory       *bool     `json:"show_in_history"`
}

type CreateOffer struct {
	BuyQuantity     int64      `json:"buy_quantity" binding:"required,gt=0"`
	BonusQuantity   int64      `json:"bonus_quantity" binding:"required,gt=0"`
	MinPaidQuantity int64      `json:"min_paid_quantity"`
	StartsAt        *time.Time `json:"starts_at"`
	EndsAt          *time.Time `json:"ends_at"`
	IsActive        bool       `json:"is_active"`
}

type BankAccount struct {
	BankName      string `json:"bank_name" binding:"required"`
	AccountNumber string `json:"account_number" binding:"required"`
	AccountHolder string `json:"account_holder" binding:"required"`
	AccountType   string `json:"account_type"`
	IsActive      bool   `json:"is_active"`
	Position      int64  `json:"position"`
}
