package notifier

import "time"

type CallbackPayload struct {
	PurchaseID      string    `json:"purchase_id"`
	PublicReference string    `json:"public_reference"`
	RaffleID        string    `json:"raffle_id"`
	Status          string    `json:"status"`
	TotalTickets    int64     `json:"total_tickets"`
	TotalAmount     int64     `json:"total_amount"`
	DecidedAt       time.Time `json:"decided_at"`
}
